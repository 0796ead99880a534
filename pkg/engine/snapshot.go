package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-salvage/pkg/entity"
)

// Transform is what a renderer needs to place one object: enough to
// build a world matrix, plus the liveness flag.
type Transform struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Active      bool
}

// Snapshot is the read-only view of the simulation handed to the
// presentation layer each frame. Field slices contain active objects
// only.
type Snapshot struct {
	Craft     Transform
	Fuel      float64
	Asteroids []Transform
	Junk      []Transform
	Status    GameStatus
}

// Snapshot captures the current frame's renderable state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Craft: Transform{
			Position:    g.Craft.Object.Body.Position,
			Orientation: g.Craft.Object.Body.Orientation,
			Active:      g.Craft.Object.Active,
		},
		Fuel:      g.Craft.Fuel,
		Asteroids: make([]Transform, 0, g.Asteroids.Live()),
		Junk:      make([]Transform, 0, g.Junk.Live()),
		Status:    g.Status,
	}

	collect := func(dst *[]Transform) func(int, *entity.FlyingObject) {
		return func(_ int, obj *entity.FlyingObject) {
			*dst = append(*dst, Transform{
				Position:    obj.Body.Position,
				Orientation: obj.Body.Orientation,
				Active:      true,
			})
		}
	}
	g.Asteroids.ForEach(collect(&snap.Asteroids))
	g.Junk.ForEach(collect(&snap.Junk))

	return snap
}
