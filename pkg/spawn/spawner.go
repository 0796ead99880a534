// Package spawn procedurally creates field bodies entering the play
// field from its edges.
package spawn

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-salvage/pkg/physics"
)

// Spawner produces new field bodies on a fixed frame cadence. The random
// source is injected so tests can pin seeds and assert exact placement.
type Spawner struct {
	interval uint64
	speed    float64
	bounds   physics.Bounds
	rng      *rand.Rand
}

// New returns a spawner firing every interval frames, launching bodies
// at the given speed from the edges of bounds.
func New(interval uint64, speed float64, bounds physics.Bounds, rng *rand.Rand) *Spawner {
	return &Spawner{
		interval: interval,
		speed:    speed,
		bounds:   bounds,
		rng:      rng,
	}
}

// Due reports whether the given frame counter lands on the spawn
// cadence.
func (s *Spawner) Due(frame uint64) bool {
	return frame%s.interval == 0
}

// Next draws a new body entering from a uniformly chosen field edge.
// The start point sits on the chosen edge; a second point is drawn on
// the opposite edge, and the body's velocity points from start toward
// that point, so every spawned body heads into the field interior.
func (s *Spawner) Next() physics.Body {
	edge := physics.Edge(s.rng.IntN(4))
	start, end := s.entryLine(edge)

	theta := math.Atan2(end.Y()-start.Y(), end.X()-start.X())

	body := physics.NewBody()
	body.Position = mgl64.Vec3{start.X(), start.Y(), 0}
	body.LinearVelocity = mgl64.Vec3{
		math.Cos(theta) * s.speed,
		math.Sin(theta) * s.speed,
		0,
	}
	return body
}

// entryLine picks the start point on the given edge and the aim point on
// the opposite edge. The along-edge coordinates of both points are drawn
// independently; the across-edge coordinates are the two boundaries.
func (s *Spawner) entryLine(edge physics.Edge) (start, end mgl64.Vec2) {
	min, max := s.bounds.Min, s.bounds.Max
	switch edge {
	case physics.EdgeTop:
		start = mgl64.Vec2{s.uniform(min.X(), max.X()), max.Y()}
		end = mgl64.Vec2{s.uniform(min.X(), max.X()), min.Y()}
	case physics.EdgeRight:
		start = mgl64.Vec2{max.X(), s.uniform(min.Y(), max.Y())}
		end = mgl64.Vec2{min.X(), s.uniform(min.Y(), max.Y())}
	case physics.EdgeBottom:
		start = mgl64.Vec2{s.uniform(min.X(), max.X()), min.Y()}
		end = mgl64.Vec2{s.uniform(min.X(), max.X()), max.Y()}
	case physics.EdgeLeft:
		start = mgl64.Vec2{min.X(), s.uniform(min.Y(), max.Y())}
		end = mgl64.Vec2{max.X(), s.uniform(min.Y(), max.Y())}
	}
	return start, end
}

func (s *Spawner) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
