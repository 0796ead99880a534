// Package engine orchestrates one simulation step per rendered frame:
// craft integration, field-body tumble, interaction resolution, terminal
// checks, and spawning.
package engine

import (
	"context"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-salvage/pkg/config"
	"github.com/opd-ai/go-salvage/pkg/entity"
	"github.com/opd-ai/go-salvage/pkg/event"
	"github.com/opd-ai/go-salvage/pkg/input"
	"github.com/opd-ai/go-salvage/pkg/logging"
	"github.com/opd-ai/go-salvage/pkg/physics"
	"github.com/opd-ai/go-salvage/pkg/spawn"
)

// GameStatus is the session state machine: Alive is initial, GameOver is
// terminal. There is no recovery within a session.
type GameStatus int

const (
	StatusAlive GameStatus = iota
	StatusGameOver
)

// Tumble axes give each field population its passive spin signature.
var (
	asteroidTumbleAxis = mgl64.Vec3{1, 1, 1}
	junkTumbleAxis     = mgl64.Vec3{-1, 1, -1}
)

// Game holds the whole simulation state. It is single-threaded: the host
// loop calls HandleEvent for each input transition, then Update once per
// frame. In a multi-threaded host, each Update must be treated as one
// atomic unit against event ingestion.
type Game struct {
	Config    *config.GameConfig
	Craft     *entity.Craft
	Asteroids entity.Population
	Junk      entity.Population
	Controls  input.Controls
	Status    GameStatus
	EventBus  *event.Bus

	asteroidSpawner *spawn.Spawner
	junkSpawner     *spawn.Spawner
	logger          *logging.Logger
}

// NewGame creates a game session from the given configuration. The
// random source drives spawn placement; the host seeds it from the wall
// clock, tests from fixed values.
func NewGame(cfg *config.GameConfig, rng *rand.Rand) *Game {
	bounds := physics.Bounds{
		Min: mgl64.Vec2{cfg.Field.MinX, cfg.Field.MinY},
		Max: mgl64.Vec2{cfg.Field.MaxX, cfg.Field.MaxY},
	}

	g := &Game{
		Config: cfg,
		Craft: entity.NewCraft(cfg.Craft.InitialFuel, entity.CraftTuning{
			LinearAccel:     cfg.Craft.LinearAccel,
			AngularAccel:    cfg.Craft.AngularAccel,
			BurnPerThruster: cfg.Craft.BurnPerThruster,
		}),
		Status:          StatusAlive,
		EventBus:        event.NewBus(),
		asteroidSpawner: spawn.New(cfg.Spawn.AsteroidInterval, cfg.Spawn.Speed, bounds, rng),
		junkSpawner:     spawn.New(cfg.Spawn.JunkInterval, cfg.Spawn.Speed, bounds, rng),
		logger:          logging.NewLogger(),
	}

	return g
}

// Start announces the session to subscribers. Call it after wiring
// event handlers, before the first Update.
func (g *Game) Start() {
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})
	g.logger.Info(context.Background(), "game started",
		"fuel", g.Craft.Fuel,
		"asteroid_interval", g.Config.Spawn.AsteroidInterval,
		"junk_interval", g.Config.Spawn.JunkInterval)
}

// HandleEvent forwards a key transition to the control state and reports
// whether it was handled.
func (g *Game) HandleEvent(ev input.KeyEvent) bool {
	return g.Controls.HandleEvent(ev)
}

// Update advances the simulation by one step. elapsed is in seconds,
// already clamped by the host loop; frame is the host's monotonically
// increasing frame counter.
//
// Once the session is over the craft stops integrating and interactions
// stop mattering, but field bodies keep tumbling and spawners keep
// running so the debris field stays alive on screen.
func (g *Game) Update(elapsed float64, frame uint64) {
	if g.Status == StatusAlive {
		g.Craft.Step(elapsed, g.Controls)
	}

	g.tumbleFieldBodies(elapsed)

	if g.Status == StatusAlive {
		g.resolveInteractions()
		g.checkTerminal()
	}

	g.runSpawners(frame)
}

// tumbleFieldBodies advances both populations: asteroids first, then
// junk, each around its own fixed axis.
func (g *Game) tumbleFieldBodies(elapsed float64) {
	g.Asteroids.ForEach(func(_ int, obj *entity.FlyingObject) {
		obj.Body.Tumble(elapsed, asteroidTumbleAxis)
	})
	g.Junk.ForEach(func(_ int, obj *entity.FlyingObject) {
		obj.Body.Tumble(elapsed, junkTumbleAxis)
	})
}

// resolveInteractions applies the capture and collision rules. Asteroids
// are processed before junk; within a population, slot order. Every
// asteroid in grab range is captured in the same step.
func (g *Game) resolveInteractions() {
	craftBody := &g.Craft.Object.Body

	g.Asteroids.ForEach(func(i int, obj *entity.FlyingObject) {
		if craftBody.DistanceTo(&obj.Body) <= g.Config.Rules.CaptureDistance && g.Controls.Grab {
			g.Asteroids.Deactivate(i)
			g.Craft.Refuel(g.Config.Rules.FuelPerAsteroid)
			g.EventBus.Publish(event.NewCaptureEvent(g, i, g.Craft.Fuel))
			g.logger.Debug(context.Background(), "asteroid captured",
				"index", i, "fuel", g.Craft.Fuel)
		}
	})

	g.Junk.ForEach(func(i int, obj *entity.FlyingObject) {
		if craftBody.DistanceTo(&obj.Body) <= g.Config.Rules.CollisionDistance {
			if g.Craft.Object.Active {
				g.Craft.Object.Active = false
				g.EventBus.Publish(event.NewCollisionEvent(g, i))
				g.logger.Info(context.Background(), "craft destroyed by junk", "index", i)
			}
		}
	})
}

// checkTerminal moves the session to GameOver when the craft has been
// destroyed or has burned past empty.
func (g *Game) checkTerminal() {
	if g.Craft.Fuel < 0 {
		g.Craft.Object.Active = false
	}
	if !g.Craft.Object.Active {
		g.Status = StatusGameOver
		g.EventBus.Publish(&event.BaseEvent{EventType: event.GameEnded, Source: g})
		g.logger.Info(context.Background(), "game over", "fuel", g.Craft.Fuel)
	}
}

// runSpawners checks both cadences against the same frame counter;
// asteroid and junk spawns can coincide on one frame.
func (g *Game) runSpawners(frame uint64) {
	if g.asteroidSpawner.Due(frame) {
		i := g.Asteroids.Spawn(g.asteroidSpawner.Next())
		g.EventBus.Publish(event.NewSpawnEvent(g, "asteroid", i))
	}
	if g.junkSpawner.Due(frame) {
		i := g.Junk.Spawn(g.junkSpawner.Next())
		g.EventBus.Publish(event.NewSpawnEvent(g, "junk", i))
	}
}
