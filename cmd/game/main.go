// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-salvage/pkg/audio"
	"github.com/opd-ai/go-salvage/pkg/config"
	"github.com/opd-ai/go-salvage/pkg/engine"
	"github.com/opd-ai/go-salvage/pkg/event"
	"github.com/opd-ai/go-salvage/pkg/logging"
	"github.com/opd-ai/go-salvage/pkg/physics"
	"github.com/opd-ai/go-salvage/pkg/render"
	"github.com/opd-ai/go-salvage/pkg/render/ebitengine"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	renderer := flag.String("renderer", "window", "Renderer type: 'window' or 'terminal'")
	seed := flag.Uint64("seed", 0, "Spawn RNG seed (0 seeds from the clock)")
	mute := flag.Bool("mute", false, "Disable audio")
	flag.Parse()

	logger := logging.NewLogger()
	ctx := context.Background()

	// Load configuration
	var gameConfig *config.GameConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "configuration file not found, using defaults", "path", *configPath)
		gameConfig = config.DefaultConfig()
	} else {
		var err error
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(*seed, *seed))

	game := engine.NewGame(gameConfig, rng)

	if !*mute {
		sound := audio.NewManager()
		if err := sound.Initialize(); err != nil {
			logger.Warn(ctx, "audio unavailable, continuing muted", "error", err.Error())
		} else {
			defer sound.Close()
			game.EventBus.Subscribe(event.AsteroidCaptured, func(event.Event) { sound.PlayCapture() })
			game.EventBus.Subscribe(event.CraftDestroyed, func(event.Event) { sound.PlayCollision() })
			game.EventBus.Subscribe(event.GameEnded, func(event.Event) { sound.PlayCollision() })
		}
	}

	game.Start()

	switch *renderer {
	case "terminal":
		runTerminal(game, gameConfig, logger)
	case "window":
		runWindow(game, gameConfig)
	default:
		log.Fatalf("Unknown renderer: %s", *renderer)
	}
}

// runWindow hosts the game in an Ebitengine window; the runner owns
// input mapping, dt clamping, and the frame counter.
func runWindow(game *engine.Game, cfg *config.GameConfig) {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	runner := ebitengine.NewRunner(game, cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(runner); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}
}

// runTerminal hosts a headless ticker loop with the ASCII renderer, for
// machines without a display.
func runTerminal(game *engine.Game, cfg *config.GameConfig, logger *logging.Logger) {
	bounds := physics.Bounds{
		Min: mgl64.Vec2{cfg.Field.MinX, cfg.Field.MinY},
		Max: mgl64.Vec2{cfg.Field.MaxX, cfg.Field.MaxY},
	}
	term := render.NewTerminalRenderer(68, 20, bounds, os.Stdout)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	const tick = time.Second / 30
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var frame uint64
	last := time.Now()
	for {
		select {
		case <-sigCh:
			logger.Info(context.Background(), "shutting down")
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > 0.1 {
				dt = 0.1
			}
			game.Update(dt, frame)
			frame++
			if err := term.Render(game.Snapshot()); err != nil {
				log.Fatalf("Render failed: %v", err)
			}
		}
	}
}
