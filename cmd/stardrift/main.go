// cmd/stardrift/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/engine"
	"github.com/opd-ai/go-stardrift/pkg/event"
	"github.com/opd-ai/go-stardrift/pkg/logging"
	"github.com/opd-ai/go-stardrift/pkg/render"
	engorender "github.com/opd-ai/go-stardrift/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal' or 'headless'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	seed := flag.Uint64("seed", 0, "Simulation seed (overrides config)")
	flag.Parse()

	// Load configuration: file if present, environment overrides on top.
	var gameConfig *config.GameConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		gameConfig, err = config.LoadConfigFromEnv()
		if err != nil {
			log.Fatalf("Failed to load configuration from environment: %v", err)
		}
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	if *width > 0 {
		gameConfig.ViewportWidth = float64(*width)
	}
	if *height > 0 {
		gameConfig.ViewportHeight = float64(*height)
	}
	if *seed != 0 {
		gameConfig.Seed = *seed
	}

	game := engine.NewGame(gameConfig)

	switch *renderer {
	case "terminal":
		runTerminal(game)
	case "headless":
		runHeadless(game)
	case "engo":
		fallthrough
	default:
		runEngo(game, gameConfig, *fullscreen)
	}
}

// runEngo starts the windowed Engo renderer.
func runEngo(game *engine.Game, cfg *config.GameConfig, fullscreen bool) {
	scene := engorender.NewGameScene(game)

	opts := engo.RunOptions{
		Title:      "Stardrift",
		Width:      int(cfg.ViewportWidth),
		Height:     int(cfg.ViewportHeight),
		Fullscreen: fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}

// runTerminal drives the simulation at a fixed rate and draws ASCII frames.
func runTerminal(game *engine.Game) {
	const dt = 1.0 / 30.0

	r := render.NewTerminalRenderer(
		80, 24,
		game.Config.ViewportWidth,
		game.Config.ViewportHeight,
	)

	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			game.Tick(dt)
			snap := game.GetSnapshot()
			r.SetCamera(snap.CameraPos)
			render.DrawFrame(r, snap, game.GetStarStates())
		case <-sigChan:
			log.Println("Shutting down")
			return
		}
	}
}

// runHeadless runs the simulation without rendering, logging tick events.
// Useful for soak runs and profiling.
func runHeadless(game *engine.Game) {
	const dt = 1.0 / 60.0

	logger := logging.NewLogger()
	ctx := context.Background()

	game.EventBus.Subscribe(event.TickCompleted, func(e event.Event) {
		te := e.(*event.TickEvent)
		if te.Tick%600 == 0 {
			logger.Info(ctx, "simulation running",
				"tick", te.Tick,
				"elapsed_seconds", te.ElapsedTime,
			)
		}
	})

	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			game.Tick(dt)
		case <-sigChan:
			logger.Info(ctx, "shutting down",
				"final_tick", game.CurrentTick,
			)
			return
		}
	}
}
