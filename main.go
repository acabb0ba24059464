package main

import (
	"flag"
	"os"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/pkg/log"
	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	cfg := game.DefaultConfig()
	baseFPS := flag.Int("fps", cfg.BaseFPS, "Base tick rate in updates per second")
	gridWidth := flag.Int("grid-width", cfg.Grid.Width, "Grid width in cells")
	gridHeight := flag.Int("grid-height", cfg.Grid.Height, "Grid height in cells")
	cellSize := flag.Int("cell", cfg.CellSize, "Cell size in pixels")
	logLevel := flag.String("log-level", "info", "Log level (error, warn, info, debug)")
	flag.Parse()

	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		log.Warn("%v, defaulting to info", err)
		level = log.LogLevelInfo
	}
	log.SetLevel(level)

	cfg.BaseFPS = *baseFPS
	cfg.Grid = types.Grid{Width: *gridWidth, Height: *gridHeight}
	cfg.CellSize = *cellSize

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	session, err := game.NewSession(cfg, rng)
	if err != nil {
		log.Error("create session: %v", err)
		os.Exit(1)
	}

	renderer := ui.NewRenderer(cfg)

	rl.InitWindow(renderer.ScreenWidth(), renderer.ScreenHeight(), "Snake")
	defer rl.CloseWindow()

	// Render at a fixed 60 FPS; the simulation is paced separately below.
	rl.SetTargetFPS(60)

	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if session.IsOver() {
			if rl.IsKeyPressed(rl.KeyQ) {
				break
			}
			if rl.IsKeyPressed(rl.KeyR) {
				if err := session.Restart(); err != nil {
					log.Error("restart: %v", err)
					break
				}
				lastUpdate = time.Now()
			}
		} else {
			switch {
			case rl.IsKeyPressed(rl.KeyUp):
				session.SubmitDirection(types.Up)
			case rl.IsKeyPressed(rl.KeyDown):
				session.SubmitDirection(types.Down)
			case rl.IsKeyPressed(rl.KeyLeft):
				session.SubmitDirection(types.Left)
			case rl.IsKeyPressed(rl.KeyRight):
				session.SubmitDirection(types.Right)
			}
		}

		// The tick rate rises with the score, so the interval is
		// recomputed every frame.
		updateInterval := time.Second / time.Duration(session.CurrentFPS())
		if !session.IsOver() && time.Since(lastUpdate) >= updateInterval {
			if err := session.Tick(); err != nil {
				log.Error("tick: %v", err)
				break
			}
			lastUpdate = time.Now()
		}

		renderer.Draw(session)
	}
}
