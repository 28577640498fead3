package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/utils"
)

const defaultConfigPath = "config.json"

func main() {
	configPath := defaultConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Load configuration - fallback to defaults if the file doesn't exist
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		fmt.Println("Invalid configuration:", err)
		os.Exit(1)
	}

	g := initializeGame(config)
	displayGameInfo(config, g.grid)
	g.recordGeneration()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	pauseChan := make(chan os.Signal, 1)
	notifyPause(pauseChan)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			g.displayFinalStats()
			return
		case <-pauseChan:
			g.togglePause()
		default:
			// Continue with game loop
		}

		g.renderer.Clear()

		livingCells, density, status := g.currentStatus()
		g.displayGameStatus(livingCells, density, status)
		g.renderer.Display(g.grid)
		if projection, ok := g.renderer.(*model.ProjectionRenderer); ok {
			projection.Advance()
		}

		if config.MaxGenerations > 0 && g.generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			g.displayFinalStats()
			return
		}

		if g.step() {
			g.recordGeneration()
			g.maybeRestart(g.grid.CountAlive())
		}

		time.Sleep(config.FrameRate)
	}
}
