package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/utils"
)

// game is the single owner of the grid; renderers only read from it
type game struct {
	config   utils.Config
	grid     *model.Grid
	pool     *model.BufferPool
	renderer model.Renderer
	stats    *utils.Stats
	rng      *rand.Rand

	generation     int
	lastRestartGen int
	stagnantCount  int
	frameCount     int
	paused         bool
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) *game {
	g := &game{
		config: config,
		rng:    model.NewRand(config.Seed),
		stats:  utils.NewStats(),
	}
	if config.UseMemoryPool {
		g.pool = model.NewBufferPool()
	}

	g.grid = newSeededGrid(config, g.pool, g.rng)

	switch config.Render {
	case utils.RenderLayers:
		g.renderer = &model.LayerRenderer{}
	default:
		projection := model.NewProjectionRenderer(config.CanvasColumns, config.CanvasRows)
		projection.AutoRotate = config.AutoRotate
		g.renderer = projection
	}

	return g
}

func newSeededGrid(config utils.Config, pool *model.BufferPool, rng *rand.Rand) *model.Grid {
	grid := model.NewGrid(config.Width, config.Height, config.Depth)
	if pool != nil {
		grid.UsePool(pool)
	}
	grid.ResetWithInterestingPatterns(config, rng)
	return grid
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	w, h, d := grid.Dimensions()
	fmt.Printf("Features: Memory Pool: %v, Bounded: %v, Render: %s\n",
		config.UseMemoryPool, config.UseBoundedGrid, config.Render)
	fmt.Printf("Grid: %dx%dx%d | Initial alive cells: %d\n", w, h, d, grid.CountAlive())
	fmt.Println("Press Ctrl+C to exit gracefully" + pauseHint)
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// step advances the grid when the frame counter reaches the update interval.
// It reports whether a generation was computed.
func (g *game) step() bool {
	if g.paused {
		return false
	}
	g.frameCount++
	if g.frameCount < g.config.UpdateInterval {
		return false
	}
	g.frameCount = 0

	start := time.Now()
	if g.config.UseBoundedGrid {
		g.grid.UpdateBounded()
	} else {
		g.grid.Update()
	}
	g.generation++
	g.stats.Update(g.generation, g.grid.CountAlive(), time.Since(start))

	return true
}

// recordGeneration updates stagnation tracking for the current generation
func (g *game) recordGeneration() {
	if g.grid.IsStagnant() {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	g.grid.UpdateHistory()
}

// currentStatus returns the status line inputs for this frame
func (g *game) currentStatus() (livingCells int, density float64, status string) {
	livingCells = g.grid.CountAlive()
	if n := g.grid.Len(); n > 0 {
		density = float64(livingCells) / float64(n) * 100
	}

	status = "Running"
	if g.stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	if g.paused {
		status = "PAUSED"
	}

	return livingCells, density, status
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(livingCells int, density float64, status string) {
	boundingInfo := ""
	if g.config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", g.grid.GetBoundingBoxSize())
	}

	fmt.Printf("Gen: %d | Alive: %d | Density: %.1f%% | Status: %s%s\n",
		g.generation, livingCells, density, status, boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation,
		time.Since(g.stats.StartTime).Seconds())

	if g.generation > g.lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// maybeRestart reseeds the grid or injects life after an observation
func (g *game) maybeRestart(livingCells int) {
	shouldRestart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.config)

	switch {
	case shouldRestart && g.config.AutoRestart:
		fmt.Printf("🔄 Restarting due to %s...\n", reason)
		g.restart()
	case g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold:
		// Inject some life to try to break the stagnation
		g.grid.InjectRandomLife(g.rng, g.config.InjectionCount)
	}
}

// restart handles the game restart logic
func (g *game) restart() {
	g.grid = newSeededGrid(g.config, g.pool, g.rng)
	g.lastRestartGen = g.generation
	g.stagnantCount = 0
	g.frameCount = 0
	g.stats.Restarts++

	fmt.Printf("✨ New patterns loaded! Alive cells: %d\n", g.grid.CountAlive())
}

// togglePause flips between paused and running
func (g *game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		fmt.Println("Paused")
	} else {
		fmt.Println("Resumed")
	}
}

// displayFinalStats prints the summary shown on shutdown
func (g *game) displayFinalStats() {
	fmt.Printf("Final stats: %d generations, %d restarts in %.1f seconds\n",
		g.generation, g.stats.Restarts, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d peak\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation)
}
