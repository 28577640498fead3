package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width, config.Height, config.Depth = 8, 8, 8
	config.RandomDensity = 0
	config.UpdateInterval = 3
	config.FrameRate = 0
	return config
}

func TestCheckRestartConditions(t *testing.T) {
	t.Parallel()

	config := testConfig()
	tests := []struct {
		name          string
		livingCells   int
		stagnantCount int
		wantRestart   bool
		wantReason    string
	}{
		{"extinct", 0, 0, true, "extinction"},
		{"stagnant", 10, config.StagnationThreshold, true, "stagnation detected"},
		{"active", 10, 1, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			restart, reason := checkRestartConditions(tt.livingCells, tt.stagnantCount, config)
			assert.Equal(t, tt.wantRestart, restart)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestStepHonorsUpdateInterval(t *testing.T) {
	t.Parallel()

	g := initializeGame(testConfig())

	assert.False(t, g.step())
	assert.False(t, g.step())
	assert.True(t, g.step())
	assert.Equal(t, 1, g.generation)
	assert.Equal(t, uint64(1), g.grid.Generation())

	g.togglePause()
	for range 10 {
		assert.False(t, g.step())
	}
	assert.Equal(t, 1, g.generation)

	_, _, status := g.currentStatus()
	assert.Equal(t, "PAUSED", status)

	g.togglePause()
	g.step()
	g.step()
	assert.True(t, g.step())
	assert.Equal(t, 2, g.generation)
}

func TestStagnationTriggersRestart(t *testing.T) {
	t.Parallel()

	config := testConfig()
	config.UpdateInterval = 1
	config.StagnationThreshold = 2

	g := initializeGame(config)
	g.grid.Clear()
	g.grid.AddCube(3, 3, 3, 2) // still life
	g.recordGeneration()

	require.True(t, g.step())
	g.recordGeneration()
	assert.Equal(t, 0, g.stagnantCount, "too little history")

	require.True(t, g.step())
	g.recordGeneration()
	require.True(t, g.step())
	g.recordGeneration()
	assert.Equal(t, 1, g.stagnantCount)

	require.True(t, g.step())
	g.recordGeneration()
	assert.Equal(t, 2, g.stagnantCount)

	g.maybeRestart(g.grid.CountAlive())
	assert.Equal(t, 1, g.stats.Restarts)
	assert.Equal(t, 0, g.stagnantCount)
	assert.Equal(t, g.generation, g.lastRestartGen)
	assert.Equal(t, uint64(0), g.grid.Generation())
}

func TestInitializeGameRenderers(t *testing.T) {
	t.Parallel()

	config := testConfig()
	config.Render = utils.RenderLayers
	config.UseMemoryPool = false
	g := initializeGame(config)
	assert.IsType(t, &model.LayerRenderer{}, g.renderer)
	assert.Nil(t, g.pool)

	config.Render = utils.RenderProjection
	config.AutoRotate = false
	config.UseMemoryPool = true
	g = initializeGame(config)
	projection, ok := g.renderer.(*model.ProjectionRenderer)
	require.True(t, ok)
	assert.False(t, projection.AutoRotate)
	assert.NotNil(t, g.pool)
}
