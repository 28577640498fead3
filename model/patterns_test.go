package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol3d/utils"
)

func TestAddCubeClipsToGrid(t *testing.T) {
	t.Parallel()

	g := NewGrid(4, 4, 4)
	g.AddCube(2, 2, 2, 3)
	assert.Equal(t, 8, g.CountAlive())
}

func TestSeedCluster(t *testing.T) {
	t.Parallel()

	g := NewGrid(20, 20, 20)
	g.SeedCluster(10, 10, 10)
	assert.Equal(t, 18, g.CountAlive())

	for _, c := range []Coord{
		{9, 9, 9}, {10, 10, 10},
		{8, 10, 10}, {11, 10, 10}, {10, 8, 10}, {10, 11, 10}, {10, 10, 8}, {10, 10, 11},
		{7, 9, 10}, {12, 10, 10}, {10, 7, 10}, {10, 12, 10},
	} {
		cell, ok := g.Get(c.X, c.Y, c.Z)
		require.True(t, ok)
		assert.Equal(t, Alive, cell, "cell %v", c)
	}

	// Near a corner the out of range cells are skipped
	corner := NewGrid(20, 20, 20)
	assert.NotPanics(t, func() { corner.SeedCluster(0, 0, 0) })
	assert.Equal(t, 6, corner.CountAlive())
}

func TestRandomizeIsDeterministic(t *testing.T) {
	t.Parallel()

	a := NewGrid(8, 8, 8)
	b := NewGrid(8, 8, 8)
	a.Randomize(NewRand(42), 0.3)
	b.Randomize(NewRand(42), 0.3)

	assert.Equal(t, a.Hash(), b.Hash())
	assert.Greater(t, a.CountAlive(), 0)
	assert.Less(t, a.CountAlive(), a.Len())

	none := NewGrid(8, 8, 8)
	none.Randomize(NewRand(1), 0)
	assert.Equal(t, 0, none.CountAlive())

	all := NewGrid(8, 8, 8)
	all.Randomize(NewRand(1), 1)
	assert.Equal(t, all.Len(), all.CountAlive())
}

func TestInjectRandomLife(t *testing.T) {
	t.Parallel()

	g := NewGrid(5, 5, 5)
	g.InjectRandomLife(NewRand(7), 10)
	assert.Greater(t, g.CountAlive(), 0)
	assert.LessOrEqual(t, g.CountAlive(), 10)

	empty := NewGrid(0, 0, 0)
	assert.NotPanics(t, func() { empty.InjectRandomLife(NewRand(7), 10) })
}

func TestResetWithInterestingPatterns(t *testing.T) {
	t.Parallel()

	config := utils.DefaultConfig()
	config.RandomDensity = 0

	g := NewGrid(20, 20, 20)
	g.Set(0, 19, 0, Alive)
	g.Update()
	g.UpdateHistory()

	g.ResetWithInterestingPatterns(config, NewRand(1))

	assert.Equal(t, uint64(0), g.Generation())
	assert.False(t, g.IsStagnant())
	// Central cluster plus two corner blocks
	assert.Equal(t, 18+8+8, g.CountAlive())

	small := NewGrid(3, 3, 3)
	small.ResetWithInterestingPatterns(config, NewRand(1))
	assert.Equal(t, 0, small.CountAlive())
}
