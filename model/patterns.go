package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-gol3d/utils"
)

// NewRand returns a deterministic generator for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// AddCube fills a solid size x size x size cube of Alive cells with its lowest
// corner at (x0, y0, z0). Out of range cells are skipped.
func (g *Grid) AddCube(x0, y0, z0, size int) {
	for z := z0; z < z0+size; z++ {
		for y := y0; y < y0+size; y++ {
			for x := x0; x < x0+size; x++ {
				g.Set(x, y, z, Alive)
			}
		}
	}
}

// SeedCluster adds a 2x2x2 core just below (cx, cy, cz) with arms reaching out
// along each axis and a few scattered cells around them
func (g *Grid) SeedCluster(cx, cy, cz int) {
	g.AddCube(cx-1, cy-1, cz-1, 2)

	arms := []Coord{
		{cx - 2, cy, cz}, {cx + 1, cy, cz},
		{cx, cy - 2, cz}, {cx, cy + 1, cz},
		{cx, cy, cz - 2}, {cx, cy, cz + 1},

		{cx - 3, cy - 1, cz}, {cx + 2, cy, cz},
		{cx, cy - 3, cz}, {cx, cy + 2, cz},
	}
	for _, c := range arms {
		g.Set(c.X, c.Y, c.Z, Alive)
	}
}

// Randomize sets each currently Empty cell Alive with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	if density <= 0 {
		return
	}
	for i, c := range g.cells {
		if c == Empty && rng.Float64() < density {
			g.cells[i] = Alive
		}
	}
	g.activeBounds.valid = false
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Grid) InjectRandomLife(rng *rand.Rand, count int) {
	if len(g.cells) == 0 {
		return
	}
	for range count {
		g.Set(rng.IntN(g.width), rng.IntN(g.height), rng.IntN(g.depth), Alive)
	}
}

// ResetWithInterestingPatterns clears the grid and seeds a central cluster,
// corner blocks on larger grids and random life at the configured density
func (g *Grid) ResetWithInterestingPatterns(config utils.Config, rng *rand.Rand) {
	g.Clear()

	if g.width >= 6 && g.height >= 6 && g.depth >= 6 {
		g.SeedCluster(g.width/2, g.height/2, g.depth/2)

		// 2x2x2 blocks are still lifes under the 3D rule
		if g.width >= 16 && g.height >= 16 && g.depth >= 16 {
			g.AddCube(2, 2, 2, 2)
			g.AddCube(g.width-4, g.height-4, g.depth-4, 2)
		}
	}

	g.Randomize(rng, config.RandomDensity)
}
