package model

import (
	"crypto/md5"
	"fmt"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol3d/rules"
)

// Grid is a dense, bounded 3D board with 26-neighbor connectivity.
// Cells are stored flat with x varying fastest, then y, then z.
type Grid struct {
	width  int
	height int
	depth  int
	cells  []Cell

	// spare holds the previous generation's buffer when no pool is attached
	spare []Cell
	pool  *BufferPool

	generation uint64
	history    []string // Store recent grid states for cycle detection

	activeBounds struct {
		box   Box
		alive bool
		valid bool
	}
}

// NewGrid creates a grid with the specified dimensions and every cell Empty.
// Negative dimensions are treated as zero.
func NewGrid(width, height, depth int) *Grid {
	width, height, depth = max(0, width), max(0, height), max(0, depth)
	return &Grid{
		width:  width,
		height: height,
		depth:  depth,
		cells:  make([]Cell, width*height*depth),
	}
}

// UsePool makes Update draw its next-generation buffers from pool
func (g *Grid) UsePool(pool *BufferPool) {
	g.pool = pool
	g.spare = nil
}

// Dimensions returns the width, height and depth of the grid
func (g *Grid) Dimensions() (width, height, depth int) {
	return g.width, g.height, g.depth
}

// Len returns the number of cells in the grid
func (g *Grid) Len() int {
	return len(g.cells)
}

// Generation returns the number of updates applied since creation or the last Clear
func (g *Grid) Generation() uint64 {
	return g.generation
}

// Index returns the linear storage index of (x, y, z). Coordinates are not checked.
func (g *Grid) Index(x, y, z int) int {
	return x + y*g.width + z*g.width*g.height
}

func (g *Grid) inBounds(x, y, z int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < g.depth
}

// Get returns the cell at (x, y, z). ok is false when the coordinate is out of range.
func (g *Grid) Get(x, y, z int) (cell Cell, ok bool) {
	if !g.inBounds(x, y, z) {
		return Empty, false
	}
	return g.cells[g.Index(x, y, z)], true
}

// Set writes the cell at (x, y, z) and reports whether the coordinate was in range.
// Nothing is modified when it returns false.
func (g *Grid) Set(x, y, z int, cell Cell) bool {
	if !g.inBounds(x, y, z) {
		return false
	}
	g.cells[g.Index(x, y, z)] = cell
	g.activeBounds.valid = false
	return true
}

// Clear empties every cell and resets generation and history
func (g *Grid) Clear() {
	clear(g.cells)
	g.generation = 0
	g.history = nil
	g.activeBounds.valid = false
}

// CountAliveNeighbors counts Alive cells among the 26 neighbors of (x, y, z).
// Neighbors outside the grid are skipped; there is no wraparound.
func (g *Grid) CountAliveNeighbors(x, y, z int) int {
	return countAliveNeighbors(g.cells, g.width, g.height, g.depth, x, y, z)
}

func countAliveNeighbors(cells []Cell, width, height, depth, x, y, z int) int {
	count := 0

	minX, maxX := max(0, x-1), min(width-1, x+1)
	minY, maxY := max(0, y-1), min(height-1, y+1)
	minZ, maxZ := max(0, z-1), min(depth-1, z+1)

	for nz := minZ; nz <= maxZ; nz++ {
		for ny := minY; ny <= maxY; ny++ {
			row := ny*width + nz*width*height
			for nx := minX; nx <= maxX; nx++ {
				if nx == x && ny == y && nz == z {
					continue
				}
				if cells[row+nx] == Alive {
					count++
				}
			}
		}
	}

	return count
}

// Update advances the grid by one generation.
// Every cell is evaluated against the current generation before the result is swapped in.
func (g *Grid) Update() {
	next := g.nextBuffer()
	if len(g.cells) > 0 {
		g.evaluate(next, Box{Max: Coord{X: g.width - 1, Y: g.height - 1, Z: g.depth - 1}})
	}
	g.swap(next)
}

// UpdateBounded advances the grid by one generation, evaluating only the bounding box
// of alive cells plus a one cell margin. Cells further out have no alive neighbors and
// stay Empty, so the result matches Update.
func (g *Grid) UpdateBounded() {
	box, ok := g.BoundingBox()

	next := g.nextBuffer()
	if ok {
		g.evaluate(next, box.Expand(1, g.width, g.height, g.depth))
	}
	g.swap(next)
}

// evaluate writes the next state of every cell in region into next, splitting
// the region's z-slabs across workers. Workers only read g.cells.
func (g *Grid) evaluate(next []Cell, region Box) {
	var eg errgroup.Group

	slabs := region.Max.Z - region.Min.Z + 1
	numWorkers := min(runtime.NumCPU(), slabs)
	slabsPerWorker := (slabs + numWorkers - 1) / numWorkers // Ceiling division

	cur := g.cells
	w, h, d := g.width, g.height, g.depth

	for i := range numWorkers {
		var (
			startZ = region.Min.Z + i*slabsPerWorker
			endZ   = min(startZ+slabsPerWorker, region.Max.Z+1)
		)
		if startZ > region.Max.Z {
			break
		}

		eg.Go(func() error {
			for z := startZ; z < endZ; z++ {
				for y := region.Min.Y; y <= region.Max.Y; y++ {
					for x := region.Min.X; x <= region.Max.X; x++ {
						idx := x + y*w + z*w*h
						alive := cur[idx] == Alive
						if rules.ApplyLife3DRules(countAliveNeighbors(cur, w, h, d, x, y, z), alive) {
							next[idx] = Alive
						} else {
							next[idx] = Empty
						}
					}
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}
}

// nextBuffer returns an all-Empty buffer physically distinct from g.cells
func (g *Grid) nextBuffer() []Cell {
	n := len(g.cells)
	if g.pool != nil {
		return g.pool.Get(n)
	}
	if len(g.spare) == n {
		buf := g.spare
		g.spare = nil
		clear(buf)
		return buf
	}
	return make([]Cell, n)
}

func (g *Grid) swap(next []Cell) {
	prev := g.cells
	g.cells = next
	g.generation++
	g.activeBounds.valid = false

	if g.pool != nil {
		g.pool.Put(prev)
	} else {
		g.spare = prev
	}
}

// CountAlive returns the total number of Alive cells
func (g *Grid) CountAlive() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Cells iterates every position in storage order (x fastest, then y, then z).
// Each call starts a fresh traversal of the grid's current state.
func (g *Grid) Cells() iter.Seq[CellAt] {
	return func(yield func(CellAt) bool) {
		for z := range g.depth {
			for y := range g.height {
				for x := range g.width {
					if !yield(CellAt{X: x, Y: y, Z: z, Cell: g.cells[g.Index(x, y, z)]}) {
						return
					}
				}
			}
		}
	}
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.alive = false

	for c := range g.Cells() {
		if c.Cell != Alive {
			continue
		}
		b := &g.activeBounds.box
		if !g.activeBounds.alive {
			b.Min = Coord{X: c.X, Y: c.Y, Z: c.Z}
			b.Max = b.Min
			g.activeBounds.alive = true
			continue
		}
		b.Min.X, b.Max.X = min(b.Min.X, c.X), max(b.Max.X, c.X)
		b.Min.Y, b.Max.Y = min(b.Min.Y, c.Y), max(b.Max.Y, c.Y)
		b.Min.Z, b.Max.Z = min(b.Min.Z, c.Z), max(b.Max.Z, c.Z)
	}

	g.activeBounds.valid = true
}

// BoundingBox returns the smallest box containing every Alive cell.
// ok is false when the grid has no Alive cells.
func (g *Grid) BoundingBox() (box Box, ok bool) {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	return g.activeBounds.box, g.activeBounds.alive
}

// GetBoundingBoxSize returns the volume of the active region
func (g *Grid) GetBoundingBoxSize() int {
	box, ok := g.BoundingBox()
	if !ok {
		return 0
	}
	return box.Volume()
}

// Hash returns an MD5 digest of the cells in storage order
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())

	// Keep only last 5 states to detect cycles
	if len(g.history) > 5 {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a cycle or static state
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.Hash()

	// Static state, period-2 and period-3 cycles
	for back := 1; back <= 3; back++ {
		if g.history[len(g.history)-back] == currentHash {
			return true
		}
	}

	return false
}
