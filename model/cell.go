package model

// Cell is the state of a single grid position
type Cell uint8

const (
	Empty Cell = iota
	Alive
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Alive:
		return "Alive"
	default:
		return "Cell(?)"
	}
}

// Coord is a position in grid space
type Coord struct {
	X, Y, Z int
}

// CellAt pairs a cell with its position, as produced by Grid.Cells
type CellAt struct {
	X, Y, Z int
	Cell    Cell
}

// Box is an inclusive axis-aligned region of the grid
type Box struct {
	Min, Max Coord
}

// Volume returns the number of positions covered by the box
func (b Box) Volume() int {
	if b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z {
		return 0
	}
	return (b.Max.X - b.Min.X + 1) * (b.Max.Y - b.Min.Y + 1) * (b.Max.Z - b.Min.Z + 1)
}

// Expand grows the box by margin on every side, clipped to a width x height x depth grid
func (b Box) Expand(margin, width, height, depth int) Box {
	return Box{
		Min: Coord{
			X: max(0, b.Min.X-margin),
			Y: max(0, b.Min.Y-margin),
			Z: max(0, b.Min.Z-margin),
		},
		Max: Coord{
			X: min(width-1, b.Max.X+margin),
			Y: min(height-1, b.Max.Y+margin),
			Z: min(depth-1, b.Max.Z+margin),
		},
	}
}
