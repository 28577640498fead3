package model

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "··"

	macosClearCmd = "clear"

	// Shades for projected cells, farthest to nearest
	depthShades = ".:+*#@"
)

// Renderer draws a read-only view of the grid each frame
type Renderer interface {
	Display(g *Grid)
	Clear()
}

func clearTerminal() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}

// LayerRenderer prints every z-layer of the grid one after another
type LayerRenderer struct {
	Out io.Writer
}

// Display renders each z-layer as rows of blocks
func (r *LayerRenderer) Display(g *Grid) {
	var sb strings.Builder
	width, height, depth := g.Dimensions()

	for z := range depth {
		fmt.Fprintf(&sb, "z=%d\n", z)
		for y := range height {
			for x := range width {
				if c, _ := g.Get(x, y, z); c == Alive {
					sb.WriteString(gridPosBlock)
				} else {
					sb.WriteString(gridPosEmpty)
				}
			}
			sb.WriteByte('\n')
		}
	}

	fmt.Fprint(writerOrStdout(r.Out), sb.String())
}

// Clear clears the terminal screen
func (r *LayerRenderer) Clear() { clearTerminal() }

// ProjectionRenderer draws alive cells rotated about the grid center and
// projected onto a character canvas, nearer cells in denser glyphs
type ProjectionRenderer struct {
	Out io.Writer

	Columns, Rows int

	RotationX, RotationY float64
	AutoRotate           bool
}

// NewProjectionRenderer returns a renderer for a columns x rows canvas with auto rotation on
func NewProjectionRenderer(columns, rows int) *ProjectionRenderer {
	return &ProjectionRenderer{Columns: columns, Rows: rows, AutoRotate: true}
}

// Advance moves the view one frame forward
func (r *ProjectionRenderer) Advance() {
	if !r.AutoRotate {
		return
	}
	r.RotationY += 0.005
	r.RotationX += 0.003
}

// Rotate adds a manual rotation and stops auto rotation
func (r *ProjectionRenderer) Rotate(dx, dy float64) {
	r.RotationX += dx
	r.RotationY += dy
	r.AutoRotate = false
}

// Project rasterizes the alive cells of g into Rows lines of Columns runes
func (r *ProjectionRenderer) Project(g *Grid) []string {
	if r.Columns <= 0 || r.Rows <= 0 {
		return nil
	}

	canvas := make([][]rune, r.Rows)
	depthBuf := make([][]float64, r.Rows)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", r.Columns))
		depthBuf[i] = make([]float64, r.Columns)
		for j := range depthBuf[i] {
			depthBuf[i][j] = math.Inf(-1)
		}
	}

	width, height, depth := g.Dimensions()
	radius := math.Sqrt(float64(width*width+height*height+depth*depth)) / 2
	if radius == 0 {
		return canvasLines(canvas)
	}
	scaleX := float64(r.Columns-1) / (2 * radius)
	scaleY := float64(r.Rows-1) / (2 * radius)

	offsetX := float64(width) / 2
	offsetY := float64(height) / 2
	offsetZ := float64(depth) / 2

	for c := range g.Cells() {
		if c.Cell != Alive {
			continue
		}

		rx, ry, rz := RotatePoint(
			float64(c.X)+0.5-offsetX,
			float64(c.Y)+0.5-offsetY,
			float64(c.Z)+0.5-offsetZ,
			r.RotationX, r.RotationY,
		)

		col := int(math.Round(rx*scaleX + float64(r.Columns-1)/2))
		row := int(math.Round(-ry*scaleY + float64(r.Rows-1)/2))
		if col < 0 || col >= r.Columns || row < 0 || row >= r.Rows {
			continue
		}
		if rz <= depthBuf[row][col] {
			continue
		}
		depthBuf[row][col] = rz

		// rz lies in [-radius, radius]
		shade := int((rz + radius) / (2 * radius) * float64(len(depthShades)))
		shade = min(max(shade, 0), len(depthShades)-1)
		canvas[row][col] = rune(depthShades[shade])
	}

	return canvasLines(canvas)
}

func canvasLines(canvas [][]rune) []string {
	lines := make([]string, len(canvas))
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines
}

// Display renders the projected view
func (r *ProjectionRenderer) Display(g *Grid) {
	fmt.Fprintln(writerOrStdout(r.Out), strings.Join(r.Project(g), "\n"))
}

// Clear clears the terminal screen
func (r *ProjectionRenderer) Clear() { clearTerminal() }

// RotatePoint rotates (x, y, z) about the origin, first around the Y axis by
// angleY and then around the X axis by angleX
func RotatePoint(x, y, z, angleX, angleY float64) (float64, float64, float64) {
	cosY, sinY := math.Cos(angleY), math.Sin(angleY)
	x1 := x*cosY - z*sinY
	z1 := x*sinY + z*cosY

	cosX, sinX := math.Cos(angleX), math.Sin(angleX)
	y1 := y*cosX - z1*sinX
	z2 := y*sinX + z1*cosX

	return x1, y1, z2
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
