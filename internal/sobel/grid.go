package sobel

import (
	"errors"
	"fmt"
)

// ErrPixelRange is returned when an input intensity is outside 0..255.
var ErrPixelRange = errors.New("sobel: pixel out of range")

// Grid is a row-major matrix of pixel intensities.
type Grid struct {
	Rows, Cols int
	Pix        []int
}

// NewGrid allocates a zeroed rows x cols grid.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{Rows: rows, Cols: cols, Pix: make([]int, rows*cols)}
}

// GridFromRows copies a rectangular [][]int into a Grid, rejecting ragged
// rows and intensities outside 0..255.
func GridFromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}
	cols := len(rows[0])
	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("sobel: row %d has %d columns, want %d", r, len(row), cols)
		}
		for c, v := range row {
			if v < 0 || v > MaxIntensity {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrPixelRange, v, r, c)
			}
			g.Pix[r*cols+c] = v
		}
	}
	return g, nil
}

func (g *Grid) At(r, c int) int {
	return g.Pix[r*g.Cols+c]
}

func (g *Grid) Set(r, c, v int) {
	g.Pix[r*g.Cols+c] = v
}

// ToRows returns the grid as freshly allocated rows.
func (g *Grid) ToRows() [][]int {
	rows := make([][]int, g.Rows)
	for r := range rows {
		rows[r] = make([]int, g.Cols)
		copy(rows[r], g.Pix[r*g.Cols:(r+1)*g.Cols])
	}
	return rows
}

// Gather reads the 8-neighbourhood around an interior pixel.
func (g *Grid) Gather(r, c int) Neighborhood {
	return Neighborhood{
		A: g.At(r-1, c-1), B: g.At(r-1, c), C: g.At(r-1, c+1),
		D: g.At(r, c-1), F: g.At(r, c+1),
		G: g.At(r+1, c-1), H: g.At(r+1, c), I: g.At(r+1, c+1),
	}
}

// Interior reports the number of pixels that have a full neighbourhood.
func (g *Grid) Interior() int {
	if g.Rows < 3 || g.Cols < 3 {
		return 0
	}
	return (g.Rows - 2) * (g.Cols - 2)
}
