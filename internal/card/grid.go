package card

import "errors"

// ErrInvalidDimensions indicates a grid was requested with fewer than one
// row or column.
var ErrInvalidDimensions = errors.New("rows and cols must be at least 1")

// ErrInsufficientWords indicates the word list is too short to fill the
// requested grid.
var ErrInsufficientWords = errors.New("not enough words to fill the grid")

// Cell is a single grid position: either a word or the decorative star
// that marks the free center square.
type Cell struct {
	Word string
	Star bool
}

// Grid is the layout of one bingo card before rendering.
//
// Cells is indexed [col][row], matching the column-major order in which
// shuffled words are placed: one full column of Rows cells is filled before
// the next column begins. Exactly one cell, Cells[Cols/2][Rows/2], is the
// star cell; every other cell holds a distinct word.
type Grid struct {
	Rows  int
	Cols  int
	Seed  int64
	Cells [][]Cell
}

// NewGrid shuffles words with the given seed and arranges the first
// rows*cols of them into a grid, then stamps the decorative star on the
// center cell. The word that landed on the center is dropped, not moved.
//
// # Determinism
//
// NewGrid is deterministic with respect to seed. Given the same seed and
// the same words slice (including order), NewGrid always produces the same
// Grid. The input slice is never mutated.
//
// # Errors
//
//   - rows and cols must both be at least 1, otherwise ErrInvalidDimensions
//     is returned.
//   - len(words) must be at least rows*cols, otherwise ErrInsufficientWords
//     is returned.
func NewGrid(words []string, rows, cols int, seed int64) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	if len(words) < rows*cols {
		return nil, ErrInsufficientWords
	}

	shuffled := Shuffle(words, seed)

	cells := make([][]Cell, cols)
	for col := 0; col < cols; col++ {
		cells[col] = make([]Cell, rows)
		for row := 0; row < rows; row++ {
			cells[col][row] = Cell{Word: shuffled[col*rows+row]}
		}
	}

	// Center is computed from the dimensions directly, not inferred from
	// the cell array shape; rows and cols are independent.
	cells[cols/2][rows/2] = Cell{Star: true}

	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Seed:  seed,
		Cells: cells,
	}, nil
}

// At returns the cell at the given column and row.
func (g *Grid) At(col, row int) Cell {
	return g.Cells[col][row]
}
