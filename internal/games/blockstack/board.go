package blockstack

import "github.com/vovakirdan/gamehub/internal/core"

// Board is the grid of locked cells. core.ColorDefault marks an empty cell.
type Board struct {
	width  int
	height int
	cells  [][]core.Color // [row][col]
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]core.Color, height)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, width)
	}
	return b
}

// Size implements core.Grid.
func (b *Board) Size() (int, int) {
	return b.width, b.height
}

// Blocked implements core.Grid: a cell is blocked once something is locked into it.
func (b *Board) Blocked(x, y int) bool {
	return b.cells[y][x] != core.ColorDefault
}

// At returns the color token at (x, y), or ColorDefault outside the board.
func (b *Board) At(x, y int) core.Color {
	if !core.InBounds(b, x, y) {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// lock writes the on-board cells of p. Cells above the top edge are dropped.
func (b *Board) lock(p Piece) {
	for _, c := range p.Cells() {
		if c.Y < 0 || !core.InBounds(b, c.X, c.Y) {
			continue
		}
		b.cells[c.Y][c.X] = p.Color
	}
}

// clearFullRows removes every fully occupied row, keeps the remaining rows in
// order and pads the top with empty rows. Returns the number of rows removed.
func (b *Board) clearFullRows() int {
	kept := make([][]core.Color, 0, b.height)
	for _, row := range b.cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]core.Color, cleared, b.height)
	for i := range fresh {
		fresh[i] = make([]core.Color, b.width)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

func rowFull(row []core.Color) bool {
	for _, c := range row {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the locked cells.
func (b *Board) Rows() [][]core.Color {
	out := make([][]core.Color, b.height)
	for y, row := range b.cells {
		out[y] = append([]core.Color(nil), row...)
	}
	return out
}
