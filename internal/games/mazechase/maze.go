package mazechase

import (
	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
)

// CellType is the content of one maze cell.
type CellType uint8

const (
	CellWall CellType = iota
	CellEmpty
	CellPellet
	CellPowerPellet
	CellTunnel // Empty cell at a row edge that may wrap when enabled
)

var cellRunes = map[rune]CellType{
	'#': CellWall,
	' ': CellEmpty,
	'.': CellPellet,
	'o': CellPowerPellet,
	'=': CellTunnel,
}

// Consumable reports whether the player scores by entering the cell.
func (c CellType) Consumable() bool {
	return c == CellPellet || c == CellPowerPellet
}

// Maze is the static wall layout plus the consumable items left on it.
type Maze struct {
	width  int
	height int
	cells  [][]CellType // [row][col]
	wrap   bool
}

// parseMaze converts layout rows into cells. Rows must be non-empty, of equal
// length and use only the known cell characters.
func parseMaze(rows []string, wrap bool) (*Maze, error) {
	if len(rows) == 0 {
		return nil, config.Invalid("maze.rows", "layout is empty")
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, config.Invalid("maze.rows", "row 0 is empty")
	}

	m := &Maze{width: width, height: len(rows), wrap: wrap}
	m.cells = make([][]CellType, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, config.Invalid("maze.rows", "row %d has width %d, expected %d", y, len(runes), width)
		}
		m.cells[y] = make([]CellType, width)
		for x, ch := range runes {
			cell, ok := cellRunes[ch]
			if !ok {
				return nil, config.Invalid("maze.rows", "row %d col %d: unknown cell %q", y, x, ch)
			}
			m.cells[y][x] = cell
		}
	}
	return m, nil
}

// Size implements core.Grid.
func (m *Maze) Size() (int, int) {
	return m.width, m.height
}

// Blocked implements core.Grid: only walls block movement.
func (m *Maze) Blocked(x, y int) bool {
	return m.cells[y][x] == CellWall
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as wall.
func (m *Maze) At(x, y int) CellType {
	if !core.InBounds(m, x, y) {
		return CellWall
	}
	return m.cells[y][x]
}

// Remaining counts pellets and power pellets still on the maze.
func (m *Maze) Remaining() int {
	n := 0
	for _, row := range m.cells {
		for _, c := range row {
			if c.Consumable() {
				n++
			}
		}
	}
	return n
}

// consume empties the cell at p if it holds an item and returns what was there.
func (m *Maze) consume(p core.Point) CellType {
	cell := m.At(p.X, p.Y)
	if cell.Consumable() {
		m.cells[p.Y][p.X] = CellEmpty
	}
	return cell
}

// step resolves a one-cell move from p. With wrapping enabled, a horizontal
// move off the edge from a tunnel cell lands on the opposite edge of the same
// row unless that cell is a wall.
func (m *Maze) step(p core.Point, d core.Direction) (core.Point, bool) {
	dx, dy := d.Delta()
	next := p.Add(dx, dy)
	if core.CanOccupy(m, next.X, next.Y) {
		return next, true
	}

	if !m.wrap || dy != 0 || m.At(p.X, p.Y) != CellTunnel {
		return p, false
	}
	switch {
	case next.X < 0:
		next.X = m.width - 1
	case next.X >= m.width:
		next.X = 0
	default:
		return p, false
	}
	if !core.CanOccupy(m, next.X, next.Y) {
		return p, false
	}
	return next, true
}

// Rows returns a deep copy of the cells.
func (m *Maze) Rows() [][]CellType {
	out := make([][]CellType, m.height)
	for y, row := range m.cells {
		out[y] = append([]CellType(nil), row...)
	}
	return out
}

func (m *Maze) clone() *Maze {
	return &Maze{width: m.width, height: m.height, cells: m.Rows(), wrap: m.wrap}
}
