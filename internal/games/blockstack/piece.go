package blockstack

import (
	"fmt"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
)

// Piece is a shape matrix with a color and an offset from the board origin.
// Pieces are values: moving or rotating returns a new Piece and the shape
// matrix of an existing Piece is never written to.
type Piece struct {
	Name  string
	Shape [][]bool // [row][col], true = occupied
	Color core.Color
	X, Y  int
}

// Moved returns p translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns p turned 90 degrees clockwise about its own matrix.
func (p Piece) Rotated() Piece {
	h := len(p.Shape)
	w := len(p.Shape[0])

	rotated := make([][]bool, w)
	for i := range rotated {
		rotated[i] = make([]bool, h)
		for j := range rotated[i] {
			rotated[i][j] = p.Shape[h-1-j][i]
		}
	}

	p.Shape = rotated
	return p
}

// Width returns the number of columns in the shape matrix.
func (p Piece) Width() int {
	if len(p.Shape) == 0 {
		return 0
	}
	return len(p.Shape[0])
}

// Cells returns the board coordinates of every occupied cell.
func (p Piece) Cells() []core.Point {
	cells := make([]core.Point, 0, 4)
	for row := range p.Shape {
		for col, set := range p.Shape[row] {
			if set {
				cells = append(cells, core.Point{X: p.X + col, Y: p.Y + row})
			}
		}
	}
	return cells
}

// parsePalette turns config piece definitions into unplaced pieces.
// Any malformed entry is a configuration error.
func parsePalette(defs []config.PieceDef, boardW, boardH int) ([]Piece, error) {
	if len(defs) == 0 {
		return nil, config.Invalid("pieces", "palette is empty")
	}

	palette := make([]Piece, 0, len(defs))
	for i, def := range defs {
		field := fmt.Sprintf("pieces[%d]", i)

		color, ok := core.ParseColor(def.Color)
		if !ok || color == core.ColorDefault {
			return nil, config.Invalid(field+".color", "unknown color %q", def.Color)
		}

		shape, err := parseShape(def.Shape)
		if err != nil {
			return nil, config.Invalid(field+".shape", "%v", err)
		}
		if len(shape[0]) > boardW || len(shape) > boardH {
			return nil, config.Invalid(field+".shape", "%dx%d shape does not fit a %dx%d board",
				len(shape[0]), len(shape), boardW, boardH)
		}

		palette = append(palette, Piece{Name: def.Name, Shape: shape, Color: color})
	}
	return palette, nil
}

func parseShape(rows []string) ([][]bool, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("shape has no rows")
	}

	width := len(rows[0])
	occupied := 0
	shape := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != width || width == 0 {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(row), width)
		}
		shape[y] = make([]bool, width)
		for x, ch := range row {
			switch ch {
			case '#':
				shape[y][x] = true
				occupied++
			case '.':
			default:
				return nil, fmt.Errorf("row %d: unexpected %q (use '#' or '.')", y, ch)
			}
		}
	}

	if occupied == 0 {
		return nil, fmt.Errorf("shape has no occupied cells")
	}
	return shape, nil
}
