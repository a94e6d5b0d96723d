package core

// Grid is the view of a bounded 2D board that collision checks need.
// Both the falling-block board and the maze implement it.
type Grid interface {
	// Size returns the grid width and height in cells.
	Size() (w, h int)

	// Blocked reports whether the in-bounds cell (x, y) cannot be entered.
	Blocked(x, y int) bool
}

// InBounds reports whether (x, y) lies inside g.
func InBounds(g Grid, x, y int) bool {
	w, h := g.Size()
	return x >= 0 && x < w && y >= 0 && y < h
}

// CanOccupy reports whether a single cell at (x, y) is inside g and not blocked.
// It never panics on out-of-range coordinates.
func CanOccupy(g Grid, x, y int) bool {
	if !InBounds(g, x, y) {
		return false
	}
	return !g.Blocked(x, y)
}

// CanPlace reports whether every set cell of mask, offset by (ox, oy), can be
// occupied in g. Rows of the mask that land above the top edge (y < 0) are
// accepted when allowAbove is true; every other out-of-bounds cell is invalid.
func CanPlace(g Grid, mask [][]bool, ox, oy int, allowAbove bool) bool {
	w, h := g.Size()
	for row := range mask {
		for col, set := range mask[row] {
			if !set {
				continue
			}
			x, y := ox+col, oy+row
			if x < 0 || x >= w || y >= h {
				return false
			}
			if y < 0 {
				if !allowAbove {
					return false
				}
				continue
			}
			if g.Blocked(x, y) {
				return false
			}
		}
	}
	return true
}
