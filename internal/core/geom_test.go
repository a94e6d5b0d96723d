package core

import "testing"

// fakeGrid is a small in-memory Grid for collision tests.
type fakeGrid struct {
	w, h    int
	blocked map[Point]bool
}

func (g fakeGrid) Size() (int, int) { return g.w, g.h }

func (g fakeGrid) Blocked(x, y int) bool { return g.blocked[Point{X: x, Y: y}] }

func TestCanOccupy(t *testing.T) {
	g := fakeGrid{w: 4, h: 3, blocked: map[Point]bool{{X: 1, Y: 1}: true}}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"open cell", 0, 0, true},
		{"blocked cell", 1, 1, false},
		{"bottom-right corner", 3, 2, true},
		{"left of grid", -1, 0, false},
		{"right of grid", 4, 0, false},
		{"above grid", 0, -1, false},
		{"below grid", 0, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanOccupy(g, tc.x, tc.y); got != tc.expected {
				t.Errorf("CanOccupy(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCanOccupyMatchesBlockedEverywhere(t *testing.T) {
	g := fakeGrid{w: 5, h: 5, blocked: map[Point]bool{{X: 0, Y: 0}: true, {X: 4, Y: 2}: true, {X: 2, Y: 3}: true}}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if CanOccupy(g, x, y) == g.Blocked(x, y) {
				t.Errorf("CanOccupy(%d, %d) must be the negation of Blocked", x, y)
			}
		}
	}
}

func TestCanPlace(t *testing.T) {
	g := fakeGrid{w: 4, h: 4, blocked: map[Point]bool{{X: 2, Y: 3}: true}}
	bar := [][]bool{{true, true, true}}
	ell := [][]bool{{true, false}, {true, true}}

	tests := []struct {
		name       string
		mask       [][]bool
		ox, oy     int
		allowAbove bool
		expected   bool
	}{
		{"fits at origin", bar, 0, 0, false, true},
		{"sticks out right", bar, 2, 0, false, false},
		{"sticks out left", bar, -1, 0, false, false},
		{"overlaps blocked cell", bar, 0, 3, false, false},
		{"below floor", bar, 0, 4, false, false},
		{"above top allowed", ell, 0, -1, true, true},
		{"above top rejected", ell, 0, -1, false, false},
		{"lower cell hits blocked", ell, 2, 2, false, false},
		{"hole over blocked cell", [][]bool{{true, false}}, 1, 3, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPlace(g, tc.mask, tc.ox, tc.oy, tc.allowAbove); got != tc.expected {
				t.Errorf("CanPlace(%v, %d, %d) = %v, expected %v", tc.mask, tc.ox, tc.oy, got, tc.expected)
			}
		})
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tc := range tests {
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Delta() = (%d, %d), expected (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
		parsed, ok := ParseDirection(tc.dir.String())
		if !ok || parsed != tc.dir {
			t.Errorf("ParseDirection(%q) = %v, %v", tc.dir.String(), parsed, ok)
		}
	}

	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor(" Cyan "); !ok || c != ColorCyan {
		t.Errorf("ParseColor(Cyan) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
	if ColorOrange.String() != "orange" {
		t.Errorf("ColorOrange.String() = %q", ColorOrange.String())
	}
}
