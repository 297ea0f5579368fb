package core

import "testing"

func TestRectContains(t *testing.T) {
	// Board frame of the game screen
	r := NewRect(0, 1, 42, 22)

	tests := []struct {
		name string
		x, y int
		in   bool
	}{
		{"origin", 0, 1, true},
		{"last cell", 41, 22, true},
		{"right edge", 42, 10, false},
		{"bottom edge", 10, 23, false},
		{"hud row", 10, 0, false},
		{"negative", -1, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.in {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.in)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 1, 42, 22).Inset(1)
	if r != (Rect{X: 1, Y: 2, W: 40, H: 20}) {
		t.Errorf("Inset(1) = %+v, expected the 40x20 playfield", r)
	}
	if r.Right() != 41 || r.Bottom() != 22 {
		t.Errorf("edges = (%d, %d), expected (41, 22)", r.Right(), r.Bottom())
	}

	if tiny := NewRect(0, 0, 3, 1).Inset(2); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("over-inset size = %dx%d, expected 0x0", tiny.W, tiny.H)
	}
}

func TestRectCenteredIn(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"even fit", NewRect(0, 0, 42, 22), 20, 6, Rect{X: 11, Y: 8, W: 20, H: 6}},
		{"odd remainder", NewRect(0, 1, 42, 22), 15, 7, Rect{X: 13, Y: 8, W: 15, H: 7}},
		{"offset outer", NewRect(10, 5, 10, 4), 4, 2, Rect{X: 13, Y: 6, W: 4, H: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outer.CenteredIn(tc.w, tc.h); got != tc.expected {
				t.Errorf("CenteredIn(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}
