package xymap

import "testing"

func TestRectangularMapping(t *testing.T) {
	m := NewRectangular(5, 3)
	cases := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{4, 0, 4},
		{0, 1, 5},
		{4, 2, 14},
	}
	for _, tc := range cases {
		if got := m.Map(tc.x, tc.y); got != tc.want {
			t.Errorf("Map(%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestSerpentineMapping(t *testing.T) {
	m := NewSerpentine(4, 2)
	// Row 0 runs left-to-right, row 1 runs right-to-left.
	cases := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{0, 1, 7},
		{3, 1, 4},
	}
	for _, tc := range cases {
		if got := m.Map(tc.x, tc.y); got != tc.want {
			t.Errorf("Map(%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestLookupTableMapping(t *testing.T) {
	table := []int{3, 2, 1, 0}
	m := NewLookupTable(2, 2, table)
	if got := m.Map(0, 0); got != 3 {
		t.Errorf("Map(0,0) = %d, want 3", got)
	}
	if got := m.Map(1, 1); got != 0 {
		t.Errorf("Map(1,1) = %d, want 0", got)
	}
}

func TestOutOfRangeMapsToSentinel(t *testing.T) {
	m := NewRectangular(4, 4)
	total := m.Total()
	cases := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}}
	for _, c := range cases {
		if got := m.Map(c[0], c[1]); got != total-1 {
			t.Errorf("Map(%d,%d) = %d, want sentinel %d", c[0], c[1], got, total-1)
		}
	}
}

func TestAllLegalCoordsBelowTotal(t *testing.T) {
	m := NewRectangular(7, 5)
	total := m.Total()
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if idx := m.Map(x, y); idx < 0 || idx >= total {
				t.Fatalf("Map(%d,%d) = %d out of [0,%d)", x, y, idx, total)
			}
		}
	}
}
