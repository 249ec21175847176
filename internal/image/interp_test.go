package image

import (
	"math"
	"testing"
)

func TestResizeGridShape(t *testing.T) {
	src := [][]float64{
		{0, 1, 0},
		{1, 0, 1},
	}
	sizes := []struct{ w, h int }{
		{2, 2}, {3, 2}, {7, 5}, {100, 3}, {13, 97}, {1, 1},
	}
	for _, s := range sizes {
		got := ResizeGrid(src, s.w, s.h)
		if len(got) != s.h {
			t.Fatalf("ResizeGrid(%d, %d) rows = %d, want %d", s.w, s.h, len(got), s.h)
		}
		for y, row := range got {
			if len(row) != s.w {
				t.Fatalf("ResizeGrid(%d, %d) row %d len = %d, want %d", s.w, s.h, y, len(row), s.w)
			}
		}
	}
}

func TestResizeGridCornersExact(t *testing.T) {
	src := [][]float64{
		{0.1, 0.9},
		{0.4, 0.6},
	}
	got := ResizeGrid(src, 9, 7)
	corners := []struct {
		x, y int
		want float64
	}{
		{0, 0, 0.1}, {8, 0, 0.9}, {0, 6, 0.4}, {8, 6, 0.6},
	}
	for _, c := range corners {
		if math.Abs(got[c.y][c.x]-c.want) > 1e-12 {
			t.Errorf("ResizeGrid corner (%d,%d) = %v, want %v", c.x, c.y, got[c.y][c.x], c.want)
		}
	}
}

func TestResizeGridConstant(t *testing.T) {
	src := [][]float64{
		{0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5},
	}
	for _, row := range ResizeGrid(src, 11, 11) {
		for _, v := range row {
			if math.Abs(v-0.5) > 1e-12 {
				t.Fatalf("constant grid resampled to %v, want 0.5", v)
			}
		}
	}
}

func TestResizeGridDegenerate(t *testing.T) {
	if got := ResizeGrid([][]float64{{1}}, 0, 4); len(got) != 0 {
		t.Errorf("zero width: got %d rows, want 0", len(got))
	}
	got := ResizeGrid(nil, 3, 2)
	if len(got) != 2 || len(got[0]) != 3 {
		t.Errorf("empty source: got %dx%d, want 3x2", len(got[0]), len(got))
	}
}

func TestCubicWeight(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 1},
		{1, 0},
		{2, 0},
		{-1, 0},
		{3, 0},
		{0.5, 0.5625},
	}
	for _, tt := range tests {
		if got := cubicWeight(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("cubicWeight(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
