package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func defaultGeometry() Geometry {
	return GeometryFromConfig(config.DefaultBreakoutConfig().Bricks)
}

func TestNewGridAllAlive(t *testing.T) {
	g := NewGrid(10, 4)

	if g.Size() != 40 {
		t.Errorf("Size() = %d, expected 40", g.Size())
	}
	if g.AliveCount() != 40 {
		t.Errorf("AliveCount() = %d, expected 40", g.AliveCount())
	}
	if g.AllDestroyed() {
		t.Error("new grid should not be cleared")
	}

	g.Each(func(col, row int, b Brick) {
		if !b.Alive() {
			t.Errorf("brick (%d,%d) should start alive", col, row)
		}
	})
}

func TestGridLayout(t *testing.T) {
	g := NewGrid(10, 4)
	g.Layout(defaultGeometry())

	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 0, 5, 120},
		{2, 1, 289, 177},
		{9, 3, 1283, 291},
	}

	for _, tc := range tests {
		b := g.Cell(tc.col, tc.row)
		if b.X != tc.x || b.Y != tc.y {
			t.Errorf("brick (%d,%d) at (%v,%v), expected (%v,%v)", tc.col, tc.row, b.X, b.Y, tc.x, tc.y)
		}
	}

	bounds := g.Bounds(9, 3)
	if bounds.Right() != 1418 || bounds.Bottom() != 341 {
		t.Errorf("Bounds(9,3) = %+v", bounds)
	}
}

func TestGridLayoutIdempotent(t *testing.T) {
	g := NewGrid(10, 4)
	g.Layout(defaultGeometry())
	g.Destroy(3, 2)

	var before []Brick
	g.Each(func(_, _ int, b Brick) { before = append(before, b) })

	g.Layout(defaultGeometry())
	g.Layout(defaultGeometry())

	i := 0
	g.Each(func(col, row int, b Brick) {
		if b != before[i] {
			t.Errorf("brick (%d,%d) changed after repeated layout: %+v -> %+v", col, row, before[i], b)
		}
		i++
	})
}

func TestGridDestroy(t *testing.T) {
	g := NewGrid(3, 2)
	g.Layout(defaultGeometry())

	if !g.Destroy(1, 1) {
		t.Fatal("first Destroy should succeed")
	}
	if g.Destroy(1, 1) {
		t.Error("second Destroy of the same brick should report false")
	}
	if g.AliveCount() != 5 {
		t.Errorf("AliveCount() = %d, expected 5", g.AliveCount())
	}
	if g.Cell(1, 1).Alive() {
		t.Error("destroyed brick should stay destroyed")
	}

	// Destroyed bricks keep their coordinates when the geometry changes
	x, y := g.Cell(1, 1).X, g.Cell(1, 1).Y
	moved := defaultGeometry()
	moved.OffsetLeft += 50
	g.Layout(moved)
	if g.Cell(1, 1).X != x || g.Cell(1, 1).Y != y {
		t.Error("layout should not move destroyed bricks")
	}
	if g.Cell(1, 1).Alive() {
		t.Error("layout should not revive destroyed bricks")
	}

	if g.Destroy(-1, 0) || g.Destroy(3, 0) || g.Destroy(0, 2) {
		t.Error("out-of-range Destroy should report false")
	}
}

func TestGridAllDestroyed(t *testing.T) {
	g := NewGrid(2, 2)
	for c := range 2 {
		for r := range 2 {
			g.Destroy(c, r)
		}
	}
	if !g.AllDestroyed() {
		t.Error("grid with every brick destroyed should report AllDestroyed")
	}
}
