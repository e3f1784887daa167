// Package breakout implements a single-screen brick breaker: a ball bounces
// around a bounded arena, destroys a grid of bricks and is kept in play by a
// player-controlled paddle.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickStatus is the lifecycle state of a brick.
type BrickStatus uint8

const (
	BrickAlive     BrickStatus = iota // Still in play, collides with the ball
	BrickDestroyed                    // Hit once, never comes back
)

// Brick is a single cell of the grid.
// X and Y are the top-left corner, assigned by Grid.Layout.
type Brick struct {
	X, Y   float64
	Status BrickStatus
}

// Alive reports whether the brick is still in play.
func (b Brick) Alive() bool {
	return b.Status == BrickAlive
}

// Geometry is the placement rule for the grid.
type Geometry struct {
	BrickWidth  float64
	BrickHeight float64
	Padding     float64
	OffsetTop   float64
	OffsetLeft  float64
}

// GeometryFromConfig extracts the grid geometry from the brick configuration.
func GeometryFromConfig(cfg config.BreakoutBricks) Geometry {
	return Geometry{
		BrickWidth:  cfg.Width,
		BrickHeight: cfg.Height,
		Padding:     cfg.Padding,
		OffsetTop:   cfg.OffsetTop,
		OffsetLeft:  cfg.OffsetLeft,
	}
}

// Grid is a fixed columns x rows matrix of bricks, indexed [col][row].
type Grid struct {
	columns int
	rows    int
	cells   [][]Brick
	geom    Geometry
	alive   int
}

// NewGrid creates a grid with every brick alive and no geometry assigned.
func NewGrid(columns, rows int) *Grid {
	g := &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([][]Brick, columns),
		alive:   columns * rows,
	}
	for c := range g.cells {
		g.cells[c] = make([]Brick, rows)
	}
	return g
}

// Columns returns the number of brick columns.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the number of brick rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Size returns the total number of bricks, alive or not.
func (g *Grid) Size() int {
	return g.columns * g.rows
}

// Geometry returns the geometry of the last Layout call.
func (g *Grid) Geometry() Geometry {
	return g.geom
}

// Cell returns the brick at (col, row).
// Out-of-range indices yield a destroyed zero brick.
func (g *Grid) Cell(col, row int) Brick {
	if !g.inRange(col, row) {
		return Brick{Status: BrickDestroyed}
	}
	return g.cells[col][row]
}

// Layout positions every alive brick:
//
//	x = col*(width+padding) + offsetLeft
//	y = row*(height+padding) + offsetTop
//
// Destroyed bricks keep their last coordinates. Calling Layout repeatedly
// with the same geometry is a no-op.
func (g *Grid) Layout(geom Geometry) {
	g.geom = geom
	for c := range g.cells {
		for r := range g.cells[c] {
			b := &g.cells[c][r]
			if !b.Alive() {
				continue
			}
			b.X = float64(c)*(geom.BrickWidth+geom.Padding) + geom.OffsetLeft
			b.Y = float64(r)*(geom.BrickHeight+geom.Padding) + geom.OffsetTop
		}
	}
}

// Destroy marks the brick at (col, row) destroyed.
// Returns false if the brick was already destroyed or out of range.
func (g *Grid) Destroy(col, row int) bool {
	if !g.inRange(col, row) || !g.cells[col][row].Alive() {
		return false
	}
	g.cells[col][row].Status = BrickDestroyed
	g.alive--
	return true
}

// AliveCount returns the number of bricks still in play.
func (g *Grid) AliveCount() int {
	return g.alive
}

// AllDestroyed reports whether no brick is left.
func (g *Grid) AllDestroyed() bool {
	return g.alive == 0
}

// Bounds returns the rectangle of the brick at (col, row) in arena units.
func (g *Grid) Bounds(col, row int) core.Box {
	b := g.Cell(col, row)
	return core.Box{X: b.X, Y: b.Y, W: g.geom.BrickWidth, H: g.geom.BrickHeight}
}

// Each calls fn for every brick in column-major order.
func (g *Grid) Each(fn func(col, row int, b Brick)) {
	for c := range g.cells {
		for r := range g.cells[c] {
			fn(c, r, g.cells[c][r])
		}
	}
}

func (g *Grid) inRange(col, row int) bool {
	return col >= 0 && col < g.columns && row >= 0 && row < g.rows
}
