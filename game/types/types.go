package types

import "fmt"

// Grid dimensions. The matrix is square and addressed 1..GridSize on both axes.
const (
	GridSize = 8
	Capacity = GridSize * GridSize // Most segments a snake can ever hold
)

// Point is a 1-based grid cell: X is the column, Y the row.
// The zero Point is the "unset" marker and never an occupied cell.
type Point struct {
	X, Y int
}

// OutOfBounds reports whether p lies outside the 1..GridSize grid.
func (p Point) OutOfBounds() bool {
	return p.X < 1 || p.X > GridSize || p.Y < 1 || p.Y > GridSize
}

// Step returns the neighbouring cell in direction d.
func (p Point) Step(d Direction) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Image is one byte per column; bit r of column c is cell (c+1, r+1).
type Image [GridSize]uint8

// Set lights the cell at p. Out-of-bounds points are ignored.
func (img *Image) Set(p Point) {
	if p.OutOfBounds() {
		return
	}
	img[p.X-1] |= 1 << uint(p.Y-1)
}

// IsSet reports whether the cell at p is lit.
func (img Image) IsSet(p Point) bool {
	if p.OutOfBounds() {
		return false
	}
	return img[p.X-1]&(1<<uint(p.Y-1)) != 0
}

// GameState is the lifecycle of a round.
type GameState int

const (
	Start GameState = iota
	Running
	Dead
)

func (s GameState) String() string {
	switch s {
	case Start:
		return "start"
	case Running:
		return "running"
	case Dead:
		return "dead"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// Input is what an input device reports for one tick.
type Input struct {
	Direction Direction // None when no heading change is requested
	Activate  bool      // Button pressed: start or restart
	Quit      bool
}
