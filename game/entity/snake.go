package entity

import (
	"snake-matrix/game/types"
)

// Initial pose of every round: head at (5,5) heading right, tail trailing left.
var (
	StartHead      = types.Point{X: 5, Y: 5}
	StartDirection = types.Right
)

const StartLength = 3

// Snake keeps its body in a fixed array; only body[:length] is meaningful
// and body[0] is the head.
type Snake struct {
	body      [types.Capacity]types.Point
	length    int
	direction types.Direction
}

// NewSnake returns a snake in the starting pose.
func NewSnake() *Snake {
	segments := make([]types.Point, StartLength)
	for i := range segments {
		segments[i] = types.Point{X: StartHead.X - i, Y: StartHead.Y}
	}
	return NewSnakeFrom(StartDirection, segments...)
}

// NewSnakeFrom builds a snake from explicit segments, head first.
// Segments beyond capacity are dropped.
func NewSnakeFrom(dir types.Direction, segments ...types.Point) *Snake {
	s := &Snake{direction: dir}
	s.length = copy(s.body[:], segments)
	return s
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

func (s *Snake) Length() int {
	return s.length
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// SetDirection replaces the heading unconditionally; reversal filtering is
// the game manager's job.
func (s *Snake) SetDirection(dir types.Direction) {
	s.direction = dir
}

// Segment returns the i-th occupied cell, head first. i must be below Length.
func (s *Snake) Segment(i int) types.Point {
	return s.body[i]
}

// Segments returns a copy of the occupied cells, head first.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, s.length)
	copy(out, s.body[:s.length])
	return out
}

// NextHead is where the head would go on the next move.
func (s *Snake) NextHead() types.Point {
	return s.body[0].Step(s.direction)
}

// Advance moves every segment into the cell of its predecessor and the head
// into NextHead. It returns the cell vacated by the last segment.
func (s *Snake) Advance() types.Point {
	if s.length == 0 {
		return types.Point{}
	}
	freed := s.body[s.length-1]
	copy(s.body[1:s.length], s.body[:s.length-1])
	s.body[0] = s.body[0].Step(s.direction)
	return freed
}

// Grow appends freed as the new last segment. It must be given the value
// returned by the Advance of the same tick.
func (s *Snake) Grow(freed types.Point) bool {
	if s.length >= types.Capacity {
		return false
	}
	s.body[s.length] = freed
	s.length++
	return true
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for i := 0; i < s.length; i++ {
		if s.body[i] == p {
			return true
		}
	}
	return false
}

// Full reports whether the snake covers the whole grid.
func (s *Snake) Full() bool {
	return s.length >= types.Capacity
}
