package entity

import (
	"reflect"
	"testing"

	"snake-matrix/game/types"
)

func pts(coords ...int) []types.Point {
	out := make([]types.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, types.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func TestNewSnakeStartPose(t *testing.T) {
	s := NewSnake()
	if s.Length() != StartLength {
		t.Fatalf("length = %d, want %d", s.Length(), StartLength)
	}
	if s.GetHead() != StartHead {
		t.Errorf("head = %v, want %v", s.GetHead(), StartHead)
	}
	if s.Direction() != types.Right {
		t.Errorf("direction = %v, want right", s.Direction())
	}
	want := pts(5, 5, 4, 5, 3, 5)
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("segments = %v, want %v", got, want)
	}
}

func TestNextHeadDoesNotMutate(t *testing.T) {
	s := NewSnakeFrom(types.Down, pts(3, 3, 3, 2)...)
	if got := s.NextHead(); got != (types.Point{X: 3, Y: 4}) {
		t.Errorf("NextHead() = %v, want (3,4)", got)
	}
	if s.GetHead() != (types.Point{X: 3, Y: 3}) {
		t.Errorf("NextHead moved the head to %v", s.GetHead())
	}
}

func TestAdvanceShiftsSegments(t *testing.T) {
	s := NewSnakeFrom(types.Right, pts(5, 5, 4, 5, 4, 4)...)
	freed := s.Advance()

	if freed != (types.Point{X: 4, Y: 4}) {
		t.Errorf("freed tail = %v, want (4,4)", freed)
	}
	want := pts(6, 5, 5, 5, 4, 5)
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("segments = %v, want %v", got, want)
	}
}

func TestAdvanceSingleSegment(t *testing.T) {
	s := NewSnakeFrom(types.Up, pts(2, 2)...)
	freed := s.Advance()
	if freed != (types.Point{X: 2, Y: 2}) {
		t.Errorf("freed = %v, want (2,2)", freed)
	}
	if s.GetHead() != (types.Point{X: 2, Y: 1}) {
		t.Errorf("head = %v, want (2,1)", s.GetHead())
	}
}

func TestGrowReusesFreedTail(t *testing.T) {
	s := NewSnakeFrom(types.Right, pts(5, 5, 4, 5, 3, 5)...)
	freed := s.Advance()
	if !s.Grow(freed) {
		t.Fatal("Grow refused below capacity")
	}
	want := pts(6, 5, 5, 5, 4, 5, 3, 5)
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("segments = %v, want %v", got, want)
	}
}

func TestGrowStopsAtCapacity(t *testing.T) {
	cells := make([]types.Point, 0, types.Capacity)
	for y := 1; y <= types.GridSize; y++ {
		for x := 1; x <= types.GridSize; x++ {
			cells = append(cells, types.Point{X: x, Y: y})
		}
	}
	s := NewSnakeFrom(types.Right, cells...)
	if !s.Full() {
		t.Fatal("snake covering the grid is not Full")
	}
	if s.Grow(types.Point{X: 1, Y: 1}) {
		t.Error("Grow accepted a segment past capacity")
	}
	if s.Length() != types.Capacity {
		t.Errorf("length = %d, want %d", s.Length(), types.Capacity)
	}
}

func TestOccupiesIgnoresStaleEntries(t *testing.T) {
	s := NewSnakeFrom(types.Right, pts(2, 1, 1, 1)...)
	freed := s.Advance() // (1,1) is now past length

	if s.Occupies(freed) {
		t.Errorf("Occupies(%v) true for a vacated cell", freed)
	}
	if !s.Occupies(types.Point{X: 3, Y: 1}) || !s.Occupies(types.Point{X: 2, Y: 1}) {
		t.Error("Occupies false for an occupied cell")
	}
	if s.Occupies(types.Point{}) {
		t.Error("Occupies true for the zero point")
	}
}

func TestSegmentMatchesSegments(t *testing.T) {
	s := NewSnakeFrom(types.Up, pts(4, 4, 4, 5, 5, 5)...)
	s.Advance()

	want := s.Segments()
	for i := 0; i < s.Length(); i++ {
		if got := s.Segment(i); got != want[i] {
			t.Errorf("Segment(%d) = %v, want %v", i, got, want[i])
		}
	}
}
