package types

import "testing"

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{1, 1}, false},
		{Point{8, 8}, false},
		{Point{5, 3}, false},
		{Point{0, 4}, true},
		{Point{4, 0}, true},
		{Point{9, 1}, true},
		{Point{1, 9}, true},
		{Point{-1, 5}, true},
		{Point{}, true},
	}
	for _, tt := range tests {
		if got := tt.p.OutOfBounds(); got != tt.want {
			t.Errorf("%v.OutOfBounds() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestStepLeavesGridAtEdges(t *testing.T) {
	if p := (Point{1, 5}).Step(Left); !p.OutOfBounds() {
		t.Errorf("step left from column 1 gave %v, expected out of bounds", p)
	}
	if p := (Point{5, 1}).Step(Up); !p.OutOfBounds() {
		t.Errorf("step up from row 1 gave %v, expected out of bounds", p)
	}
	if p := (Point{8, 5}).Step(Right); !p.OutOfBounds() {
		t.Errorf("step right from column 8 gave %v, expected out of bounds", p)
	}
	if p := (Point{5, 8}).Step(Down); !p.OutOfBounds() {
		t.Errorf("step down from row 8 gave %v, expected out of bounds", p)
	}
	if p := (Point{5, 5}).Step(None); p != (Point{5, 5}) {
		t.Errorf("step with no direction moved to %v", p)
	}
}

func TestDirectionVectors(t *testing.T) {
	want := map[Direction]Point{
		Up:    {0, -1},
		Down:  {0, 1},
		Left:  {-1, 0},
		Right: {1, 0},
	}
	for d, v := range want {
		if got := d.ToPoint(); got != v {
			t.Errorf("%v.ToPoint() = %v, want %v", d, got, v)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite of opposite is %v", d, d.Opposite().Opposite())
		}
		back := d.Opposite().ToPoint()
		if back.X != -v.X || back.Y != -v.Y {
			t.Errorf("%v.Opposite() vector %v is not the reverse of %v", d, back, v)
		}
	}
	if None.Opposite() != None {
		t.Errorf("None.Opposite() = %v", None.Opposite())
	}
}

func TestImageSet(t *testing.T) {
	var img Image
	img.Set(Point{1, 1})
	img.Set(Point{1, 2})
	img.Set(Point{8, 8})
	img.Set(Point{8, 8})
	img.Set(Point{})

	want := Image{0b11, 0, 0, 0, 0, 0, 0, 0b10000000}
	if img != want {
		t.Fatalf("image = %08b, want %08b", img, want)
	}
	if !img.IsSet(Point{1, 2}) || img.IsSet(Point{2, 1}) {
		t.Error("IsSet disagrees with Set")
	}
}
