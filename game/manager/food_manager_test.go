package manager

import (
	"errors"
	"testing"

	"snake-matrix/game/entity"
	"snake-matrix/game/types"
)

func TestGenerateFoodReducesReadings(t *testing.T) {
	tests := []struct {
		readings []uint16
		want     types.Point
	}{
		{[]uint16{0, 0}, pt(1, 1)},
		{[]uint16{7, 7}, pt(8, 8)},
		{[]uint16{8, 15}, pt(1, 8)},
		{[]uint16{1023, 514}, pt(8, 3)},
	}
	snake := entity.NewSnakeFrom(types.Right, pt(5, 5))
	for _, tt := range tests {
		fm := NewFoodManager(&scriptedNoise{values: tt.readings}, NewCollisionManager())
		got, err := fm.GenerateFood(snake)
		if err != nil {
			t.Fatalf("readings %v: %v", tt.readings, err)
		}
		if got != tt.want {
			t.Errorf("readings %v: food = %v, want %v", tt.readings, got, tt.want)
		}
		if fm.Attempts() != 1 {
			t.Errorf("readings %v: attempts = %d, want 1", tt.readings, fm.Attempts())
		}
	}
}

func TestGenerateFoodRejectsSnakeCells(t *testing.T) {
	snake := entity.NewSnakeFrom(types.Right, pt(1, 1), pt(2, 1), pt(3, 1))
	// (1,1), (2,1), (3,1) are all taken; (4,1) is free.
	noise := &scriptedNoise{values: []uint16{0, 0, 1, 0, 2, 0, 3, 0}}
	fm := NewFoodManager(noise, NewCollisionManager())

	got, err := fm.GenerateFood(snake)
	if err != nil {
		t.Fatal(err)
	}
	if got != pt(4, 1) {
		t.Errorf("food = %v, want (4,1)", got)
	}
	if fm.Attempts() != 4 {
		t.Errorf("attempts = %d, want 4", fm.Attempts())
	}
}

func TestGenerateFoodGivesUp(t *testing.T) {
	snake := entity.NewSnakeFrom(types.Right, pt(1, 1))
	fm := NewFoodManager(&scriptedNoise{values: []uint16{8}}, NewCollisionManager())

	_, err := fm.GenerateFood(snake)
	if !errors.Is(err, ErrFoodExhausted) {
		t.Fatalf("err = %v, want ErrFoodExhausted", err)
	}
	if fm.Attempts() != MaxFoodAttempts {
		t.Errorf("attempts = %d, want %d", fm.Attempts(), MaxFoodAttempts)
	}
}

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager()
	snake := entity.NewSnakeFrom(types.Right, pt(3, 3), pt(2, 3), pt(1, 3))

	tests := []struct {
		pos  types.Point
		want CollisionType
	}{
		{pt(4, 3), NoCollision},
		{pt(0, 3), WallCollision},
		{pt(3, 9), WallCollision},
		{pt(2, 3), SelfCollision},
		{pt(1, 3), SelfCollision}, // tail still counts
	}
	for _, tt := range tests {
		if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
			t.Errorf("CheckCollision(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
