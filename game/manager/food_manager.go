package manager

import (
	"errors"

	"snake-matrix/game/entity"
	"snake-matrix/game/types"
)

// MaxFoodAttempts bounds the rejection sampling loop. With at least one free
// cell and a working noise source it is never reached.
const MaxFoodAttempts = 4096

var ErrFoodExhausted = errors.New("no free cell found for food")

// NoiseSource is an analog reading used as a cheap random source.
type NoiseSource interface {
	Read() uint16
}

type FoodManager struct {
	noise        NoiseSource
	collisionMgr *CollisionManager
	attempts     int // Candidates drawn by the last GenerateFood
}

func NewFoodManager(noise NoiseSource, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		noise:        noise,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood draws candidates until one is off the snake. Column and row
// come from two sequential reads of the same source.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	fm.attempts = 0
	for fm.attempts < MaxFoodAttempts {
		fm.attempts++
		food := types.Point{
			X: int(fm.noise.Read()%types.GridSize) + 1,
			Y: int(fm.noise.Read()%types.GridSize) + 1,
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, nil
		}
	}
	return types.Point{}, ErrFoodExhausted
}

// Attempts returns how many candidates the last GenerateFood drew.
func (fm *FoodManager) Attempts() int {
	return fm.attempts
}
