package manager

import (
	"snake-matrix/game/entity"
	"snake-matrix/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	GridFull
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case GridFull:
		return "grid full"
	default:
		return "none"
	}
}

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// CheckCollision checks whether the snake may move its head to pos
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	// The whole body counts, tail included: it has not moved out of the way yet.
	if snake.Occupies(pos) {
		return SelfCollision
	}
	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return pos.OutOfBounds()
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return !cm.isWallCollision(pos) && !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
