package manager

import (
	"fmt"
	"log"

	"snake-matrix/game/entity"
	"snake-matrix/game/render"
	"snake-matrix/game/types"
)

// Event is the outcome of a single Tick.
type Event int

const (
	EventIdle  Event = iota // Not running, nothing happened
	EventMoved              // Normal step
	EventAte                // Step onto the food, snake grew
	EventDied               // Round ended, nothing moved
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	default:
		return "idle"
	}
}

// GameManager owns the snake, the food and the lifecycle of a round.
// It is not safe for concurrent use; one loop drives it.
type GameManager struct {
	snake        *entity.Snake
	food         types.Point
	stateMgr     *StateManager
	collisionMgr *CollisionManager
	foodMgr      *FoodManager
}

// NewGameManager starts in the Start state with the initial pose and a food
// already placed.
func NewGameManager(noise NoiseSource) *GameManager {
	collisionMgr := NewCollisionManager()
	gm := &GameManager{
		stateMgr:     NewStateManager(),
		collisionMgr: collisionMgr,
		foodMgr:      NewFoodManager(noise, collisionMgr),
	}
	gm.reset()
	return gm
}

func (gm *GameManager) reset() {
	gm.snake = entity.NewSnake()
	gm.food = gm.placeFood()
}

func (gm *GameManager) placeFood() types.Point {
	food, err := gm.foodMgr.GenerateFood(gm.snake)
	if err != nil {
		panic(fmt.Errorf("placing food after %d attempts: %w", gm.foodMgr.Attempts(), err))
	}
	return food
}

// Activate handles the button: Start begins play, Dead restarts a fresh round.
func (gm *GameManager) Activate() {
	if gm.stateMgr.Activate() {
		gm.reset()
		log.Printf("round restarted, food at %v", gm.food)
	}
}

// ProcessMovement applies a requested heading. None and direct reversals
// are ignored, and a dead snake stays as it died.
func (gm *GameManager) ProcessMovement(dir types.Direction) {
	if dir == types.None || gm.stateMgr.State() == types.Dead {
		return
	}
	if dir == gm.snake.Direction().Opposite() {
		return
	}
	gm.snake.SetDirection(dir)
}

// Tick advances the simulation by one step while running.
func (gm *GameManager) Tick() Event {
	if !gm.stateMgr.Running() {
		return EventIdle
	}

	newHead := gm.snake.NextHead()
	if collision := gm.collisionMgr.CheckCollision(newHead, gm.snake); collision != NoCollision {
		gm.stateMgr.Kill(collision)
		return EventDied
	}

	freed := gm.snake.Advance()
	if !gm.collisionMgr.IsFoodCollision(newHead, gm.food) {
		return EventMoved
	}

	// newHead was free before the move, so the body had room for one more.
	if !gm.snake.Grow(freed) {
		panic(fmt.Sprintf("snake of length %d could not grow onto %v", gm.snake.Length(), freed))
	}
	if gm.snake.Full() {
		// Nowhere left to put food.
		gm.food = types.Point{}
		gm.stateMgr.Kill(GridFull)
		return EventAte
	}
	gm.food = gm.placeFood()
	return EventAte
}

// ToImage renders the current state. Safe in any state.
func (gm *GameManager) ToImage() types.Image {
	return render.ToImage(gm.snake, gm.food)
}

func (gm *GameManager) State() types.GameState {
	return gm.stateMgr.State()
}

func (gm *GameManager) LastCollision() CollisionType {
	return gm.stateMgr.LastCollision()
}

func (gm *GameManager) GetSnake() *entity.Snake {
	return gm.snake
}

func (gm *GameManager) GetFood() types.Point {
	return gm.food
}

// Score is the number of segments gained in the current round.
func (gm *GameManager) Score() int {
	return gm.snake.Length() - entity.StartLength
}
