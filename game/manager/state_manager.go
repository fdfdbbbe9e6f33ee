package manager

import (
	"log"

	"snake-matrix/game/types"
)

// StateManager owns the round lifecycle: Start -> Running -> Dead -> Running.
type StateManager struct {
	state         types.GameState
	lastCollision CollisionType
}

func NewStateManager() *StateManager {
	return &StateManager{state: types.Start}
}

func (sm *StateManager) State() types.GameState {
	return sm.state
}

func (sm *StateManager) Running() bool {
	return sm.state == types.Running
}

// Activate handles the button. It reports whether the caller has to reset
// the round before play continues, which is the case only when leaving Dead.
func (sm *StateManager) Activate() (reset bool) {
	switch sm.state {
	case types.Start:
		sm.transition(types.Running)
	case types.Dead:
		sm.lastCollision = NoCollision
		sm.transition(types.Running)
		return true
	}
	return false
}

// Kill ends the round. Only a running round can die.
func (sm *StateManager) Kill(cause CollisionType) {
	if sm.state != types.Running {
		return
	}
	sm.lastCollision = cause
	sm.transition(types.Dead)
}

// LastCollision is the cause of the most recent death, NoCollision otherwise.
func (sm *StateManager) LastCollision() CollisionType {
	return sm.lastCollision
}

func (sm *StateManager) transition(to types.GameState) {
	log.Printf("game state %s -> %s", sm.state, to)
	sm.state = to
}
