package manager

import (
	"testing"

	"snake-matrix/game/types"
)

func TestStateTransitions(t *testing.T) {
	sm := NewStateManager()
	if sm.State() != types.Start {
		t.Fatalf("initial state = %v, want start", sm.State())
	}

	// Dying before the round starts is not possible.
	sm.Kill(WallCollision)
	if sm.State() != types.Start {
		t.Fatalf("Kill from start moved to %v", sm.State())
	}

	if reset := sm.Activate(); reset || sm.State() != types.Running {
		t.Fatalf("Activate from start: reset=%v state=%v", reset, sm.State())
	}
	if reset := sm.Activate(); reset || sm.State() != types.Running {
		t.Fatalf("Activate while running: reset=%v state=%v", reset, sm.State())
	}

	sm.Kill(SelfCollision)
	if sm.State() != types.Dead || sm.LastCollision() != SelfCollision {
		t.Fatalf("after Kill: state=%v cause=%v", sm.State(), sm.LastCollision())
	}
	sm.Kill(WallCollision)
	if sm.LastCollision() != SelfCollision {
		t.Errorf("second Kill overwrote the cause with %v", sm.LastCollision())
	}

	if reset := sm.Activate(); !reset || sm.State() != types.Running {
		t.Fatalf("Activate from dead: reset=%v state=%v", reset, sm.State())
	}
	if sm.LastCollision() != NoCollision {
		t.Errorf("cause not cleared on restart: %v", sm.LastCollision())
	}
}
