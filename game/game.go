package game

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"snake-matrix/game/manager"
	"snake-matrix/game/types"
)

// InputSource reports the player's input once per tick.
type InputSource interface {
	Poll() types.Input
}

// DisplayDriver shows a finished frame on the device.
type DisplayDriver interface {
	Draw(img types.Image) error
}

// SoundSink reacts to tick outcomes. Optional.
type SoundSink interface {
	Play(ev manager.Event)
}

// GameStats is logged as JSON when a session ends.
type GameStats struct {
	UUID      string    `json:"uuid"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Ticks     int       `json:"ticks"`
	Rounds    int       `json:"rounds"`
	FoodEaten int       `json:"food_eaten"`
	BestScore int       `json:"best_score"`
}

// Session drives one GameManager from an input device to a display at a
// fixed tick period.
type Session struct {
	UUID     string
	Manager  *manager.GameManager
	Interval time.Duration
	Stats    GameStats

	input   InputSource
	display DisplayDriver
	sound   SoundSink
}

func NewSession(gm *manager.GameManager, input InputSource, display DisplayDriver, interval time.Duration) *Session {
	id := uuid.New().String()
	return &Session{
		UUID:     id,
		Manager:  gm,
		Interval: interval,
		Stats: GameStats{
			UUID:      id,
			StartTime: time.Now(),
		},
		input:   input,
		display: display,
	}
}

// SetSound attaches a sound sink; nil disables sound.
func (s *Session) SetSound(sound SoundSink) {
	s.sound = sound
}

// Step runs one tick. It returns false when the player asked to quit.
func (s *Session) Step() (bool, error) {
	in := s.input.Poll()
	if in.Quit {
		return false, nil
	}

	gm := s.Manager
	if in.Activate {
		wasRunning := gm.State() == types.Running
		gm.Activate()
		if !wasRunning && gm.State() == types.Running {
			s.Stats.Rounds++
			log.Printf("[%s] round %d started", s.UUID, s.Stats.Rounds)
		}
	}
	gm.ProcessMovement(in.Direction)

	ev := gm.Tick()
	s.Stats.Ticks++
	if ev == manager.EventAte {
		s.Stats.FoodEaten++
		if score := gm.Score(); score > s.Stats.BestScore {
			s.Stats.BestScore = score
		}
	}
	if gm.State() == types.Dead && (ev == manager.EventDied || ev == manager.EventAte) {
		log.Printf("[%s] round %d over: %s collision, score %d", s.UUID, s.Stats.Rounds, gm.LastCollision(), gm.Score())
	}
	if s.sound != nil && ev != manager.EventIdle {
		s.sound.Play(ev)
	}

	if err := s.display.Draw(gm.ToImage()); err != nil {
		return false, fmt.Errorf("draw frame: %w", err)
	}
	return true, nil
}

// Run steps the game every Interval until the player quits, the context is
// cancelled or the display fails.
func (s *Session) Run(ctx context.Context) error {
	defer func() {
		s.Stats.EndTime = time.Now()
		summary, err := json.Marshal(s.Stats)
		if err != nil {
			log.Printf("[%s] session over, stats not encoded: %v", s.UUID, err)
			return
		}
		log.Printf("[%s] session over: %s", s.UUID, summary)
	}()

	// Show the start pose before the first tick.
	if err := s.display.Draw(s.Manager.ToImage()); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			more, err := s.Step()
			if err != nil {
				log.Printf("[%s] %v", s.UUID, err)
				return err
			}
			if !more {
				return nil
			}
		}
	}
}
