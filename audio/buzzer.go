package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"snake-matrix/game/manager"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.15
)

// tone describes a single beep of the piezo buzzer.
type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[manager.Event]tone{
	manager.EventAte:  {freq: 880, duration: 60 * time.Millisecond},
	manager.EventDied: {freq: 110, duration: 400 * time.Millisecond},
}

// Buzzer plays short square-wave tones for game events.
type Buzzer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewBuzzer() *Buzzer {
	return &Buzzer{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker.
func (b *Buzzer) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Play queues the tone for ev. Events without a tone are ignored.
func (b *Buzzer) Play(ev manager.Event) {
	t, ok := tones[ev]
	if !ok {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}

	speaker.Lock()
	b.mixer.Add(NewSquareTone(sampleRate, t.freq, t.duration))
	speaker.Unlock()
}

// Cleanup silences and closes the speaker.
func (b *Buzzer) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.initialized = false
}

// SquareTone is a fixed-length square wave.
type SquareTone struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

func NewSquareTone(sr beep.SampleRate, freq float64, duration time.Duration) *SquareTone {
	return &SquareTone{
		sr:     sr,
		freq:   freq,
		length: sr.N(duration),
	}
}

func (s *SquareTone) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.length {
		return 0, false
	}
	period := float64(s.sr) / s.freq
	for i := range samples {
		if s.pos >= s.length {
			return i, true
		}
		phase := float64(s.pos) / period
		val := volume
		if phase-float64(int(phase)) >= 0.5 {
			val = -volume
		}
		samples[i][0] = val
		samples[i][1] = val
		s.pos++
	}
	return len(samples), true
}

func (s *SquareTone) Err() error {
	return nil
}
