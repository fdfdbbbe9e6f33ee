package board

import (
	"snake-matrix/game/types"
)

// Joystick active range, in ADC counts. Anything between the limits is
// treated as centred.
const (
	StickUpperLimit uint16 = 1000
	StickLowerLimit uint16 = 100
	StickCentre     uint16 = ADCMax / 2
)

// Stick is the state of an analog joystick with a push button.
type Stick struct {
	X, Y   uint16
	Button bool
}

func NewStick() *Stick {
	return &Stick{X: StickCentre, Y: StickCentre}
}

// Direction maps the axis readings to a heading. The X axis wins when
// both are deflected.
func (s *Stick) Direction() types.Direction {
	switch {
	case s.X > StickUpperLimit:
		return types.Right
	case s.X < StickLowerLimit:
		return types.Left
	case s.Y > StickUpperLimit:
		return types.Down
	case s.Y < StickLowerLimit:
		return types.Up
	}
	return types.None
}

// Deflect pushes the stick fully towards d. None recentres it.
func (s *Stick) Deflect(d types.Direction) {
	s.X, s.Y = StickCentre, StickCentre
	switch d {
	case types.Right:
		s.X = ADCMax
	case types.Left:
		s.X = 0
	case types.Down:
		s.Y = ADCMax
	case types.Up:
		s.Y = 0
	}
}

// Release recentres the stick and lets go of the button.
func (s *Stick) Release() {
	s.X, s.Y = StickCentre, StickCentre
	s.Button = false
}

// Input samples the stick as one tick's input.
func (s *Stick) Input() types.Input {
	return types.Input{
		Direction: s.Direction(),
		Activate:  s.Button,
	}
}
