// Package board emulates the devices wired to the microcontroller: the
// floating analog pin used for noise, the joystick and the MAX7219 matrix.
package board

import (
	"golang.org/x/exp/rand"
)

// ADCMax is the largest reading of the 10-bit converter.
const ADCMax = 1023

// FloatingADC behaves like an unconnected analog input: a reading that
// wanders slowly with some jitter on the low bits.
type FloatingADC struct {
	rng   *rand.Rand
	level int
}

func NewFloatingADC(seed uint64) *FloatingADC {
	rng := rand.New(rand.NewSource(seed))
	return &FloatingADC{
		rng:   rng,
		level: rng.Intn(ADCMax + 1),
	}
}

// Read returns a value in [0, ADCMax].
func (a *FloatingADC) Read() uint16 {
	a.level += a.rng.Intn(65) - 32
	if a.level < 0 {
		a.level = -a.level
	}
	if a.level > ADCMax {
		a.level = 2*ADCMax - a.level
	}
	jitter := a.rng.Intn(16)
	return uint16((a.level + jitter) & ADCMax)
}
