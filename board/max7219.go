package board

import (
	"fmt"

	"snake-matrix/game/types"
)

// MAX7219 register addresses
const (
	MAX7219_NOOP         uint8 = 0x00
	MAX7219_DIGIT0       uint8 = 0x01
	MAX7219_DECODE_MODE  uint8 = 0x09
	MAX7219_INTENSITY    uint8 = 0x0A
	MAX7219_SCAN_LIMIT   uint8 = 0x0B
	MAX7219_SHUTDOWN     uint8 = 0x0C
	MAX7219_DISPLAY_TEST uint8 = 0x0F

	MAX7219_MAX_BRIGHTNESS uint8 = 15
)

// Bus is the part of an SPI connection the driver needs. A periph.io
// spi.Conn satisfies it.
type Bus interface {
	Tx(w, r []byte) error
}

// MAX7219 drives a single 8x8 LED matrix. Every register write is one
// 2-byte transfer on the bus: address, then data. The chip latches on the
// rising edge of chip select, so the two bytes must not be split.
type MAX7219 struct {
	bus        Bus
	brightness uint8
}

func NewMAX7219(bus Bus, brightness uint8) *MAX7219 {
	if brightness > MAX7219_MAX_BRIGHTNESS {
		brightness = MAX7219_MAX_BRIGHTNESS
	}
	return &MAX7219{bus: bus, brightness: brightness}
}

// Init wakes the chip, enables all eight digits in raw mode and blanks them.
func (m *MAX7219) Init() error {
	steps := [][2]uint8{
		{MAX7219_DISPLAY_TEST, 0},
		{MAX7219_SCAN_LIMIT, types.GridSize - 1},
		{MAX7219_DECODE_MODE, 0},
		{MAX7219_INTENSITY, m.brightness},
	}
	for _, s := range steps {
		if err := m.writeRegister(s[0], s[1]); err != nil {
			return err
		}
	}
	if err := m.Clear(); err != nil {
		return err
	}
	return m.Power(true)
}

func (m *MAX7219) Power(isOn bool) error {
	var value uint8
	if isOn {
		value = 1
	}
	return m.writeRegister(MAX7219_SHUTDOWN, value)
}

func (m *MAX7219) SetBrightness(brightness uint8) error {
	if brightness > MAX7219_MAX_BRIGHTNESS {
		brightness = MAX7219_MAX_BRIGHTNESS
	}
	m.brightness = brightness
	return m.writeRegister(MAX7219_INTENSITY, brightness)
}

func (m *MAX7219) Clear() error {
	return m.Draw(types.Image{})
}

// Draw writes one digit register per matrix column.
func (m *MAX7219) Draw(img types.Image) error {
	for column, value := range img {
		if err := m.writeRegister(MAX7219_DIGIT0+uint8(column), value); err != nil {
			return err
		}
	}
	return nil
}

func (m *MAX7219) writeRegister(register, value uint8) error {
	data := [2]byte{register, value}
	if err := m.bus.Tx(data[:], nil); err != nil {
		return fmt.Errorf("max7219: write register %#02x: %w", register, err)
	}
	return nil
}
