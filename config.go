package main

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// Display backends
const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
	DisplaySPI      = "spi"
)

type Config struct {
	Speed      time.Duration
	Display    string
	SPIDevice  string
	Seed       uint64
	Brightness uint
	Sound      bool
	Debug      bool
}

// parseFlags reads the command line into a Config.
func parseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	speed := fs.Int("speed", 400, "Tick period in milliseconds")
	display := fs.String("display", DisplayWindow, "Display: window, terminal, spi")
	spiDevice := fs.String("spi-device", "/dev/spidev0.0", "SPI device for the MAX7219 display")
	seed := fs.Uint64("seed", 0, "Noise seed (0 = time based)")
	brightness := fs.Uint("brightness", 2, "MAX7219 brightness 0-15")
	sound := fs.Bool("sound", false, "Enable buzzer sounds")
	debug := fs.Bool("debug", false, "Write a debug log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Speed:      time.Duration(*speed) * time.Millisecond,
		Display:    *display,
		SPIDevice:  *spiDevice,
		Seed:       *seed,
		Brightness: *brightness,
		Sound:      *sound,
		Debug:      *debug,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Speed <= 0 {
		return errors.New("speed must be positive")
	}
	switch c.Display {
	case DisplayWindow, DisplayTerminal:
	case DisplaySPI:
		if c.SPIDevice == "" {
			return errors.New("spi display needs -spi-device")
		}
	default:
		return fmt.Errorf("unknown display %q", c.Display)
	}
	if c.Brightness > 15 {
		return fmt.Errorf("brightness %d out of range 0-15", c.Brightness)
	}
	return nil
}
