package main

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"snake-matrix/board"
)

// The MAX7219 shifts DIN in on the rising clock edge and is rated to 10MHz.
const (
	spiClock = 10 * physic.MegaHertz
	spiMode  = spi.Mode0
	spiBits  = 8
)

// openSPIPort loads the host drivers and opens a port by name or alias,
// e.g. "/dev/spidev0.0" or "SPI0.0".
var openSPIPort = func(name string) (spi.PortCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host drivers: %w", err)
	}
	return spireg.Open(name)
}

// spiMatrix is a MAX7219 on an SPI port; it only draws, so input still
// comes from the terminal.
type spiMatrix struct {
	*board.MAX7219
	port spi.PortCloser
}

func openSPIMatrix(name string, brightness uint8) (*spiMatrix, error) {
	port, err := openSPIPort(name)
	if err != nil {
		return nil, fmt.Errorf("open spi port %s: %w", name, err)
	}
	c, err := port.Connect(spiClock, spiMode, spiBits)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("connect spi port %s: %w", name, err)
	}
	m := board.NewMAX7219(c, brightness)
	if err := m.Init(); err != nil {
		port.Close()
		return nil, err
	}
	log.Printf("MAX7219 on %s, %s mode 0", c, spiClock)
	return &spiMatrix{MAX7219: m, port: port}, nil
}

// Close blanks the matrix and releases the port.
func (s *spiMatrix) Close() {
	if err := s.Power(false); err != nil {
		log.Printf("MAX7219 power off: %v", err)
	}
	if err := s.port.Close(); err != nil {
		log.Printf("close spi port: %v", err)
	}
}
