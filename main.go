package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"snake-matrix/audio"
	"snake-matrix/board"
	"snake-matrix/game"
	"snake-matrix/game/manager"
	"snake-matrix/ui"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake-matrix: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var (
		input   game.InputSource
		display game.DisplayDriver
		cleanup []func()
	)
	restore := func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
		cleanup = nil
	}
	defer restore()

	// Panic recovery: put the terminal back before printing the crash.
	defer func() {
		if r := recover(); r != nil {
			restore()
			fmt.Fprintf(os.Stderr, "\nSNAKE-MATRIX CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	switch cfg.Display {
	case DisplayWindow:
		w := ui.NewWindow("Snake Matrix")
		cleanup = append(cleanup, w.Close)
		input, display = w, w
	case DisplayTerminal, DisplaySPI:
		term, err := ui.NewTerminal()
		if err != nil {
			return err
		}
		cleanup = append(cleanup, term.Close)
		input, display = term, term
		if cfg.Display == DisplaySPI {
			m, err := openSPIMatrix(cfg.SPIDevice, uint8(cfg.Brightness))
			if err != nil {
				return err
			}
			cleanup = append(cleanup, m.Close)
			display = m
		}
	}

	gm := manager.NewGameManager(board.NewFloatingADC(seed))
	session := game.NewSession(gm, input, display, cfg.Speed)
	log.Printf("[%s] started: display=%s speed=%s seed=%d", session.UUID, cfg.Display, cfg.Speed, seed)

	if cfg.Sound {
		buzzer := audio.NewBuzzer()
		if err := buzzer.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			cleanup = append(cleanup, buzzer.Cleanup)
			session.SetSound(buzzer)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return session.Run(ctx)
}
