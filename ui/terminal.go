package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"snake-matrix/board"
	"snake-matrix/game/types"
)

const (
	ledRuneOn  = '●'
	ledRuneOff = '·'
)

// Terminal shows the matrix in a tcell screen and reads the keyboard as an
// emulated joystick.
type Terminal struct {
	screen tcell.Screen
	stick  *board.Stick
	events chan tcell.Event
	quit   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewTerminal takes over the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	return NewTerminalOn(screen), nil
}

// NewTerminalOn uses an already initialised screen.
func NewTerminalOn(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	t := &Terminal{
		screen: screen,
		stick:  board.NewStick(),
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t
}

// pump forwards screen events until the terminal is closed. Nobody polls
// after the session ends, so a full buffer must not keep it from exiting.
func (t *Terminal) pump() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Close restores the terminal. Safe to call twice and from a panic handler.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.quit)
		t.screen.Fini()
		<-t.done
	})
}

// Poll drains the events received since the last tick.
func (t *Terminal) Poll() types.Input {
	t.stick.Release()
	quit := false

	for {
		select {
		case ev := <-t.events:
			if t.handleEvent(ev) {
				quit = true
			}
		default:
			in := t.stick.Input()
			in.Quit = quit
			return in
		}
	}
}

// handleEvent updates the stick and reports whether the player quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			t.stick.Deflect(types.Up)
		case tcell.KeyDown:
			t.stick.Deflect(types.Down)
		case tcell.KeyLeft:
			t.stick.Deflect(types.Left)
		case tcell.KeyRight:
			t.stick.Deflect(types.Right)
		case tcell.KeyEnter:
			t.stick.Button = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w':
				t.stick.Deflect(types.Up)
			case 's':
				t.stick.Deflect(types.Down)
			case 'a':
				t.stick.Deflect(types.Left)
			case 'd':
				t.stick.Deflect(types.Right)
			case ' ':
				t.stick.Button = true
			case 'q':
				return true
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

// Draw renders each LED as two cells wide so the matrix looks square.
func (t *Terminal) Draw(img types.Image) error {
	on := tcell.StyleDefault.Foreground(tcell.ColorRed)
	off := tcell.StyleDefault.Foreground(tcell.ColorGray)

	t.screen.Clear()
	for column := 0; column < types.GridSize; column++ {
		for row := 0; row < types.GridSize; row++ {
			r, style := ledRuneOff, off
			if img[column]&(1<<uint(row)) != 0 {
				r, style = ledRuneOn, on
			}
			t.screen.SetContent(column*2, row, r, nil, style)
		}
	}
	t.screen.Show()
	return nil
}
