package ui

import (
	"snake-matrix/board"
	"snake-matrix/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowSize    = 480
	borderPadding = 10 // Padding around the matrix
)

var (
	ledOn    = rl.Red
	ledOff   = rl.NewColor(60, 10, 10, 255)
	boardPCB = rl.NewColor(20, 40, 20, 255)
)

// Window shows the matrix as a grid of LEDs in a raylib window and reads
// the keyboard as an emulated joystick.
type Window struct {
	stick        *board.Stick
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewWindow(title string) *Window {
	rl.InitWindow(windowSize, windowSize, title)
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetExitKey(0) // Escape is handled in Poll
	rl.SetTargetFPS(60)

	w := &Window{stick: board.NewStick()}
	w.UpdateDimensions()
	return w
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) UpdateDimensions() {
	w.screenWidth = int32(rl.GetScreenWidth())
	w.screenHeight = int32(rl.GetScreenHeight())
	w.cellSize, w.offsetX, w.offsetY = matrixLayout(w.screenWidth, w.screenHeight)
}

// matrixLayout fits a square matrix inside the screen, centred.
func matrixLayout(screenWidth, screenHeight int32) (cellSize, offsetX, offsetY int32) {
	available := min(screenWidth, screenHeight) - borderPadding*2
	cellSize = max(available/types.GridSize, 1)
	total := cellSize * types.GridSize
	offsetX = (screenWidth - total) / 2
	offsetY = (screenHeight - total) / 2
	return cellSize, offsetX, offsetY
}

// Poll drains the keys pressed since the last tick. Key presses are queued
// by raylib while frames are drawn.
func (w *Window) Poll() types.Input {
	w.stick.Release()
	quit := rl.WindowShouldClose()

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		switch key {
		case rl.KeyUp, rl.KeyW:
			w.stick.Deflect(types.Up)
		case rl.KeyDown, rl.KeyS:
			w.stick.Deflect(types.Down)
		case rl.KeyLeft, rl.KeyA:
			w.stick.Deflect(types.Left)
		case rl.KeyRight, rl.KeyD:
			w.stick.Deflect(types.Right)
		case rl.KeySpace, rl.KeyEnter:
			w.stick.Button = true
		case rl.KeyEscape, rl.KeyQ:
			quit = true
		}
	}

	in := w.stick.Input()
	in.Quit = quit
	return in
}

// Draw paints one frame. Column c is drawn left to right, bit r top to bottom.
func (w *Window) Draw(img types.Image) error {
	if rl.IsWindowResized() {
		w.UpdateDimensions()
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	total := w.cellSize * types.GridSize
	rl.DrawRectangle(w.offsetX-borderPadding/2, w.offsetY-borderPadding/2,
		total+borderPadding, total+borderPadding, boardPCB)

	radius := float32(w.cellSize) * 0.4
	for column := 0; column < types.GridSize; column++ {
		for row := 0; row < types.GridSize; row++ {
			color := ledOff
			if img[column]&(1<<uint(row)) != 0 {
				color = ledOn
			}
			cx := w.offsetX + int32(column)*w.cellSize + w.cellSize/2
			cy := w.offsetY + int32(row)*w.cellSize + w.cellSize/2
			rl.DrawCircle(cx, cy, radius, color)
		}
	}

	rl.EndDrawing()
	return nil
}
