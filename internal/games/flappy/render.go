package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
)

// Game over overlay text
const (
	gameOverTitle = "GAME OVER"
	restartPrompt = "[ Tap to Restart ]"
)

// BirdShape maps the bird body to the cells covered by its circle.
func BirdShape(pos physics.Vec, radius float64) core.Rect {
	return core.RectAround(pos.X, pos.Y, 2*radius, 2*radius)
}

// PipeShape maps a pipe body to the cells covered by its box.
func PipeShape(pos physics.Vec, width, height float64) core.Rect {
	return core.RectAround(pos.X, pos.Y, width, height)
}

// drawWorld renders the bird and the pipe pair.
func drawWorld(dst *core.Screen, w *World) {
	top, bottom := w.PipePositions()
	topRect := PipeShape(top, w.cfg.Pipes.Width, w.view.H)
	bottomRect := PipeShape(bottom, w.cfg.Pipes.Width, w.view.H)

	dst.DrawRect(topRect, PipeChar, core.ColorGreen)
	dst.DrawRect(bottomRect, PipeChar, core.ColorGreen)
	// Caps face the gap
	dst.DrawHLine(topRect.X, topRect.Bottom()-1, topRect.W, PipeCapTop, core.ColorBrightGreen)
	dst.DrawHLine(bottomRect.X, bottomRect.Y, bottomRect.W, PipeCapBottom, core.ColorBrightGreen)

	dst.DrawRect(BirdShape(w.BirdPosition(), w.cfg.Bird.Radius), BirdChar, core.ColorYellow)
}

// drawScore renders the displayed score centered on the top row.
func drawScore(dst *core.Screen, score int) {
	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", score), core.ColorBrightWhite)
}

// gameOverBox returns the overlay box and the restart prompt inside it.
func gameOverBox(screenW, screenH int) (box, prompt core.Rect) {
	boxW := len(restartPrompt) + 6
	boxH := 7
	box = core.NewRect((screenW-boxW)/2, (screenH-boxH)/2, boxW, boxH)
	promptW := len(restartPrompt)
	prompt = core.NewRect(box.X+(boxW-promptW)/2, box.Y+5, promptW, 1)
	return box, prompt
}

// drawGameOver dims the frozen frame and draws the overlay with the restart prompt.
func drawGameOver(dst *core.Screen, score int) {
	dst.Tint(core.ColorGray)

	box, prompt := gameOverBox(dst.Width(), dst.Height())
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	title := core.NewRect(box.X, box.Y+1, box.W, 1)
	drawCentered(dst, title, gameOverTitle, core.ColorRed)
	drawCentered(dst, core.NewRect(box.X, box.Y+3, box.W, 1), fmt.Sprintf("Score: %d", score), core.ColorBrightWhite)
	dst.DrawTextColored(prompt.X, prompt.Y, restartPrompt, core.ColorCyan)
}

func drawCentered(dst *core.Screen, r core.Rect, text string, c core.Color) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawTextColored(x, r.Y, text, c)
}
