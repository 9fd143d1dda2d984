// Package flappy implements a Flappy Bird-style game.
// A bird under gravity flaps through the gap of a scrolling pipe pair; every
// pipe pair that scrolls off screen scores a point and any contact ends the run.
package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/physics/chipmunk"
)

// Game adapts the Controller to the frame-driven host.
type Game struct {
	cfg       config.FlappyConfig
	newEngine physics.Factory
	gaps      GapSource
	ctrl      *Controller
	screenW   int
	screenH   int
}

// Option customizes a Game.
type Option func(*Game)

// WithEngine replaces the default Chipmunk2D engine factory.
func WithEngine(f physics.Factory) Option {
	return func(g *Game) {
		g.newEngine = f
	}
}

// WithGaps replaces the seeded random gap source.
func WithGaps(gaps GapSource) Option {
	return func(g *Game) {
		g.gaps = gaps
	}
}

// New creates a Flappy Bird game. Reset must be called before the first frame.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.newEngine == nil {
		g.newEngine = chipmunk.NewFactory(physics.Vec{Y: cfg.Physics.Gravity})
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a brand new session for the given screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	gaps := g.gaps
	if gaps == nil {
		gaps = NewRandGaps(rc.Seed)
	}
	g.screenW, g.screenH = rc.ScreenW, rc.ScreenH
	g.ctrl = NewController(g.cfg, g.newEngine, gaps, viewport(rc.ScreenW, rc.ScreenH))
}

// Step applies the input collected since the last frame and runs one tick.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.GameState {
	if in.Has(core.ActionTap) {
		g.ctrl.Tap()
	}
	g.ctrl.Frame(dt)
	return g.ctrl.State()
}

// Restart discards the session and starts a new one.
func (g *Game) Restart() core.GameState {
	g.ctrl.Restart()
	return g.ctrl.State()
}

// Resize records a new screen size. The running world keeps its size until
// the next restart; the game-over overlay follows the screen immediately.
func (g *Game) Resize(w, h int) core.GameState {
	g.screenW, g.screenH = w, h
	g.ctrl.Resize(viewport(w, h))
	return g.ctrl.State()
}

// PollScore publishes the current score to the display.
func (g *Game) PollScore() int {
	return g.ctrl.PollScore()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.ctrl.State()
}

// Controller exposes the underlying controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Render draws the current frame. After game over the frame is dimmed and
// covered by the restart overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	state := g.ctrl.State()
	drawWorld(dst, g.ctrl.World())
	drawScore(dst, state.DisplayScore)
	if state.GameOver() {
		drawGameOver(dst, state.DisplayScore)
	}
}

// RestartRegion returns the cells of the restart prompt on the current screen.
func (g *Game) RestartRegion() core.Rect {
	_, prompt := gameOverBox(g.screenW, g.screenH)
	return prompt
}

func viewport(w, h int) Viewport {
	return Viewport{W: float64(w), H: float64(h)}
}
