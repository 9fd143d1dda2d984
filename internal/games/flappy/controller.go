package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Controller owns the run state of a session. It turns taps into jumps,
// stops on collision, rebuilds the world on restart, and publishes the score
// to the display through PollScore.
type Controller struct {
	cfg       config.FlappyConfig
	newEngine physics.Factory
	gaps      GapSource
	view      Viewport

	world      *World
	run        core.RunState
	display    int
	generation uint64
}

// NewController starts a session in the Running state with a fresh world.
func NewController(cfg config.FlappyConfig, newEngine physics.Factory, gaps GapSource, view Viewport) *Controller {
	c := &Controller{
		cfg:       cfg,
		newEngine: newEngine,
		gaps:      gaps,
		view:      view,
	}
	c.world = c.spawn()
	return c
}

// spawn builds a world whose collision signal only reaches the controller
// while that world is still the current one.
func (c *Controller) spawn() *World {
	gen := c.generation
	return NewWorld(Env{
		Engine:   c.newEngine(),
		Viewport: c.view,
		Gaps:     c.gaps,
		Config:   c.cfg,
	}, func() {
		if gen == c.generation {
			c.gameOver()
		}
	})
}

// Tap makes the bird jump. Ignored after game over.
func (c *Controller) Tap() {
	if c.run != core.Running {
		return
	}
	c.world.Jump()
}

// Frame runs one physics tick. Ignored after game over.
func (c *Controller) Frame(dt time.Duration) {
	if c.run != core.Running {
		return
	}
	c.world.Tick(dt)
}

// gameOver handles the collision signal. Repeated signals are no-ops.
func (c *Controller) gameOver() {
	c.run = core.GameOver
}

// Restart discards the current world and starts over with a new one.
// The generation is bumped so hosts can drop loop callbacks of the old session.
func (c *Controller) Restart() {
	c.generation++
	c.world = c.spawn()
	c.run = core.Running
	c.display = 0
}

// Resize records a new viewport for the next Restart. The current world keeps
// the size it was built with, so a running session and its score carry on.
func (c *Controller) Resize(view Viewport) {
	c.view = view
}

// PollScore copies the world's score into the displayed score while running
// and returns the displayed value. After game over the display stays frozen.
func (c *Controller) PollScore() int {
	if c.run == core.Running {
		c.display = c.world.Score()
	}
	return c.display
}

// State returns a snapshot for the host.
func (c *Controller) State() core.GameState {
	return core.GameState{
		Run:          c.run,
		Score:        c.world.Score(),
		DisplayScore: c.display,
		Generation:   c.generation,
	}
}

// World returns the current world.
func (c *Controller) World() *World {
	return c.world
}
