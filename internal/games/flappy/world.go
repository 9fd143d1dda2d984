package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Viewport is the playfield size in cells, supplied by the host terminal.
type Viewport struct {
	W, H float64
}

// Env carries everything the world factory needs besides the collision callback.
type Env struct {
	Engine   physics.Engine // Fresh engine, owned by the new world
	Viewport Viewport
	Gaps     GapSource
	Config   config.FlappyConfig
}

// World is the complete physics state of one game session: the bird, the pipe
// pair, and the score. A restart replaces the whole world.
type World struct {
	engine      physics.Engine
	view        Viewport
	gaps        GapSource
	cfg         config.FlappyConfig
	onCollision func()

	bird       physics.BodyID
	pipeTop    physics.BodyID
	pipeBottom physics.BodyID
	gapCenter  float64
	score      int
}

// NewWorld builds a fresh world: the bird at its fixed X and the vertical
// center of the screen, and a pipe pair at the right edge around a random gap.
// onCollision fires every time a tick finds the bird touching a pipe or
// outside the screen.
func NewWorld(env Env, onCollision func()) *World {
	if onCollision == nil {
		onCollision = func() {}
	}
	w := &World{
		engine:      env.Engine,
		view:        env.Viewport,
		gaps:        env.Gaps,
		cfg:         env.Config,
		onCollision: onCollision,
	}

	w.bird = w.engine.CreateBody(physics.BodyDef{
		Kind:       physics.Dynamic,
		Shape:      physics.CircleShape(w.cfg.Bird.Radius),
		Position:   w.BirdStart(),
		Elasticity: w.cfg.Physics.BirdElasticity,
	})

	w.gapCenter = w.nextGap()
	top, bottom := w.pipePositions(w.view.W, w.gapCenter)
	pipe := physics.BoxShape(w.cfg.Pipes.Width, w.view.H)
	w.pipeTop = w.engine.CreateBody(physics.BodyDef{
		Kind:     physics.Kinematic,
		Shape:    pipe,
		Position: top,
	})
	w.pipeBottom = w.engine.CreateBody(physics.BodyDef{
		Kind:     physics.Kinematic,
		Shape:    pipe,
		Position: bottom,
	})

	return w
}

// BirdStart returns the position every new bird starts at.
func (w *World) BirdStart() physics.Vec {
	return physics.Vec{X: w.cfg.Bird.X, Y: w.view.H / 2}
}

// Jump gives the bird the configured upward velocity, replacing its current one.
func (w *World) Jump() {
	w.engine.SetVelocity(w.bird, physics.Vec{X: 0, Y: w.cfg.Physics.JumpVelocity})
}

// BirdPosition returns the center of the bird.
func (w *World) BirdPosition() physics.Vec {
	return w.engine.Position(w.bird)
}

// PipePositions returns the centers of the top and bottom pipe.
func (w *World) PipePositions() (top, bottom physics.Vec) {
	return w.engine.Position(w.pipeTop), w.engine.Position(w.pipeBottom)
}

// GapCenter returns the vertical center of the current gap.
func (w *World) GapCenter() float64 {
	return w.gapCenter
}

// Score returns the number of pipe pairs recycled in this world.
func (w *World) Score() int {
	return w.score
}

// Viewport returns the playfield size the world was built for.
func (w *World) Viewport() Viewport {
	return w.view
}

// pipePositions places a pipe pair at x around gap center gy. Both pipes are
// as tall as the screen so they always reach past the screen edges.
func (w *World) pipePositions(x, gy float64) (top, bottom physics.Vec) {
	half := w.cfg.Pipes.Gap/2 + w.view.H/2
	return physics.Vec{X: x, Y: gy - half}, physics.Vec{X: x, Y: gy + half}
}

func (w *World) nextGap() float64 {
	lo, hi := gapRange(w.view.H, w.cfg.Pipes.Gap, w.cfg.Pipes.Margin)
	return w.gaps.GapCenter(lo, hi)
}
