package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Tick advances the world by one frame:
//  1. integrate the engine by dt;
//  2. signal a collision if the bird touches a pipe or leaves the screen
//     vertically, and stop there;
//  3. recycle the pipe pair once it is a full pipe width past the left edge,
//     scoring one point;
//  4. scroll both pipes left by the fixed per-frame speed.
//
// It reports whether a collision was signalled.
func (w *World) Tick(dt time.Duration) bool {
	w.engine.Step(dt)

	if w.collides() {
		w.onCollision()
		return true
	}

	top, bottom := w.PipePositions()
	if top.X < -w.cfg.Pipes.Width {
		w.recycle()
		top, bottom = w.PipePositions()
	}

	shift := physics.Vec{X: -w.cfg.Pipes.Speed}
	w.engine.SetPosition(w.pipeTop, top.Add(shift))
	w.engine.SetPosition(w.pipeBottom, bottom.Add(shift))
	return false
}

func (w *World) collides() bool {
	if w.engine.Intersects(w.bird, w.pipeTop) || w.engine.Intersects(w.bird, w.pipeBottom) {
		return true
	}
	y := w.engine.Position(w.bird).Y
	return y <= 0 || y >= w.view.H
}

// recycle moves the pipe pair back to the right edge around a new gap.
func (w *World) recycle() {
	w.gapCenter = w.nextGap()
	top, bottom := w.pipePositions(w.view.W, w.gapCenter)
	w.engine.SetPosition(w.pipeTop, top)
	w.engine.SetPosition(w.pipeBottom, bottom)
	w.score++
}
