package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

func TestNewWorldLayout(t *testing.T) {
	gaps := newStubGaps(12)
	w, engine := newTestWorld(gaps, nil)
	cfg := config.DefaultFlappyConfig()

	if p := w.BirdPosition(); p != (physics.Vec{X: cfg.Bird.X, Y: 12}) {
		t.Errorf("bird should start at (%v, 12), got %+v", cfg.Bird.X, p)
	}

	top, bottom := w.PipePositions()
	if top.X != testView.W || bottom.X != testView.W {
		t.Errorf("pipes should start at the right edge, got top %v bottom %v", top.X, bottom.X)
	}
	// gap 8, screen 24: top center = 12 - 4 - 12, bottom center = 12 + 4 + 12
	if top.Y != -4 || bottom.Y != 28 {
		t.Errorf("pipe centers = (%v, %v), expected (-4, 28)", top.Y, bottom.Y)
	}
	if w.GapCenter() != 12 {
		t.Errorf("GapCenter() = %v, expected 12", w.GapCenter())
	}
	if gaps.lastLo != 7 || gaps.lastHi != 17 {
		t.Errorf("gap range = [%v, %v], expected [7, 17]", gaps.lastLo, gaps.lastHi)
	}
	if w.Score() != 0 {
		t.Errorf("new world should have score 0, got %d", w.Score())
	}

	kinds := map[physics.ShapeKind]int{}
	for _, b := range engine.bodies {
		kinds[b.def.Shape.Kind]++
	}
	if len(engine.bodies) != 3 || kinds[physics.Circle] != 1 || kinds[physics.Box] != 2 {
		t.Errorf("world should hold one round bird and two box pipes, got %v", kinds)
	}
	if engine.bodies[w.bird].def.Kind != physics.Dynamic || engine.bodies[w.pipeTop].def.Kind != physics.Kinematic {
		t.Error("bird should be dynamic and pipes kinematic")
	}
}

func TestJumpSetsUpwardVelocity(t *testing.T) {
	w, engine := newTestWorld(newStubGaps(12), nil)
	engine.SetVelocity(w.bird, physics.Vec{X: 3, Y: 40})

	w.Jump()

	want := physics.Vec{X: 0, Y: config.DefaultFlappyConfig().Physics.JumpVelocity}
	if v := engine.Velocity(w.bird); v != want {
		t.Errorf("velocity after jump = %+v, expected %+v", v, want)
	}
}

func TestTickScrollsPipesAtFixedSpeed(t *testing.T) {
	w, engine := newTestWorld(newStubGaps(12), nil)
	speed := config.DefaultFlappyConfig().Pipes.Speed

	// The per-frame speed does not depend on the elapsed time
	w.Tick(frame)
	w.Tick(3 * frame)

	top, bottom := w.PipePositions()
	if top.X != testView.W-2*speed || bottom.X != testView.W-2*speed {
		t.Errorf("pipes should scroll %v per tick, got top %v bottom %v", speed, top.X, bottom.X)
	}
	if len(engine.steps) != 2 || engine.steps[1] != 3*frame {
		t.Errorf("engine should be stepped with each frame delta, got %v", engine.steps)
	}
}

func TestRecycleWithStubbedGap(t *testing.T) {
	gaps := newStubGaps(12, 9)
	w, engine := newTestWorld(gaps, nil)
	cfg := config.DefaultFlappyConfig()

	top, bottom := w.PipePositions()
	engine.SetPosition(w.pipeTop, physics.Vec{X: -cfg.Pipes.Width - 0.25, Y: top.Y})
	engine.SetPosition(w.pipeBottom, physics.Vec{X: -cfg.Pipes.Width - 0.25, Y: bottom.Y})

	if w.Tick(frame) {
		t.Fatal("recycle tick should not collide")
	}

	if w.Score() != 1 {
		t.Errorf("recycle should score exactly 1, got %d", w.Score())
	}
	if w.GapCenter() != 9 {
		t.Errorf("GapCenter() = %v, expected stubbed 9", w.GapCenter())
	}
	top, bottom = w.PipePositions()
	wantX := testView.W - cfg.Pipes.Speed
	if top.X != wantX || bottom.X != wantX {
		t.Errorf("recycled pipes should be at the right edge (scrolled once), got %v and %v", top.X, bottom.X)
	}
	if top.Y != 9-4-12 || bottom.Y != 9+4+12 {
		t.Errorf("recycled pipes should surround gap 9, got %v and %v", top.Y, bottom.Y)
	}
}

func TestNoRecycleAtThreshold(t *testing.T) {
	w, engine := newTestWorld(newStubGaps(12), nil)
	cfg := config.DefaultFlappyConfig()

	top, bottom := w.PipePositions()
	engine.SetPosition(w.pipeTop, physics.Vec{X: -cfg.Pipes.Width, Y: top.Y})
	engine.SetPosition(w.pipeBottom, physics.Vec{X: -cfg.Pipes.Width, Y: bottom.Y})

	w.Tick(frame)

	if w.Score() != 0 {
		t.Errorf("pipes exactly one width past the edge should not recycle yet, score %d", w.Score())
	}
	if top, _ = w.PipePositions(); top.X != -cfg.Pipes.Width-cfg.Pipes.Speed {
		t.Errorf("pipes should keep scrolling, got %v", top.X)
	}
}

func TestPipeGapInvariantAcrossRecycles(t *testing.T) {
	gaps := newStubGaps(12, 10, 14, 12, 11, 13, 12)
	w, _ := newTestWorld(gaps, nil)
	cfg := config.DefaultFlappyConfig()

	lastScore := 0
	for i := 0; i < 1000; i++ {
		if w.Tick(frame) {
			t.Fatalf("tick %d: bird inside the gap should not collide", i)
		}
		top, bottom := w.PipePositions()
		if top.X != bottom.X {
			t.Fatalf("tick %d: pipes drifted apart horizontally: %v vs %v", i, top.X, bottom.X)
		}
		innerTop := top.Y + testView.H/2
		innerBottom := bottom.Y - testView.H/2
		if math.Abs((innerBottom-innerTop)-cfg.Pipes.Gap) > 1e-9 {
			t.Fatalf("tick %d: gap = %v, expected %v", i, innerBottom-innerTop, cfg.Pipes.Gap)
		}
		if w.Score() < lastScore {
			t.Fatalf("tick %d: score decreased from %d to %d", i, lastScore, w.Score())
		}
		lastScore = w.Score()
	}
	if lastScore < 4 {
		t.Errorf("1000 frames should recycle the pipes several times, score %d", lastScore)
	}
}

func TestCollisionSignals(t *testing.T) {
	tests := []struct {
		name string
		bird physics.Vec
	}{
		{"top pipe", physics.Vec{X: 80, Y: 2}},
		{"bottom pipe", physics.Vec{X: 80, Y: 22}},
		{"above the screen", physics.Vec{X: 10, Y: -0.5}},
		{"on the top bound", physics.Vec{X: 10, Y: 0}},
		{"below the screen", physics.Vec{X: 10, Y: 24}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			signals := 0
			w, engine := newTestWorld(newStubGaps(12), func() { signals++ })
			engine.SetPosition(w.bird, tc.bird)

			if !w.Tick(frame) {
				t.Error("Tick should report the collision")
			}
			if signals != 1 {
				t.Errorf("collision observer fired %d times, expected 1", signals)
			}

			// The signal repeats on every colliding tick; the controller absorbs it
			w.Tick(frame)
			if signals != 2 {
				t.Errorf("second colliding tick should signal again, got %d", signals)
			}
		})
	}
}

func TestCollisionStopsTheTick(t *testing.T) {
	w, engine := newTestWorld(newStubGaps(12), nil)
	cfg := config.DefaultFlappyConfig()

	top, bottom := w.PipePositions()
	engine.SetPosition(w.pipeTop, physics.Vec{X: -cfg.Pipes.Width - 1, Y: top.Y})
	engine.SetPosition(w.pipeBottom, physics.Vec{X: -cfg.Pipes.Width - 1, Y: bottom.Y})
	engine.SetPosition(w.bird, physics.Vec{X: 10, Y: 30})

	w.Tick(frame)

	if w.Score() != 0 {
		t.Errorf("a colliding tick must not recycle or score, got %d", w.Score())
	}
	if top, _ = w.PipePositions(); top.X != -cfg.Pipes.Width-1 {
		t.Errorf("a colliding tick must not scroll the pipes, got %v", top.X)
	}
}

func TestGapRange(t *testing.T) {
	tests := []struct {
		name             string
		height, gap, mrg float64
		min, max         float64
	}{
		{"regular screen", 24, 8, 3, 7, 17},
		{"no margin", 24, 8, 0, 4, 20},
		{"exact fit", 14, 8, 3, 7, 7},
		{"too small collapses to center", 10, 8, 3, 5, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			min, max := gapRange(tc.height, tc.gap, tc.mrg)
			if min != tc.min || max != tc.max {
				t.Errorf("gapRange = [%v, %v], expected [%v, %v]", min, max, tc.min, tc.max)
			}
		})
	}
}

func TestRandGaps(t *testing.T) {
	a, b := NewRandGaps(7), NewRandGaps(7)
	seen := map[float64]bool{}
	for i := 0; i < 500; i++ {
		va, vb := a.GapCenter(7, 17), b.GapCenter(7, 17)
		if va != vb {
			t.Fatalf("same seed should give the same sequence: %v vs %v", va, vb)
		}
		if va < 7 || va > 17 || va != math.Trunc(va) {
			t.Fatalf("gap center %v should be a whole cell within [7, 17]", va)
		}
		seen[va] = true
	}
	if len(seen) != 11 {
		t.Errorf("500 draws should cover all 11 centers, got %d", len(seen))
	}

	if v := a.GapCenter(7.2, 7.8); v != 7.5 {
		t.Errorf("range without whole cells should return its middle, got %v", v)
	}
	if NewRandGaps(0) == nil {
		t.Error("zero seed should still build a source")
	}
}
