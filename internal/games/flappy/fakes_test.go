package flappy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// fakeEngine is a minimal deterministic engine: explicit Euler integration
// for dynamic bodies and axis-aligned bounding-box overlap for Intersects.
type fakeEngine struct {
	gravity float64
	bodies  []fakeBody
	steps   []time.Duration
}

type fakeBody struct {
	def physics.BodyDef
	pos physics.Vec
	vel physics.Vec
}

func newFakeEngine(gravity float64) *fakeEngine {
	return &fakeEngine{gravity: gravity}
}

func fakeFactory(gravity float64) physics.Factory {
	return func() physics.Engine {
		return newFakeEngine(gravity)
	}
}

func (e *fakeEngine) CreateBody(def physics.BodyDef) physics.BodyID {
	e.bodies = append(e.bodies, fakeBody{def: def, pos: def.Position})
	return physics.BodyID(len(e.bodies) - 1)
}

func (e *fakeEngine) body(id physics.BodyID) *fakeBody {
	if id < 0 || int(id) >= len(e.bodies) {
		panic(fmt.Sprintf("fake engine: unknown body %d", id))
	}
	return &e.bodies[id]
}

func (e *fakeEngine) SetVelocity(id physics.BodyID, v physics.Vec) { e.body(id).vel = v }
func (e *fakeEngine) SetPosition(id physics.BodyID, p physics.Vec) { e.body(id).pos = p }
func (e *fakeEngine) Position(id physics.BodyID) physics.Vec       { return e.body(id).pos }
func (e *fakeEngine) Velocity(id physics.BodyID) physics.Vec       { return e.body(id).vel }

func (e *fakeEngine) Step(dt time.Duration) {
	e.steps = append(e.steps, dt)
	s := dt.Seconds()
	for i := range e.bodies {
		b := &e.bodies[i]
		if b.def.Kind != physics.Dynamic {
			continue
		}
		b.vel.Y += e.gravity * s
		b.pos.X += b.vel.X * s
		b.pos.Y += b.vel.Y * s
	}
}

func (e *fakeEngine) Intersects(a, b physics.BodyID) bool {
	ax0, ay0, ax1, ay1 := e.bounds(a)
	bx0, by0, bx1, by1 := e.bounds(b)
	return ax0 < bx1 && bx0 < ax1 && ay0 < by1 && by0 < ay1
}

func (e *fakeEngine) bounds(id physics.BodyID) (x0, y0, x1, y1 float64) {
	b := e.body(id)
	hw, hh := b.def.Shape.Radius, b.def.Shape.Radius
	if b.def.Shape.Kind == physics.Box {
		hw, hh = b.def.Shape.W/2, b.def.Shape.H/2
	}
	return b.pos.X - hw, b.pos.Y - hh, b.pos.X + hw, b.pos.Y + hh
}

// stubGaps returns a fixed sequence of gap centers, repeating the last one.
type stubGaps struct {
	values []float64
	calls  int
	lastLo float64
	lastHi float64
}

func newStubGaps(values ...float64) *stubGaps {
	return &stubGaps{values: values}
}

func (g *stubGaps) GapCenter(min, max float64) float64 {
	g.lastLo, g.lastHi = min, max
	i := g.calls
	if i >= len(g.values) {
		i = len(g.values) - 1
	}
	g.calls++
	return g.values[i]
}

const frame = time.Second / 60

var testView = Viewport{W: 80, H: 24}

// newTestWorld builds a world on a fake engine without gravity, so the bird
// hovers at the screen center unless a test moves it.
func newTestWorld(gaps GapSource, onCollision func()) (*World, *fakeEngine) {
	engine := newFakeEngine(0)
	w := NewWorld(Env{
		Engine:   engine,
		Viewport: testView,
		Gaps:     gaps,
		Config:   config.DefaultFlappyConfig(),
	}, onCollision)
	return w, engine
}
