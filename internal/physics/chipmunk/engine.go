// Package chipmunk implements physics.Engine on top of Chipmunk2D
// (github.com/jakecoffman/cp).
package chipmunk

import (
	"fmt"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// dynamicMass is the mass given to every dynamic body. Gameplay only depends
// on velocities, so the absolute value does not matter.
const dynamicMass = 1.0

type body struct {
	body  *cp.Body
	shape *cp.Shape
	kind  physics.ShapeKind
}

// Engine is a physics.Engine backed by a single cp.Space.
type Engine struct {
	space  *cp.Space
	bodies []body
}

// New creates an empty engine with the given gravity (world units per second squared).
func New(gravity physics.Vec) *Engine {
	space := cp.NewSpace()
	space.SetGravity(toCP(gravity))
	return &Engine{space: space}
}

// NewFactory returns a physics.Factory producing engines with the given gravity.
func NewFactory(gravity physics.Vec) physics.Factory {
	return func() physics.Engine {
		return New(gravity)
	}
}

// CreateBody adds a body with its collision shape to the space.
func (e *Engine) CreateBody(def physics.BodyDef) physics.BodyID {
	var b *cp.Body
	switch def.Kind {
	case physics.Kinematic:
		b = cp.NewKinematicBody()
	default:
		b = cp.NewBody(dynamicMass, moment(def.Shape))
	}
	b.SetPosition(toCP(def.Position))
	e.space.AddBody(b)

	var shape *cp.Shape
	switch def.Shape.Kind {
	case physics.Box:
		shape = cp.NewBox(b, def.Shape.W, def.Shape.H, 0)
	default:
		shape = cp.NewCircle(b, def.Shape.Radius, cp.Vector{})
	}
	shape.SetElasticity(def.Elasticity)
	e.space.AddShape(shape)

	e.bodies = append(e.bodies, body{body: b, shape: shape, kind: def.Shape.Kind})
	return physics.BodyID(len(e.bodies) - 1)
}

// SetVelocity overwrites the linear velocity of a body.
func (e *Engine) SetVelocity(id physics.BodyID, v physics.Vec) {
	e.get(id).body.SetVelocity(v.X, v.Y)
}

// SetPosition teleports a body. The space picks the new position up on the
// next Step; Intersects sees it immediately.
func (e *Engine) SetPosition(id physics.BodyID, p physics.Vec) {
	e.get(id).body.SetPosition(toCP(p))
}

// Position returns the center of a body.
func (e *Engine) Position(id physics.BodyID) physics.Vec {
	return fromCP(e.get(id).body.Position())
}

// Velocity returns the linear velocity of a body.
func (e *Engine) Velocity(id physics.BodyID) physics.Vec {
	return fromCP(e.get(id).body.Velocity())
}

// Step advances the space by dt. Non-positive steps are ignored.
func (e *Engine) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	e.space.Step(dt.Seconds())
}

// Intersects collides the two shapes directly instead of querying the space,
// whose spatial index only catches up with teleported bodies on the next Step.
func (e *Engine) Intersects(a, b physics.BodyID) bool {
	ba, bb := e.get(a), e.get(b)
	// Narrow phase expects circles before polygons.
	if ba.kind == physics.Box && bb.kind == physics.Circle {
		ba, bb = bb, ba
	}
	ba.shape.CacheBB()
	bb.shape.CacheBB()
	set := cp.ShapesCollide(ba.shape, bb.shape)
	return set.Count > 0
}

func (e *Engine) get(id physics.BodyID) body {
	if id < 0 || int(id) >= len(e.bodies) {
		panic(fmt.Sprintf("chipmunk: unknown body %d", id))
	}
	return e.bodies[id]
}

func moment(s physics.Shape) float64 {
	if s.Kind == physics.Box {
		return cp.MomentForBox(dynamicMass, s.W, s.H)
	}
	return cp.MomentForCircle(dynamicMass, 0, s.Radius, cp.Vector{})
}

func toCP(v physics.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) physics.Vec {
	return physics.Vec{X: v.X, Y: v.Y}
}

var _ physics.Engine = (*Engine)(nil)
