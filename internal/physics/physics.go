// Package physics defines the narrow physics-engine surface the game loop
// depends on. Games create bodies, mutate their velocity and position, step
// the world, and ask whether two bodies touch. Nothing else leaks through, so
// the game logic can be tested against a fake engine.
package physics

import "time"

// Vec is a 2D vector in world units (terminal cells). Y grows downward.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// BodyID identifies a body inside one Engine instance.
type BodyID int

// Kind selects how a body takes part in the simulation.
type Kind int

const (
	// Dynamic bodies are moved by gravity and collisions.
	Dynamic Kind = iota
	// Kinematic bodies are moved only by SetPosition/SetVelocity and push dynamic bodies.
	Kinematic
)

// ShapeKind selects the collision shape of a body.
type ShapeKind int

const (
	Circle ShapeKind = iota
	Box
)

// Shape describes a body's collision geometry, centered on the body position.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // Circle
	W, H   float64 // Box
}

// CircleShape returns a circle of the given radius.
func CircleShape(radius float64) Shape {
	return Shape{Kind: Circle, Radius: radius}
}

// BoxShape returns an axis-aligned box of the given size.
func BoxShape(w, h float64) Shape {
	return Shape{Kind: Box, W: w, H: h}
}

// BodyDef is the blueprint passed to Engine.CreateBody.
type BodyDef struct {
	Kind       Kind
	Shape      Shape
	Position   Vec
	Elasticity float64
}

// Engine is a 2D rigid-body simulation.
// Passing a BodyID that the engine did not create is a programming error and panics.
type Engine interface {
	CreateBody(def BodyDef) BodyID
	SetVelocity(id BodyID, v Vec)
	SetPosition(id BodyID, p Vec)
	Position(id BodyID) Vec
	Velocity(id BodyID) Vec
	// Step integrates the world forward by dt.
	Step(dt time.Duration)
	// Intersects reports whether the shapes of a and b overlap at their
	// current positions, including positions set since the last Step.
	Intersects(a, b BodyID) bool
}

// Factory builds a fresh, empty engine. Each game session owns exactly one.
type Factory func() Engine
