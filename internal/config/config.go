// Package config provides YAML-based game configuration loading
// with embedded defaults.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunables of the Flappy Bird game.
type FlappyConfig struct {
	Physics FlappyPhysics `yaml:"physics"`
	Bird    FlappyBird    `yaml:"bird"`
	Pipes   FlappyPipes   `yaml:"pipes"`
	Display FlappyDisplay `yaml:"display"`
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpVelocity   float64 `yaml:"jump_velocity"`
	BirdElasticity float64 `yaml:"bird_elasticity"`
}

// FlappyBird defines the bird body.
type FlappyBird struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// FlappyPipes defines the pipe pair.
type FlappyPipes struct {
	Width  float64 `yaml:"width"`
	Gap    float64 `yaml:"gap"`
	Speed  float64 `yaml:"speed"`
	Margin float64 `yaml:"margin"`
}

// FlappyDisplay defines frame pacing and score polling.
type FlappyDisplay struct {
	TickRate      int           `yaml:"tick_rate"`
	ScorePoll     time.Duration `yaml:"score_poll"`
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be negative (up), got %v", c.Physics.JumpVelocity))
	}
	if c.Physics.BirdElasticity < 0 || c.Physics.BirdElasticity > 1 {
		errs = append(errs, fmt.Errorf("physics.bird_elasticity must be within [0, 1], got %v", c.Physics.BirdElasticity))
	}
	if c.Bird.Radius <= 0 {
		errs = append(errs, fmt.Errorf("bird.radius must be positive, got %v", c.Bird.Radius))
	}
	if c.Pipes.Width <= 0 {
		errs = append(errs, fmt.Errorf("pipes.width must be positive, got %v", c.Pipes.Width))
	}
	if c.Pipes.Gap <= 0 {
		errs = append(errs, fmt.Errorf("pipes.gap must be positive, got %v", c.Pipes.Gap))
	}
	if c.Pipes.Speed <= 0 {
		errs = append(errs, fmt.Errorf("pipes.speed must be positive, got %v", c.Pipes.Speed))
	}
	if c.Pipes.Margin < 0 {
		errs = append(errs, fmt.Errorf("pipes.margin must not be negative, got %v", c.Pipes.Margin))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate))
	}
	if c.Display.ScorePoll <= 0 {
		errs = append(errs, fmt.Errorf("display.score_poll must be positive, got %v", c.Display.ScorePoll))
	}
	if c.Display.MaxFrameDelta <= 0 {
		errs = append(errs, fmt.Errorf("display.max_frame_delta must be positive, got %v", c.Display.MaxFrameDelta))
	}
	return errors.Join(errs...)
}
