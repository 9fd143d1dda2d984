package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in Flappy Bird configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:        90.0,
			JumpVelocity:   -27.0,
			BirdElasticity: 0.5,
		},
		Bird: FlappyBird{
			X:      10,
			Radius: 1.0,
		},
		Pipes: FlappyPipes{
			Width:  6,
			Gap:    8,
			Speed:  0.5,
			Margin: 3,
		},
		Display: FlappyDisplay{
			TickRate:      60,
			ScorePoll:     100 * time.Millisecond,
			MaxFrameDelta: 50 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
