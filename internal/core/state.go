package core

import "time"

// RuntimeConfig contains the host parameters a game session is built with.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // Gap generator seed, 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameInterval returns the wall time between two frames at the configured rate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// RunState is the top-level mode of a game session.
type RunState int

const (
	Running RunState = iota
	GameOver
)

// String returns a human-readable name for the run state.
func (s RunState) String() string {
	switch s {
	case Running:
		return "Running"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is the snapshot a game reports to the platform after each frame.
type GameState struct {
	Run          RunState
	Score        int    // Authoritative score owned by the world
	DisplayScore int    // Last polled score shown to the player
	Generation   uint64 // Incremented on every restart
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Run == GameOver
}
