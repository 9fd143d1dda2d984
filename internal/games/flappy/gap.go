package flappy

import (
	"math"
	"math/rand"
	"time"
)

// GapSource picks the vertical center of the next pipe gap.
// Implementations must return a value within [min, max].
type GapSource interface {
	GapCenter(min, max float64) float64
}

// RandGaps draws gap centers uniformly over the whole cells in [min, max].
type RandGaps struct {
	rng *rand.Rand
}

// NewRandGaps creates a gap source with the given seed.
// A zero seed means seed from the current time.
func NewRandGaps(seed int64) *RandGaps {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandGaps{rng: rand.New(rand.NewSource(seed))}
}

// GapCenter returns a whole-cell gap center so that pipe edges land on cell boundaries.
func (g *RandGaps) GapCenter(min, max float64) float64 {
	lo, hi := math.Ceil(min), math.Floor(max)
	if hi < lo {
		return (min + max) / 2
	}
	return lo + float64(g.rng.Intn(int(hi-lo)+1))
}

// gapRange returns the allowed gap centers for a screen of the given height.
// Both gap edges keep at least margin cells from the screen edges; on screens
// too small for that the range collapses to the middle of the screen.
func gapRange(height, gap, margin float64) (min, max float64) {
	min = margin + gap/2
	max = height - margin - gap/2
	if max < min {
		return height / 2, height / 2
	}
	return min, max
}
