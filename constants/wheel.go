package constants

import "time"

// Reward wheel rules
const (
	// SpinCooldown is the minimum time between two spins
	SpinCooldown = time.Hour

	// SpinDuration is the length of the spin animation
	SpinDuration = 3000 * time.Millisecond

	// MinFullSpins and MaxFullSpins bound the whole turns of a spin, max exclusive
	MinFullSpins = 5
	MaxFullSpins = 10

	// LastSpinStorageKey is the key holding the persisted last-spin record
	LastSpinStorageKey = "impcton.wheel.lastSpin"
)

// DefaultSegmentValues are the rewards in wheel order
var DefaultSegmentValues = []int{10, 20, 30, 40, 50, 100, 200, 500}
