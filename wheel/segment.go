// Package wheel implements the reward wheel: the segment list, outcome
// selection, the eased spin animation and the persisted cooldown gate.
//
// A Wheel is owned by a single goroutine, the host's main loop. Frame
// callbacks and cooldown ticks are both delivered on that goroutine, so the
// spinning and open flags never race and no locking is needed.
package wheel

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/lixenwraith/impcton/constants"
	"github.com/lixenwraith/impcton/engine"
)

// Segment is one wedge of the wheel
type Segment struct {
	Label string
	Value int
}

// SegmentsFromValues labels each value with its decimal form
func SegmentsFromValues(values []int) []Segment {
	segs := make([]Segment, len(values))
	for i, v := range values {
		segs[i] = Segment{Label: strconv.Itoa(v), Value: v}
	}
	return segs
}

// DefaultSegments returns the standard reward list
func DefaultSegments() []Segment {
	return SegmentsFromValues(constants.DefaultSegmentValues)
}

// ValidateSegments checks the list is non-empty and every reward positive
func ValidateSegments(segs []Segment) error {
	if len(segs) == 0 {
		return errors.New("wheel: at least one segment required")
	}
	for i, s := range segs {
		if s.Value <= 0 {
			return errors.Newf("wheel: segment %d (%q) has non-positive value %d", i, s.Label, s.Value)
		}
	}
	return nil
}

// SegmentWidth returns the angular width in degrees of each of count segments
func SegmentWidth(count int) float64 {
	if count <= 0 {
		return 0
	}
	return 360 / float64(count)
}

// NormalizeAngle maps any angle in degrees into [0, 360)
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// -1e-15 + 360 rounds to 360
	if a >= 360 {
		a = 0
	}
	return a
}

// SelectSegment maps a total rotation to the segment index under the pointer
// Pure in the final angle: rotations differing by whole turns select the same
// segment. Returns -1 when count is not positive
func SelectSegment(totalRotation float64, count int) int {
	if count <= 0 {
		return -1
	}
	finalAngle := NormalizeAngle(totalRotation)
	index := int(math.Floor(finalAngle/360*float64(count))) % count
	return index
}

// RollRotation draws a total rotation: whole turns in [MinFullSpins, MaxFullSpins)
// plus an extra angle in [0, 360)
func RollRotation(rng engine.Random) float64 {
	fullSpins := constants.MinFullSpins + rng.IntN(constants.MaxFullSpins-constants.MinFullSpins)
	extra := rng.Float64() * 360
	return float64(fullSpins)*360 + extra
}
