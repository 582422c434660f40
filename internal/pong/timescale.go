package pong

import (
	"math"
	"time"
)

// ReferenceFrame is the frame period all velocities are expressed in.
const ReferenceFrame = time.Second / 60

// TimeScale converts an elapsed sample into reference frames. Samples that are
// zero, negative or not finite count as exactly one frame.
func TimeScale(elapsed time.Duration) float64 {
	return TimeScaleMillis(float64(elapsed) / float64(time.Millisecond))
}

// TimeScaleMillis is TimeScale for a raw millisecond sample.
func TimeScaleMillis(ms float64) float64 {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms <= 0 {
		return 1
	}
	return ms / (1000.0 / 60.0)
}
