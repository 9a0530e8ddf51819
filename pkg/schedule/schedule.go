// Package schedule computes how long the monitor should wait between
// battery checks, based on the current charge level.
package schedule

import (
	"math"
	"time"
)

// DefaultMaxInterval is the longest wait between two checks. It is only
// reached when the battery sits at 50%, where nothing urgent can happen.
const DefaultMaxInterval = 20 * time.Minute

// NextDelaySeconds returns the number of seconds to wait before the next
// battery check. The delay follows a downward parabola in the battery
// percentage: it is exactly 60 seconds at 20% and 80%, and equals
// maxIntervalSeconds at 50%. The closer the charge gets to either edge of
// the 20-80 band, the more aggressively the interval shrinks, so a
// threshold crossing is never missed by much.
//
// The result is rounded half away from zero. The function is pure and
// total: any percentage in [0, 100] yields a value without clamping.
func NextDelaySeconds(batteryPercent, maxIntervalSeconds int) int {
	maxInterval := float64(maxIntervalSeconds)

	a := (60 - maxInterval) / 900
	b := (maxInterval - 60) / 9
	c := 4.0 / 9.0 * (375 - 4*maxInterval)

	x := float64(batteryPercent)
	y := a*x*x + b*x + c

	return int(math.Round(y))
}

// NextDelay is NextDelaySeconds expressed in time.Duration terms.
func NextDelay(batteryPercent int, maxInterval time.Duration) time.Duration {
	seconds := NextDelaySeconds(batteryPercent, int(maxInterval/time.Second))
	return time.Duration(seconds) * time.Second
}
