// Package debounce decides when a battery threshold crossing should
// produce a user-facing alert, and latches so an excursion past a
// threshold fires at most one alert.
package debounce

const (
	// LowThreshold is the charge percentage at or below which a low
	// battery alert may fire.
	LowThreshold = 20
	// HighThreshold is the charge percentage at or above which a high
	// battery alert may fire.
	HighThreshold = 80
)

// Decision is the outcome of a single debounce evaluation.
type Decision int

const (
	// None means no alert should be shown this cycle.
	None Decision = iota
	// FireLow means the low battery alert should be shown.
	FireLow
	// FireHigh means the high battery alert should be shown.
	FireHigh
)

func (d Decision) String() string {
	switch d {
	case None:
		return "none"
	case FireLow:
		return "fire-low"
	case FireHigh:
		return "fire-high"
	default:
		return "unknown"
	}
}

// Debouncer owns the armed latch. While armed, the next threshold
// crossing may fire an alert; firing disarms it. The latch re-arms only
// once the charge returns strictly inside the safe band (low, high), so
// a battery pinned at 20% unplugged or 80% on a tapering charger does
// not interrupt the user on every poll.
type Debouncer struct {
	armed bool
	low   int
	high  int
}

// New returns an armed Debouncer with the default 20/80 thresholds.
func New() *Debouncer {
	return NewWithThresholds(LowThreshold, HighThreshold)
}

// NewWithThresholds returns an armed Debouncer with custom thresholds.
func NewWithThresholds(low, high int) *Debouncer {
	return &Debouncer{
		armed: true,
		low:   low,
		high:  high,
	}
}

// Armed reports whether the next threshold crossing can fire an alert.
func (d *Debouncer) Armed() bool {
	return d.armed
}

// Decide evaluates one battery reading and updates the latch.
//
// The re-arm check runs first: a disarmed latch re-arms iff the charge
// is strictly inside the safe band, i.e. low < percent < high. Both
// comparisons are strict; a reading sitting exactly on a threshold
// neither re-arms nor (when suppressed by the charging state) fires.
//
// A low alert fires only while not charging (charging means the level
// is expected to rise) and a high alert only while charging (unplugged
// means it is expected to fall). Firing disarms the latch.
func (d *Debouncer) Decide(percent int, charging bool) Decision {
	if !d.armed && percent > d.low && percent < d.high {
		d.armed = true
	}

	switch {
	case d.armed && !charging && percent <= d.low:
		d.armed = false
		return FireLow
	case d.armed && charging && percent >= d.high:
		d.armed = false
		return FireHigh
	}

	return None
}
