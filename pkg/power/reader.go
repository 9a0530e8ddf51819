// Package power reads battery telemetry from the host.
package power

import "errors"

var (
	// ErrNoBattery is returned when the host reports no battery at all.
	ErrNoBattery = errors.New("no battery found")

	// ErrUnknownState is returned when the power source cannot be
	// classified as either AC or battery.
	ErrUnknownState = errors.New("unknown power state")
)

// Reader provides the two telemetry capabilities the monitor consumes.
type Reader interface {
	// GetBatteryCharge returns the current charge as an integer
	// percentage in [0, 100].
	GetBatteryCharge() (int, error)

	// IsPluggedIn reports whether the machine runs on external power.
	IsPluggedIn() (bool, error)
}
