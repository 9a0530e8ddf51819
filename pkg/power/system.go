package power

import (
	"math"

	"github.com/distatus/battery"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SystemReader reads telemetry through the platform's native power
// management API.
type SystemReader struct{}

var _ Reader = SystemReader{}

// NewSystemReader returns a Reader backed by the native power API.
func NewSystemReader() SystemReader {
	return SystemReader{}
}

func first() (*battery.Battery, error) {
	batteries, err := battery.GetAll()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read batteries")
	}

	if len(batteries) == 0 {
		return nil, ErrNoBattery
	}

	// Laptops have a single battery; ignore any extras.
	return batteries[0], nil
}

// GetBatteryCharge returns the current charge percentage.
func (SystemReader) GetBatteryCharge() (int, error) {
	bat, err := first()
	if err != nil {
		return 0, err
	}

	if bat.Full <= 0 {
		return 0, pkgerrors.Errorf("invalid full capacity %f", bat.Full)
	}

	percent := int(math.Round(bat.Current / bat.Full * 100))
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	logrus.WithFields(logrus.Fields{
		"percent": percent,
	}).Trace("read battery charge")

	return percent, nil
}

// IsPluggedIn reports whether the machine draws external power. A
// charging or full battery implies external power; a discharging or
// empty one implies battery power. Anything else is unclassifiable.
func (SystemReader) IsPluggedIn() (bool, error) {
	bat, err := first()
	if err != nil {
		return false, err
	}

	switch bat.State {
	case battery.Charging, battery.Full:
		return true, nil
	case battery.Discharging, battery.Empty:
		return false, nil
	}

	return false, pkgerrors.Wrapf(ErrUnknownState, "state %q", bat.State)
}
