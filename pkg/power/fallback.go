package power

import "github.com/sirupsen/logrus"

// FallbackReader tries a primary Reader and falls back to a secondary
// one per call. Primary failures are logged at debug level only; the
// caller sees an error when both readers fail.
type FallbackReader struct {
	primary   Reader
	secondary Reader
}

var _ Reader = &FallbackReader{}

// NewFallbackReader chains two readers.
func NewFallbackReader(primary, secondary Reader) *FallbackReader {
	return &FallbackReader{
		primary:   primary,
		secondary: secondary,
	}
}

// GetBatteryCharge returns the charge from the first reader able to
// provide it.
func (f *FallbackReader) GetBatteryCharge() (int, error) {
	percent, err := f.primary.GetBatteryCharge()
	if err == nil {
		return percent, nil
	}
	logrus.Debugf("primary battery reader failed, falling back: %v", err)

	return f.secondary.GetBatteryCharge()
}

// IsPluggedIn returns the power source from the first reader able to
// provide it.
func (f *FallbackReader) IsPluggedIn() (bool, error) {
	pluggedIn, err := f.primary.IsPluggedIn()
	if err == nil {
		return pluggedIn, nil
	}
	logrus.Debugf("primary power source reader failed, falling back: %v", err)

	return f.secondary.IsPluggedIn()
}
