package power

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	percent    int
	percentErr error
	pluggedIn  bool
	pluggedErr error
	calls      int
}

func (s *stubReader) GetBatteryCharge() (int, error) {
	s.calls++
	return s.percent, s.percentErr
}

func (s *stubReader) IsPluggedIn() (bool, error) {
	s.calls++
	return s.pluggedIn, s.pluggedErr
}

func TestFallbackReaderPrefersPrimary(t *testing.T) {
	primary := &stubReader{percent: 42, pluggedIn: true}
	secondary := &stubReader{percent: 99}

	f := NewFallbackReader(primary, secondary)

	percent, err := f.GetBatteryCharge()
	require.NoError(t, err)
	assert.Equal(t, 42, percent)
	assert.Zero(t, secondary.calls)
}

func TestFallbackReaderFallsBackPerCall(t *testing.T) {
	readErr := errors.New("ioreg unavailable")
	primary := &stubReader{percentErr: readErr, pluggedErr: readErr}
	secondary := &stubReader{percent: 63, pluggedIn: true}

	f := NewFallbackReader(primary, secondary)

	percent, err := f.GetBatteryCharge()
	require.NoError(t, err)
	assert.Equal(t, 63, percent)

	pluggedIn, err := f.IsPluggedIn()
	require.NoError(t, err)
	assert.True(t, pluggedIn)
}

func TestFallbackReaderSurfacesSecondaryError(t *testing.T) {
	primary := &stubReader{percentErr: errors.New("primary down")}
	secondary := &stubReader{percentErr: ErrNoBattery}

	f := NewFallbackReader(primary, secondary)

	_, err := f.GetBatteryCharge()
	require.ErrorIs(t, err, ErrNoBattery)
}
