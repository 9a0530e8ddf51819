package debounce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideFiresLowOnceThenLatches(t *testing.T) {
	d := New()
	require.True(t, d.Armed())

	assert.Equal(t, FireLow, d.Decide(20, false))
	assert.False(t, d.Armed())

	// Same reading again: latched, no repeat alert.
	assert.Equal(t, None, d.Decide(20, false))
	assert.False(t, d.Armed())
}

func TestDecideRearmsInsideSafeBand(t *testing.T) {
	d := New()
	require.Equal(t, FireLow, d.Decide(20, false))
	require.False(t, d.Armed())

	// 21 is strictly inside the band: re-arms, but does not fire since
	// it is above the low threshold.
	assert.Equal(t, None, d.Decide(21, false))
	assert.True(t, d.Armed())
}

func TestDecideFiresHighOnlyWhileCharging(t *testing.T) {
	d := New()

	assert.Equal(t, FireHigh, d.Decide(80, true))
	assert.False(t, d.Armed())

	d = New()
	// At 80% but discharging: the level is expected to fall, no alert.
	assert.Equal(t, None, d.Decide(80, false))
	assert.True(t, d.Armed())
}

func TestDecideSuppressesLowWhileCharging(t *testing.T) {
	d := New()

	// At the low threshold but charging: the level is expected to rise.
	assert.Equal(t, None, d.Decide(20, true))
	assert.True(t, d.Armed())
}

func TestDecideThresholdReadingsDoNotRearm(t *testing.T) {
	d := New()
	require.Equal(t, FireLow, d.Decide(20, false))

	// Exactly 20 is not strictly inside the band, so the latch stays
	// down even though no fire condition is met either.
	assert.Equal(t, None, d.Decide(20, true))
	assert.False(t, d.Armed())

	// Same gap at the high edge.
	d = NewWithThresholds(20, 80)
	require.Equal(t, FireHigh, d.Decide(80, true))
	assert.Equal(t, None, d.Decide(80, false))
	assert.False(t, d.Armed())
}

func TestDecideTable(t *testing.T) {
	tests := []struct {
		name      string
		armed     bool
		percent   int
		charging  bool
		want      Decision
		wantArmed bool
	}{
		{name: "armed low unplugged", armed: true, percent: 15, charging: false, want: FireLow, wantArmed: false},
		{name: "armed low charging", armed: true, percent: 15, charging: true, want: None, wantArmed: true},
		{name: "armed high charging", armed: true, percent: 90, charging: true, want: FireHigh, wantArmed: false},
		{name: "armed high unplugged", armed: true, percent: 90, charging: false, want: None, wantArmed: true},
		{name: "armed mid band", armed: true, percent: 50, charging: false, want: None, wantArmed: true},
		{name: "disarmed mid band rearms", armed: false, percent: 50, charging: false, want: None, wantArmed: true},
		{name: "disarmed at low edge stays down", armed: false, percent: 20, charging: true, want: None, wantArmed: false},
		{name: "disarmed at high edge stays down", armed: false, percent: 80, charging: false, want: None, wantArmed: false},
		{name: "disarmed just inside low edge rearms no fire", armed: false, percent: 21, charging: false, want: None, wantArmed: true},
		{name: "disarmed just inside high edge rearms no fire", armed: false, percent: 79, charging: true, want: None, wantArmed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			d.armed = tt.armed

			got := d.Decide(tt.percent, tt.charging)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantArmed, d.Armed())
		})
	}
}

func TestDecideExcursionSequenceFiresExactlyTwice(t *testing.T) {
	d := New()

	readings := []struct {
		percent  int
		charging bool
	}{
		{25, false},
		{20, false},
		{20, false},
		{25, false},
		{20, false},
	}

	fired := 0
	for _, r := range readings {
		if d.Decide(r.percent, r.charging) != None {
			fired++
		}
	}

	// One alert for the first excursion to 20%, one more after the
	// recovery to 25% re-armed the latch.
	assert.Equal(t, 2, fired)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "fire-low", FireLow.String())
	assert.Equal(t, "fire-high", FireHigh.String())
}
