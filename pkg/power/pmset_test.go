package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pmsetOnBattery = `Now drawing from 'Battery Power'
 -InternalBattery-0 (id=4456547)	57%; discharging; 3:02 remaining present: true
`

const pmsetOnAC = `Now drawing from 'AC Power'
 -InternalBattery-0 (id=4456547)	80%; charging; 0:44 remaining present: true
`

func TestParsePmsetCharge(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    int
		wantErr bool
	}{
		{name: "on battery", out: pmsetOnBattery, want: 57},
		{name: "on ac", out: pmsetOnAC, want: 80},
		{name: "charged", out: "Now drawing from 'AC Power'\n -InternalBattery-0 (id=1)\t100%; charged; 0:00 remaining present: true\n", want: 100},
		{name: "no battery line", out: "Now drawing from 'AC Power'\n", wantErr: true},
		{name: "garbage", out: "command not found", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePmsetCharge(tt.out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePmsetPowerSource(t *testing.T) {
	pluggedIn, err := parsePmsetPowerSource(pmsetOnAC)
	require.NoError(t, err)
	assert.True(t, pluggedIn)

	pluggedIn, err = parsePmsetPowerSource(pmsetOnBattery)
	require.NoError(t, err)
	assert.False(t, pluggedIn)

	_, err = parsePmsetPowerSource("Now drawing from 'Solar Power'\n")
	require.ErrorIs(t, err, ErrUnknownState)
}
