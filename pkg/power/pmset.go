package power

import (
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// battLineRe matches the charge/state part of a pmset battery line,
// e.g. "-InternalBattery-0 (id=1234)  57%; discharging; 3:02 remaining".
var battLineRe = regexp.MustCompile(`(\d+)%;\s*([\w ]+?);`)

// PmsetReader is a last-resort macOS fallback that scrapes the output
// of "pmset -g batt". The native reader should always be preferred.
type PmsetReader struct{}

var _ Reader = PmsetReader{}

// NewPmsetReader returns a Reader backed by the pmset command.
func NewPmsetReader() PmsetReader {
	return PmsetReader{}
}

// Available reports whether pmset can be used on this host.
func (PmsetReader) Available() bool {
	if runtime.GOOS != "darwin" {
		return false
	}
	_, err := exec.LookPath("pmset")
	return err == nil
}

func pmsetOutput() (string, error) {
	out, err := exec.Command("pmset", "-g", "batt").Output()
	if err != nil {
		return "", pkgerrors.Wrap(err, "pmset failed")
	}
	return string(out), nil
}

// parsePmsetCharge extracts the charge percentage from pmset output.
func parsePmsetCharge(out string) (int, error) {
	m := battLineRe.FindStringSubmatch(out)
	if m == nil {
		return 0, pkgerrors.Errorf("no battery line in pmset output %q", strings.TrimSpace(out))
	}

	percent, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to parse charge percentage")
	}
	if percent < 0 || percent > 100 {
		return 0, pkgerrors.Errorf("charge percentage %d out of range", percent)
	}

	return percent, nil
}

// parsePmsetPowerSource maps the pmset power source line to a plugged-in
// flag. pmset reports either 'AC Power' or 'Battery Power'.
func parsePmsetPowerSource(out string) (bool, error) {
	switch {
	case strings.Contains(out, "'AC Power'"):
		return true, nil
	case strings.Contains(out, "'Battery Power'"):
		return false, nil
	}

	return false, pkgerrors.Wrapf(ErrUnknownState, "pmset output %q", strings.TrimSpace(out))
}

// GetBatteryCharge returns the charge percentage scraped from pmset.
func (PmsetReader) GetBatteryCharge() (int, error) {
	out, err := pmsetOutput()
	if err != nil {
		return 0, err
	}

	percent, err := parsePmsetCharge(out)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"percent": percent,
	}).Trace("read battery charge via pmset")

	return percent, nil
}

// IsPluggedIn reports the power source scraped from pmset.
func (PmsetReader) IsPluggedIn() (bool, error) {
	out, err := pmsetOutput()
	if err != nil {
		return false, err
	}

	return parsePmsetPowerSource(out)
}
