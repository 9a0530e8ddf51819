// Package monitor drives the read-decide-sleep cycle that watches the
// battery and raises one-shot alerts at the 20%/80% thresholds.
package monitor

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cannblw/battband/pkg/debounce"
	"github.com/cannblw/battband/pkg/events"
	"github.com/cannblw/battband/pkg/notify"
	"github.com/cannblw/battband/pkg/power"
	"github.com/cannblw/battband/pkg/schedule"
)

// Status is a point-in-time snapshot of the monitor, served by the
// status API.
type Status struct {
	Percent   int       `json:"percent"`
	Charging  bool      `json:"charging"`
	Armed     bool      `json:"armed"`
	LastCheck time.Time `json:"lastCheck"`
	NextCheck time.Time `json:"nextCheck"`
	LastError string    `json:"lastError,omitempty"`
}

// Options configures a Monitor. Zero values fall back to sane defaults.
type Options struct {
	// MaxInterval is the longest wait between checks, reached at 50%
	// charge. Defaults to schedule.DefaultMaxInterval.
	MaxInterval time.Duration

	// Out receives the human-readable status line printed each cycle.
	// Defaults to os.Stdout.
	Out io.Writer

	// Hub, when non-nil, receives cycle and alert events.
	Hub *events.Hub
}

// Monitor owns the debounce latch and runs the polling loop. All
// methods are safe for concurrent use with a running loop; only the
// status API ever calls in from another goroutine.
type Monitor struct {
	reader      power.Reader
	notifier    notify.Notifier
	deb         *debounce.Debouncer
	maxInterval time.Duration
	out         io.Writer
	hub         *events.Hub

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration)

	// cycleMu serializes cycles: a forced check from the status API
	// waits for the loop's in-flight cycle instead of racing it on the
	// debounce latch.
	cycleMu sync.Mutex

	mu     sync.RWMutex
	status Status
}

// New wires up a Monitor with an armed debounce latch.
func New(reader power.Reader, notifier notify.Notifier, opts Options) *Monitor {
	if opts.MaxInterval <= 0 {
		opts.MaxInterval = schedule.DefaultMaxInterval
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	return &Monitor{
		reader:      reader,
		notifier:    notifier,
		deb:         debounce.New(),
		maxInterval: opts.MaxInterval,
		out:         opts.Out,
		hub:         opts.Hub,
		sleep:       sleepCtx,
		status:      Status{Armed: true},
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// Run loops forever, checking the battery at the adaptive cadence. It
// returns only when ctx is cancelled. Telemetry failures never stop the
// loop: a failed battery read is retried after the full max interval.
func (m *Monitor) Run(ctx context.Context) {
	logrus.WithFields(logrus.Fields{
		"maxInterval": m.maxInterval,
		"notifier":    m.notifier.Name(),
	}).Info("battery monitor starting")

	for {
		delay, warn := m.RunCycle()
		if warn != nil {
			logrus.Warnf("alert could not be displayed: %v", warn)
		}

		m.sleep(ctx, delay)

		select {
		case <-ctx.Done():
			logrus.Info("battery monitor stopping")
			return
		default:
		}
	}
}

// RunCycle performs one read-decide cycle without sleeping and returns
// the delay to wait before the next one. A non-nil error is a
// recoverable warning: the cycle completed, but an alert that should
// have been shown could not be displayed. Concurrent calls run one at
// a time, so an excursion past a threshold still fires at most once.
func (m *Monitor) RunCycle() (time.Duration, error) {
	m.cycleMu.Lock()
	defer m.cycleMu.Unlock()

	percent, err := m.reader.GetBatteryCharge()
	if err != nil {
		return m.handleReadFailure(err), nil
	}

	charging, err := m.reader.IsPluggedIn()
	if err != nil {
		// Fail safe: assuming battery power only suppresses the high
		// alert and keeps the low alert live.
		logrus.Warnf("failed to read power source, assuming battery power: %v", err)
		charging = false
	}

	decision := m.deb.Decide(percent, charging)

	var warn error
	if decision != debounce.None {
		warn = m.dispatchAlert(decision, percent, charging)
	}

	delay := schedule.NextDelay(percent, m.maxInterval)
	if delay < time.Minute {
		// Outside the 20-80 band the parabola keeps falling below the
		// 60s it yields at the edges, eventually below zero. The edge
		// rate is the fastest useful cadence.
		delay = time.Minute
	}

	m.setStatus(Status{
		Percent:   percent,
		Charging:  charging,
		Armed:     m.deb.Armed(),
		LastCheck: time.Now(),
		NextCheck: time.Now().Add(delay),
	})
	m.hub.PublishCycleCompleted(percent, charging, m.deb.Armed(), int(delay/time.Second), nil)

	fmt.Fprintf(m.out, "Current battery level: %d%% (charging: %t). Checking again in %s.\n",
		percent, charging, delay)

	return delay, warn
}

// handleReadFailure reports a failed battery read, tries to surface it
// to the user, and schedules a full-interval retry. The debouncer and
// the adaptive scheduler are not consulted for this cycle.
func (m *Monitor) handleReadFailure(readErr error) time.Duration {
	logrus.Errorf("failed to read battery level, skipping check: %v", readErr)

	alert := notify.Alert{
		Title:   "battband",
		Message: "Could not read the battery level. Will retry later.",
	}
	if err := m.notifier.Notify(alert); err != nil {
		logrus.Warnf("failed to display read-failure alert: %v", err)
	}

	m.mu.Lock()
	m.status.LastError = readErr.Error()
	m.status.NextCheck = time.Now().Add(m.maxInterval)
	m.mu.Unlock()
	m.hub.PublishCycleCompleted(0, false, m.deb.Armed(), int(m.maxInterval/time.Second), readErr)

	return m.maxInterval
}

// dispatchAlert shows the dialog for a fired decision. The armed latch
// was already cleared by the decision; a display failure does not
// restore it, the alert counts as fired for debounce purposes.
func (m *Monitor) dispatchAlert(decision debounce.Decision, percent int, charging bool) error {
	var alert notify.Alert
	switch decision {
	case debounce.FireLow:
		alert = notify.Alert{
			Title:   "Battery Low",
			Message: fmt.Sprintf("Battery is at %d%%. Please charge it.", percent),
		}
	case debounce.FireHigh:
		alert = notify.Alert{
			Title:   "Battery High",
			Message: fmt.Sprintf("Battery is at %d%%. Consider unplugging.", percent),
		}
	default:
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"decision": decision.String(),
		"percent":  percent,
		"charging": charging,
	}).Info("battery threshold crossed, alerting")

	m.hub.PublishAlertFired(decision.String(), percent, charging, alert.Title)

	if err := m.notifier.Notify(alert); err != nil {
		return pkgerrors.Wrapf(err, "failed to display %s alert", decision)
	}

	return nil
}

// Status returns the latest snapshot.
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) setStatus(s Status) {
	m.mu.Lock()
	m.status = s
	m.mu.Unlock()
}
