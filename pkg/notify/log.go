package notify

import "github.com/sirupsen/logrus"

// LogNotifier writes alerts to the log. It is the always-available
// fallback for headless environments.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

// Name implements Notifier.
func (LogNotifier) Name() string {
	return "log"
}

// Available implements Notifier.
func (LogNotifier) Available() bool {
	return true
}

// Notify implements Notifier.
func (LogNotifier) Notify(a Alert) error {
	logrus.WithFields(logrus.Fields{
		"title": a.Title,
	}).Warn(a.Message)

	return nil
}
