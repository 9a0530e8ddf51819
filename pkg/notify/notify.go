// Package notify presents one-shot acknowledgement dialogs to the
// interactive user.
package notify

import "errors"

// ErrNoNotifier is returned by Detect when no display mechanism is
// usable in the current environment.
var ErrNoNotifier = errors.New("no usable notifier found")

// Alert is a single user-facing message.
type Alert struct {
	Title   string
	Message string
}

// Notifier delivers alerts to the user.
type Notifier interface {
	// Notify shows the alert. It blocks until the user acknowledges it,
	// and returns an error if the display mechanism itself fails.
	Notify(a Alert) error

	// Name identifies the delivery mechanism.
	Name() string

	// Available reports whether this notifier can be used right now.
	Available() bool
}

// Detect returns the first available notifier, preferring native
// dialogs and falling back to log output so alert dispatch never has
// a nil sink.
func Detect() Notifier {
	candidates := []Notifier{
		Osascript{},
		NotifySend{},
	}

	for _, n := range candidates {
		if n.Available() {
			return n
		}
	}

	return LogNotifier{}
}
