package notify

import (
	"os/exec"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// NotifySend delivers alerts through the freedesktop notify-send
// command. Unlike the macOS dialog it does not block on the user, but
// it is the closest analog available on Linux desktops.
type NotifySend struct{}

var _ Notifier = NotifySend{}

// Name implements Notifier.
func (NotifySend) Name() string {
	return "notify-send"
}

// Available implements Notifier.
func (NotifySend) Available() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	_, err := exec.LookPath("notify-send")
	return err == nil
}

// Notify implements Notifier.
func (NotifySend) Notify(a Alert) error {
	out, err := exec.Command("notify-send", "-u", "critical", a.Title, a.Message).CombinedOutput()
	if err != nil {
		return pkgerrors.Wrapf(err, "notify-send failed: %s", strings.TrimSpace(string(out)))
	}

	return nil
}
