package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Osascript shows a modal dialog with a single OK button through the
// macOS osascript command.
type Osascript struct{}

var _ Notifier = Osascript{}

// Name implements Notifier.
func (Osascript) Name() string {
	return "osascript"
}

// Available implements Notifier.
func (Osascript) Available() bool {
	if runtime.GOOS != "darwin" {
		return false
	}
	_, err := exec.LookPath("osascript")
	return err == nil
}

// escapeAppleScript escapes a string for embedding in a double-quoted
// AppleScript literal.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// Notify implements Notifier. It blocks until the dialog is dismissed.
func (Osascript) Notify(a Alert) error {
	script := fmt.Sprintf(
		`display dialog "%s" with title "%s" buttons {"OK"} default button "OK"`,
		escapeAppleScript(a.Message),
		escapeAppleScript(a.Title),
	)

	out, err := exec.Command("osascript", "-e", script).CombinedOutput()
	if err != nil {
		return pkgerrors.Wrapf(err, "osascript failed: %s", strings.TrimSpace(string(out)))
	}

	return nil
}
