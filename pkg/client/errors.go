package client

import "errors"

var (
	// ErrDaemonNotRunning is returned when the monitor is not running
	ErrDaemonNotRunning = errors.New("monitor not running")

	// ErrPermissionDenied is returned when the user does not have permission to reach the monitor socket
	ErrPermissionDenied = errors.New("permission denied")
)
