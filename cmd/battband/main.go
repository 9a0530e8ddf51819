package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cannblw/battband/pkg/client"
	"github.com/cannblw/battband/pkg/daemon"
	"github.com/cannblw/battband/pkg/schedule"
)

var (
	logLevel       = "info"
	unixSocketPath = "/tmp/battband.sock"
	maxInterval    = schedule.DefaultMaxInterval
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrDaemonNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: battband is not running")
		fmt.Fprintln(os.Stderr, "Start it first by running 'battband' in another terminal.")
	} else if errors.Is(err, client.ErrPermissionDenied) {
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "Check the ownership of the monitor socket.")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battband",
		Short: "battband warns you when your battery leaves the 20%-80% band",
		Long: `battband polls the battery at an adaptive cadence and shows a single
dialog when the charge drops to 20% while unplugged, or climbs to 80%
while charging. Each threshold alerts once per excursion; the alert
re-arms when the charge returns inside the band.

Run battband with no arguments to start monitoring in the foreground.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println("== battband 20%-80% monitor running ==")
			return daemon.Run(unixSocketPath, maxInterval)
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&unixSocketPath, "daemon-socket", unixSocketPath, "monitor unix socket path (empty disables the status api)")

	f := cmd.Flags()
	f.DurationVar(&maxInterval, "max-interval", maxInterval, "longest wait between battery checks, reached at 50% charge")

	cmd.AddCommand(
		NewStatusCommand(),
		NewCheckCommand(),
		NewVersionCommand(),
	)

	return cmd
}
