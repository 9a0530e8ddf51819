package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cannblw/battband/pkg/client"
	"github.com/cannblw/battband/pkg/monitor"
)

var bold = color.New(color.Bold).SprintFunc()

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func printStatus(cmd *cobra.Command, status *monitor.Status) {
	cmd.Println(bold("Battery:"))
	cmd.Printf("  Charge: %d%%\n", status.Percent)
	cmd.Println("  On external power: " + bool2Text(status.Charging))

	cmd.Println(bold("Monitor:"))
	cmd.Println("  Alert armed: " + bool2Text(status.Armed))
	if !status.LastCheck.IsZero() {
		cmd.Printf("  Last check: %s\n", status.LastCheck.Format(time.DateTime))
	}
	if !status.NextCheck.IsZero() {
		cmd.Printf("  Next check: %s (in %s)\n",
			status.NextCheck.Format(time.DateTime),
			time.Until(status.NextCheck).Round(time.Second))
	}
	if status.LastError != "" {
		cmd.Println("  Last error: " + color.New(color.FgRed).Sprint(status.LastError))
	}
}

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running monitor's status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			apiClient := client.NewClient(unixSocketPath)

			status, err := apiClient.GetStatus()
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			printStatus(cmd, status)
			return nil
		},
	}
}

func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run one battery check immediately",
		RunE: func(cmd *cobra.Command, _ []string) error {
			apiClient := client.NewClient(unixSocketPath)

			status, warning, err := apiClient.ForceCheck()
			if err != nil {
				return fmt.Errorf("failed to run a check: %w", err)
			}

			if warning != "" {
				cmd.PrintErrln("Warning: " + warning)
			}

			printStatus(cmd, status)
			return nil
		},
	}
}
