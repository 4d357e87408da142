package main

import (
	"context"
	"fmt"
	"time"

	"github.com/burrowlabs/burrow/pkg/call"
	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Inspect the daemon host",
}

var monitorStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a snapshot of the daemon host",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		status, err := c.Monitoring().GetSystemStatus(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Host:     %s (burrow %s)\n", status.Hostname, status.Version)
		fmt.Printf("Uptime:   %s\n", time.Duration(status.UptimeSecs)*time.Second)
		fmt.Printf("CPU:      %.1f%%\n", status.CpuPercent)
		fmt.Printf("Memory:   %d / %d\n", status.MemoryUsed, status.MemoryTotal)
		fmt.Printf("Disk:     %d / %d\n", status.DiskUsed, status.DiskTotal)
		fmt.Printf("Jobs:     %d running, %d total\n", status.JobsRunning, status.JobsTotal)
		return nil
	},
}

var monitorWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream live host metrics until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, _ := cmd.Flags().GetDuration("interval")

		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := signalContext()
		defer cancel()

		handle, err := c.Monitoring().StreamSystemMetrics(ctx, interval)
		if err != nil {
			return err
		}

		for ev := range handle.Events() {
			switch ev.Kind {
			case call.EventData:
				s := ev.Data
				fmt.Printf("%s  cpu %.1f%%  mem %d  disk r/w %d/%d  net rx/tx %d/%d\n",
					s.Timestamp.Format(time.RFC3339), s.CpuPercent, s.MemoryUsed,
					s.DiskReadBps, s.DiskWriteBps, s.NetworkRxBps, s.NetworkTxBps)
			case call.EventError:
				return ev.Err
			}
		}
		return nil
	},
}

func init() {
	monitorCmd.AddCommand(monitorStatusCmd)
	monitorCmd.AddCommand(monitorWatchCmd)

	monitorWatchCmd.Flags().Duration("interval", 2*time.Second, "Sampling interval")
}
