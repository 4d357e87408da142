package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/burrowlabs/burrow/api/proto"
	"github.com/burrowlabs/burrow/pkg/call"
	"github.com/burrowlabs/burrow/pkg/client"
	"github.com/spf13/cobra"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage jobs",
}

var jobRunCmd = &cobra.Command{
	Use:   "run COMMAND [ARGS...]",
	Short: "Run a command as a job",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runtime, _ := cmd.Flags().GetString("runtime")
		workDir, _ := cmd.Flags().GetString("workdir")
		network, _ := cmd.Flags().GetString("network")
		volumes, _ := cmd.Flags().GetStringSlice("volume")
		envPairs, _ := cmd.Flags().GetStringToString("env")
		follow, _ := cmd.Flags().GetBool("follow")

		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := signalContext()
		defer cancel()

		job, err := c.Job().Run(ctx, &proto.RunJobRequest{
			Command:    args[0],
			Args:       args[1:],
			Env:        envPairs,
			WorkingDir: workDir,
			Runtime:    runtime,
			Network:    network,
			Volumes:    volumes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Job %s submitted (%s)\n", job.Id, job.Status)

		if follow {
			return followLogs(ctx, c, job.Id)
		}
		return nil
	},
}

var jobStatusCmd = &cobra.Command{
	Use:   "status JOB_ID",
	Short: "Show the status of a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		job, err := c.Job().GetStatus(context.Background(), args[0])
		if err != nil {
			return err
		}
		printJob(job)
		return nil
	},
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		jobs, err := c.Job().List(context.Background())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOMMAND\tSTATUS\tEXIT\tCREATED")
		for _, j := range jobs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				j.Id, j.Command, j.Status, j.ExitCode, j.CreatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var jobStopCmd = &cobra.Command{
	Use:   "stop JOB_ID",
	Short: "Stop a running job gracefully",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		job, err := c.Job().Stop(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Job %s is %s\n", job.Id, job.Status)
		return nil
	},
}

var jobCancelCmd = &cobra.Command{
	Use:   "cancel JOB_ID",
	Short: "Cancel a job immediately",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		job, err := c.Job().Cancel(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Job %s is %s\n", job.Id, job.Status)
		return nil
	},
}

var jobDeleteCmd = &cobra.Command{
	Use:   "delete [JOB_ID]",
	Short: "Delete a finished job, or all finished jobs with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		if all {
			deleted, err := c.Job().DeleteAll(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d jobs\n", deleted)
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("requires a JOB_ID or --all")
		}
		if err := c.Job().Delete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Job %s deleted\n", args[0])
		return nil
	},
}

var jobLogsCmd = &cobra.Command{
	Use:   "logs JOB_ID",
	Short: "Print a job's output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := signalContext()
		defer cancel()
		return followLogs(ctx, c, args[0])
	},
}

var jobTelemetryCmd = &cobra.Command{
	Use:   "telemetry JOB_ID",
	Short: "Show resource usage of a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		live, _ := cmd.Flags().GetBool("live")
		interval, _ := cmd.Flags().GetDuration("interval")

		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := signalContext()
		defer cancel()

		var handle *call.Handle[proto.TelemetrySample]
		if live {
			handle, err = c.Job().StreamTelemetry(ctx, args[0], interval)
		} else {
			handle, err = c.Job().GetTelemetry(ctx, args[0])
		}
		if err != nil {
			return err
		}

		for ev := range handle.Events() {
			switch ev.Kind {
			case call.EventData:
				s := ev.Data
				fmt.Printf("%s  cpu %.1f%%  mem %d  disk %d\n",
					s.Timestamp.Format(time.RFC3339), s.CpuPercent, s.MemoryBytes, s.DiskBytes)
			case call.EventError:
				return ev.Err
			}
		}
		return nil
	},
}

func followLogs(ctx context.Context, c *client.Client, jobID string) error {
	handle, err := c.Job().GetLogs(ctx, jobID, true)
	if err != nil {
		return err
	}
	for ev := range handle.Events() {
		switch ev.Kind {
		case call.EventData:
			out := os.Stdout
			if ev.Data.Stream == "stderr" {
				out = os.Stderr
			}
			fmt.Fprintln(out, ev.Data.Line)
		case call.EventError:
			return ev.Err
		}
	}
	return nil
}

func printJob(j *proto.Job) {
	fmt.Printf("ID:       %s\n", j.Id)
	fmt.Printf("Command:  %s\n", j.Command)
	fmt.Printf("Status:   %s\n", j.Status)
	fmt.Printf("Exit:     %d\n", j.ExitCode)
	fmt.Printf("Created:  %s\n", j.CreatedAt.Format(time.RFC3339))
	if j.StartedAt != nil {
		fmt.Printf("Started:  %s\n", j.StartedAt.Format(time.RFC3339))
	}
	if j.FinishedAt != nil {
		fmt.Printf("Finished: %s\n", j.FinishedAt.Format(time.RFC3339))
	}
}

func init() {
	jobCmd.AddCommand(jobRunCmd)
	jobCmd.AddCommand(jobStatusCmd)
	jobCmd.AddCommand(jobListCmd)
	jobCmd.AddCommand(jobStopCmd)
	jobCmd.AddCommand(jobCancelCmd)
	jobCmd.AddCommand(jobDeleteCmd)
	jobCmd.AddCommand(jobLogsCmd)
	jobCmd.AddCommand(jobTelemetryCmd)

	jobRunCmd.Flags().String("runtime", "", "Runtime to execute the job with")
	jobRunCmd.Flags().String("workdir", "", "Working directory on the daemon host")
	jobRunCmd.Flags().String("network", "", "Network to attach the job to")
	jobRunCmd.Flags().StringSlice("volume", nil, "Volumes to mount (repeatable)")
	jobRunCmd.Flags().StringToString("env", nil, "Environment variables (KEY=VALUE)")
	jobRunCmd.Flags().BoolP("follow", "f", false, "Follow the job's logs after submission")

	jobDeleteCmd.Flags().Bool("all", false, "Delete all finished jobs")

	jobTelemetryCmd.Flags().Bool("live", false, "Stream live samples instead of recorded history")
	jobTelemetryCmd.Flags().Duration("interval", time.Second, "Sampling interval for --live")
}
