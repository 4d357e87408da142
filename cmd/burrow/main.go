package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/burrowlabs/burrow/pkg/client"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	flagEnvironment string
	flagTimeout     time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "burrow",
	Short: "Burrow - Remote job execution client",
	Long: `Burrow is the command-line client for the Burrow job-execution
platform. It talks to a Burrow daemon over gRPC and covers jobs,
networks, volumes, host monitoring, and runtime management.

Endpoints are named environments in ~/.burrow/config.yaml.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Burrow version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().StringVarP(&flagEnvironment, "environment", "e", "default", "Named environment from the configuration file")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "Per-call deadline for unary calls (0 disables)")

	rootCmd.AddCommand(jobCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(runtimeCmd)
}

// newClient connects to the selected environment.
func newClient() (*client.Client, error) {
	c, err := client.New(flagEnvironment, client.WithCallTimeout(flagTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to environment %q: %v", flagEnvironment, err)
	}
	return c, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM, for
// commands that follow a stream until interrupted.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
