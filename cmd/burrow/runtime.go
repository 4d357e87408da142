package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/burrowlabs/burrow/api/proto"
	"github.com/burrowlabs/burrow/pkg/call"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var runtimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "Manage runtimes",
}

var runtimeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed runtimes",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		runtimes, err := c.Runtime().List(context.Background())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tVERSION\tHEALTHY\tSOURCE\tINSTALLED")
		for _, r := range runtimes {
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\n",
				r.Name, r.Version, r.Healthy, r.Source, r.InstalledAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var runtimeInfoCmd = &cobra.Command{
	Use:   "info NAME",
	Short: "Show details about a runtime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		info, err := c.Runtime().GetInfo(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Name:        %s\n", info.Name)
		fmt.Printf("Version:     %s\n", info.Version)
		fmt.Printf("Description: %s\n", info.Description)
		fmt.Printf("Source:      %s\n", info.Source)
		fmt.Printf("Healthy:     %t\n", info.Healthy)
		fmt.Printf("Installed:   %s\n", info.InstalledAt.Format(time.RFC3339))
		return nil
	},
}

var runtimeTestCmd = &cobra.Command{
	Use:   "test NAME",
	Short: "Run a runtime's self-test",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		result, err := c.Runtime().Test(context.Background(), args[0])
		if err != nil {
			return err
		}
		if result.Output != "" {
			fmt.Println(result.Output)
		}
		if !result.Ok {
			return fmt.Errorf("runtime %s failed its self-test", args[0])
		}
		fmt.Printf("Runtime %s is healthy\n", args[0])
		return nil
	},
}

var runtimeInstallCmd = &cobra.Command{
	Use:   "install SOURCE",
	Short: "Install a runtime from owner/repo or a daemon-host path",
	Long: `Install a runtime. SOURCE is either a GitHub repository in
owner/repo form or, with --local, a path on the daemon host.

With --stream the install reports per-phase progress as it happens.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		local, _ := cmd.Flags().GetBool("local")
		ref, _ := cmd.Flags().GetString("ref")
		stream, _ := cmd.Flags().GetBool("stream")

		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := signalContext()
		defer cancel()

		if stream {
			var handle *call.Handle[proto.InstallEvent]
			if local {
				handle, err = c.Runtime().StreamingInstallFromLocal(ctx, args[0])
			} else {
				handle, err = c.Runtime().StreamingInstallFromGithub(ctx, args[0], ref)
			}
			if err != nil {
				return err
			}
			return printInstallEvents(handle)
		}

		var info *proto.RuntimeInfo
		if local {
			info, err = c.Runtime().InstallFromLocal(ctx, args[0])
		} else {
			info, err = c.Runtime().InstallFromGithub(ctx, args[0], ref)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Runtime %s %s installed\n", info.Name, info.Version)
		return nil
	},
}

// specFile is the on-disk YAML shape of a runtime spec.
type specFile struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Description  string            `yaml:"description"`
	BuildSteps   []string          `yaml:"build_steps"`
	Entrypoint   []string          `yaml:"entrypoint"`
	Env          map[string]string `yaml:"env"`
	Dependencies []string          `yaml:"dependencies"`
}

var runtimeValidateCmd = &cobra.Command{
	Use:   "validate SPEC_FILE",
	Short: "Validate a runtime spec without installing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read spec file: %v", err)
		}
		var f specFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("failed to parse spec file: %v", err)
		}
		spec := proto.RuntimeSpec{
			Name:         f.Name,
			Version:      f.Version,
			Description:  f.Description,
			BuildSteps:   f.BuildSteps,
			Entrypoint:   f.Entrypoint,
			Env:          f.Env,
			Dependencies: f.Dependencies,
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		result, err := c.Runtime().ValidateSpec(context.Background(), &spec)
		if err != nil {
			return err
		}
		if !result.Valid {
			for _, msg := range result.Errors {
				fmt.Fprintf(os.Stderr, "  - %s\n", msg)
			}
			return fmt.Errorf("spec %s is invalid", spec.Name)
		}
		fmt.Printf("Spec %s is valid\n", spec.Name)
		return nil
	},
}

var runtimeRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Uninstall a runtime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Runtime().Remove(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Runtime %s removed\n", args[0])
		return nil
	},
}

func printInstallEvents(handle *call.Handle[proto.InstallEvent]) error {
	for ev := range handle.Events() {
		switch ev.Kind {
		case call.EventData:
			e := ev.Data
			fmt.Printf("[%s] %3.0f%%  %s\n", e.Phase, e.Progress*100, e.Message)
			if e.Runtime != nil {
				fmt.Printf("Runtime %s %s installed\n", e.Runtime.Name, e.Runtime.Version)
			}
		case call.EventError:
			return ev.Err
		}
	}
	return nil
}

func init() {
	runtimeCmd.AddCommand(runtimeListCmd)
	runtimeCmd.AddCommand(runtimeInfoCmd)
	runtimeCmd.AddCommand(runtimeTestCmd)
	runtimeCmd.AddCommand(runtimeInstallCmd)
	runtimeCmd.AddCommand(runtimeValidateCmd)
	runtimeCmd.AddCommand(runtimeRemoveCmd)

	runtimeInstallCmd.Flags().Bool("local", false, "Install from a path on the daemon host")
	runtimeInstallCmd.Flags().String("ref", "", "Git tag, branch, or commit for GitHub installs")
	runtimeInstallCmd.Flags().Bool("stream", false, "Stream per-phase install progress")
}
