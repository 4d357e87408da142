package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Manage volumes",
}

var volumeCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		driver, _ := cmd.Flags().GetString("driver")
		size, _ := cmd.Flags().GetUint64("size")
		labels, _ := cmd.Flags().GetStringToString("label")

		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		vol, err := c.Volume().Create(context.Background(), args[0], driver, size, labels)
		if err != nil {
			return err
		}
		fmt.Printf("Volume %s created (%s)\n", vol.Name, vol.Id)
		return nil
	},
}

var volumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List volumes",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		volumes, err := c.Volume().List(context.Background())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDRIVER\tSIZE\tCREATED")
		for _, v := range volumes {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				v.Id, v.Name, v.Driver, v.SizeBytes, v.CreatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var volumeRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Volume().Remove(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Volume %s removed\n", args[0])
		return nil
	},
}

func init() {
	volumeCmd.AddCommand(volumeCreateCmd)
	volumeCmd.AddCommand(volumeListCmd)
	volumeCmd.AddCommand(volumeRemoveCmd)

	volumeCreateCmd.Flags().String("driver", "", "Volume driver")
	volumeCreateCmd.Flags().Uint64("size", 0, "Size in bytes (0 for the daemon default)")
	volumeCreateCmd.Flags().StringToString("label", nil, "Labels (KEY=VALUE)")
}
