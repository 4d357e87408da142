package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage networks",
}

var networkCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		driver, _ := cmd.Flags().GetString("driver")
		subnet, _ := cmd.Flags().GetString("subnet")

		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		nw, err := c.Network().Create(context.Background(), args[0], driver, subnet)
		if err != nil {
			return err
		}
		fmt.Printf("Network %s created (%s)\n", nw.Name, nw.Id)
		return nil
	},
}

var networkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		networks, err := c.Network().List(context.Background())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDRIVER\tSUBNET\tCREATED")
		for _, n := range networks {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				n.Id, n.Name, n.Driver, n.Subnet, n.CreatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var networkRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Network().Remove(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Network %s removed\n", args[0])
		return nil
	},
}

func init() {
	networkCmd.AddCommand(networkCreateCmd)
	networkCmd.AddCommand(networkListCmd)
	networkCmd.AddCommand(networkRemoveCmd)

	networkCreateCmd.Flags().String("driver", "", "Network driver")
	networkCreateCmd.Flags().String("subnet", "", "Subnet in CIDR form")
}
