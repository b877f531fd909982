package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse packages and campaign services",
}

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List purchasable packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		packages, err := c.Packages(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tITEMS")
		for _, pkg := range packages {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", pkg.ID, pkg.Name, pkg.Price, len(pkg.Items))
		}
		return w.Flush()
	},
}

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "List per-unit campaign services",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		campaigns, err := c.Campaigns(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tUNIT")
		for _, camp := range campaigns {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", camp.ID, camp.Name, camp.Price, camp.Unit)
		}
		return w.Flush()
	},
}

func init() {
	catalogCmd.AddCommand(packagesCmd)
	catalogCmd.AddCommand(campaignsCmd)
	rootCmd.AddCommand(catalogCmd)
}
