package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	electionservices "github.com/shiblymohammed/electionServices"
	"github.com/shiblymohammed/electionServices/pkg/form"
	"github.com/shiblymohammed/electionServices/pkg/renderers/tui"
	"github.com/shiblymohammed/electionServices/pkg/sequencer"
)

var uploadCollector string

// collectors holds the input frontends the upload command can drive.
var collectors = form.NewRegistry()

var uploadCmd = &cobra.Command{
	Use:   "upload <order-id>",
	Short: "Upload campaign resources for an order",
	Long: `Walks through the order's items that still need resources, one at a
time, prompting for each required field and uploading the item before
moving to the next. Items can be skipped and finished later by running
the command again; the last pending item cannot be skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}

		collector, err := collectors.Get(uploadCollector)
		if err != nil {
			return err
		}
		err = electionservices.UploadResources(cmd.Context(), c, orderID, collector,
			sequencer.WithLogger(logger))
		switch {
		case errors.Is(err, tui.ErrAborted):
			fmt.Println("Aborted; run the command again to continue where you left off.")
			return nil
		case errors.Is(err, sequencer.ErrSkipLast):
			fmt.Println("The last pending item cannot be skipped; its resources are required.")
			return nil
		case err != nil:
			return err
		}

		status, err := c.GetResourceStatus(cmd.Context(), orderID)
		if err == nil && status.AllResourcesUploaded {
			fmt.Println("All resources uploaded. Your order is ready for processing.")
		} else {
			fmt.Println("Done.")
		}
		return nil
	},
}

func init() {
	collectors.MustRegister(tui.New())

	uploadCmd.Flags().StringVar(&uploadCollector, "collector", "tui", "input frontend to use")
	rootCmd.AddCommand(uploadCmd)
}
