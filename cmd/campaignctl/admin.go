package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shiblymohammed/electionServices/pkg/client"
	"github.com/shiblymohammed/electionServices/pkg/order"
)

var (
	adminStatus     string
	adminAssignedTo int64
	adminSearch     string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Back-office order management (staff accounts only)",
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List all orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		orders, err := c.AdminOrders(cmd.Context(), client.AdminOrderFilter{
			Status:     order.Status(adminStatus),
			AssignedTo: adminAssignedTo,
			Search:     adminSearch,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNUMBER\tSTATUS\tTOTAL\tASSIGNED")
		for _, ord := range orders {
			assigned := "-"
			if ord.AssignedTo != nil {
				assigned = fmt.Sprint(*ord.AssignedTo)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				ord.ID, ord.OrderNumber, ord.Status, ord.TotalAmount, assigned)
		}
		return w.Flush()
	},
}

var adminAssignCmd = &cobra.Command{
	Use:   "assign <order-id> <staff-id>",
	Short: "Assign an order to a staff member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseID(args[0])
		if err != nil {
			return err
		}
		staffID, err := parseID(args[1])
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		ord, err := c.AssignOrder(cmd.Context(), orderID, staffID)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s assigned, status=%s\n", ord.OrderNumber, ord.Status)
		return nil
	},
}

var adminStaffCmd = &cobra.Command{
	Use:   "staff",
	Short: "List assignable staff members",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		staff, err := c.Staff(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPHONE\tACTIVE ORDERS")
		for _, member := range staff {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
				member.ID, member.Name, member.PhoneNumber, member.ActiveOrders)
		}
		return w.Flush()
	},
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show order statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		stats, err := c.OrderStatistics(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Total orders:       %d\n", stats.TotalOrders)
		fmt.Printf("Pending resources:  %d\n", stats.PendingResources)
		fmt.Printf("In progress:        %d\n", stats.InProgress)
		fmt.Printf("Completed:          %d\n", stats.Completed)
		return nil
	},
}

func init() {
	adminOrdersCmd.Flags().StringVar(&adminStatus, "status", "", "filter by order status")
	adminOrdersCmd.Flags().Int64Var(&adminAssignedTo, "assigned-to", 0, "filter by assigned staff id")
	adminOrdersCmd.Flags().StringVar(&adminSearch, "search", "", "search order number or customer")

	adminCmd.AddCommand(adminOrdersCmd)
	adminCmd.AddCommand(adminAssignCmd)
	adminCmd.AddCommand(adminStaffCmd)
	adminCmd.AddCommand(adminStatsCmd)
	rootCmd.AddCommand(adminCmd)
}
