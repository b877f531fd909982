package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shiblymohammed/electionServices/pkg/client"
)

var (
	orderPackages  []string
	orderCampaigns []string
	orderNotes     string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Place and inspect orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		orders, err := c.MyOrders(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNUMBER\tSTATUS\tTOTAL\tITEMS")
		for _, ord := range orders {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
				ord.ID, ord.OrderNumber, ord.Status, ord.TotalAmount, len(ord.Items))
		}
		return w.Flush()
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show one order with its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		ord, err := c.GetOrder(cmd.Context(), orderID)
		if err != nil {
			return err
		}

		fmt.Printf("Order %s  status=%s  total=%s\n", ord.OrderNumber, ord.Status, ord.TotalAmount)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ITEM\tTYPE\tNAME\tQTY\tRESOURCES")
		for _, item := range ord.Items {
			uploaded := "pending"
			if item.ResourcesUploaded {
				uploaded = "uploaded"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
				item.ID, item.ItemType, item.DetailName(), item.Quantity, uploaded)
		}
		return w.Flush()
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <order-id>",
	Short: "Show an order's resource upload progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		status, err := c.GetResourceStatus(cmd.Context(), orderID)
		if err != nil {
			return err
		}

		fmt.Printf("Order %s  status=%s  progress=%d%%\n",
			status.OrderNumber, status.Status, status.ProgressPercentage)
		for _, item := range status.PendingItems {
			fmt.Printf("  pending: %s (x%d)\n", item.ItemName, item.Quantity)
		}
		if status.AllResourcesUploaded {
			fmt.Println("All resources uploaded.")
		}
		return nil
	},
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Place a new order",
	Long: `Places an order from package and campaign line items.

Each --package / --campaign value is an id, optionally with a quantity as
id:qty (quantity defaults to 1).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := client.CreateOrderRequest{Notes: orderNotes}
		for _, spec := range orderPackages {
			id, qty, err := parseItemSpec(spec)
			if err != nil {
				return err
			}
			req.Items = append(req.Items, client.CreateOrderItem{PackageID: id, Quantity: qty})
		}
		for _, spec := range orderCampaigns {
			id, qty, err := parseItemSpec(spec)
			if err != nil {
				return err
			}
			req.Items = append(req.Items, client.CreateOrderItem{CampaignID: id, Quantity: qty})
		}
		if len(req.Items) == 0 {
			return fmt.Errorf("at least one --package or --campaign is required")
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		ord, err := c.CreateOrder(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s created  total=%s  status=%s\n", ord.OrderNumber, ord.TotalAmount, ord.Status)
		return nil
	},
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid order id %q", raw)
	}
	return id, nil
}

func parseItemSpec(spec string) (int64, int, error) {
	idPart, qtyPart, hasQty := strings.Cut(spec, ":")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, 0, fmt.Errorf("invalid item %q, want id or id:qty", spec)
	}
	qty := 1
	if hasQty {
		qty, err = strconv.Atoi(qtyPart)
		if err != nil || qty <= 0 {
			return 0, 0, fmt.Errorf("invalid quantity in %q", spec)
		}
	}
	return id, qty, nil
}

func init() {
	ordersCreateCmd.Flags().StringArrayVar(&orderPackages, "package", nil, "package line item (id or id:qty), repeatable")
	ordersCreateCmd.Flags().StringArrayVar(&orderCampaigns, "campaign", nil, "campaign line item (id or id:qty), repeatable")
	ordersCreateCmd.Flags().StringVar(&orderNotes, "notes", "", "free-form order notes")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersShowCmd)
	ordersCmd.AddCommand(ordersStatusCmd)
	ordersCmd.AddCommand(ordersCreateCmd)
	rootCmd.AddCommand(ordersCmd)
}
