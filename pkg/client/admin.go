package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shiblymohammed/electionServices/pkg/order"
)

// AdminOrderFilter narrows the admin order listing. Zero values mean no
// filter on that dimension.
type AdminOrderFilter struct {
	Status     order.Status
	AssignedTo int64
	Search     string
}

func (f AdminOrderFilter) query() string {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.AssignedTo != 0 {
		q.Set("assigned_to", fmt.Sprint(f.AssignedTo))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// AdminOrders lists all orders for back-office staff, optionally filtered.
func (c *Client) AdminOrders(ctx context.Context, filter AdminOrderFilter) ([]order.Order, error) {
	var res results[order.Order]
	if err := c.getJSON(ctx, "/admin/orders/"+filter.query(), &res); err != nil {
		return nil, err
	}
	return res.items, nil
}

// AdminOrder fetches one order with full detail for back-office staff.
func (c *Client) AdminOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	var ord order.Order
	if err := c.getJSON(ctx, fmt.Sprintf("/admin/orders/%d/", orderID), &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// AssignOrder hands an order to a staff member for fulfilment.
func (c *Client) AssignOrder(ctx context.Context, orderID, staffID int64) (*order.Order, error) {
	req := struct {
		StaffID int64 `json:"staff_id"`
	}{StaffID: staffID}
	var ord order.Order
	if err := c.postJSON(ctx, fmt.Sprintf("/admin/orders/%d/assign/", orderID), req, &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// StaffMember is a back-office account orders can be assigned to.
type StaffMember struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	ActiveOrders int    `json:"active_orders"`
	IsAvailable  bool   `json:"is_available"`
}

// Staff lists the assignable staff members.
func (c *Client) Staff(ctx context.Context) ([]StaffMember, error) {
	var res results[StaffMember]
	if err := c.getJSON(ctx, "/admin/staff/", &res); err != nil {
		return nil, err
	}
	return res.items, nil
}

// OrderStatistics is the admin dashboard summary.
type OrderStatistics struct {
	TotalOrders      int                  `json:"total_orders"`
	PendingResources int                  `json:"pending_resources"`
	InProgress       int                  `json:"in_progress"`
	Completed        int                  `json:"completed"`
	ByStatus         map[order.Status]int `json:"by_status"`
}

// OrderStatistics fetches the admin dashboard counters.
func (c *Client) OrderStatistics(ctx context.Context) (*OrderStatistics, error) {
	var stats OrderStatistics
	if err := c.getJSON(ctx, "/admin/orders/statistics/", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
