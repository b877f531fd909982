package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/shiblymohammed/electionServices/pkg/form"
	"github.com/shiblymohammed/electionServices/pkg/order"
	"github.com/shiblymohammed/electionServices/pkg/resource"
)

// CreateOrderItem is one line of a new order: exactly one of PackageID or
// CampaignID set, with the desired quantity.
type CreateOrderItem struct {
	PackageID  int64 `json:"package_id,omitempty"`
	CampaignID int64 `json:"campaign_id,omitempty"`
	Quantity   int   `json:"quantity"`
}

// CreateOrderRequest is the payload for CreateOrder.
type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items"`
	Notes string            `json:"notes,omitempty"`
}

// CreateOrder places a new order and returns it in pending-payment state.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*order.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("client: create order: at least one item is required")
	}
	var ord order.Order
	if err := c.postJSON(ctx, "/orders/create/", req, &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// GetOrder fetches one order with its items.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	var ord order.Order
	if err := c.getJSON(ctx, fmt.Sprintf("/orders/%d/", orderID), &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// MyOrders lists the authenticated user's orders, newest first.
func (c *Client) MyOrders(ctx context.Context) ([]order.Order, error) {
	var res results[order.Order]
	if err := c.getJSON(ctx, "/orders/my-orders/", &res); err != nil {
		return nil, err
	}
	return res.items, nil
}

// VerifyPayment confirms a completed payment and moves the order to the
// resource-upload stage.
func (c *Client) VerifyPayment(ctx context.Context, orderID int64, paymentID string) (*order.Order, error) {
	req := struct {
		PaymentID string `json:"payment_id"`
	}{PaymentID: paymentID}
	var ord order.Order
	if err := c.postJSON(ctx, fmt.Sprintf("/orders/%d/payment-success/", orderID), req, &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// ResourceFields fetches the per-item field definitions declared for an
// order. A 404 or an empty body means no definitions exist; the caller
// falls back to the fixed schema.
func (c *Client) ResourceFields(ctx context.Context, orderID int64) ([]resource.ItemFields, error) {
	var sets []resource.ItemFields
	err := c.getJSON(ctx, fmt.Sprintf("/orders/%d/resources/", orderID), &sets)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return sets, nil
}

// ResourceStatus summarises an order's upload progress.
type ResourceStatus struct {
	OrderID              int64              `json:"order_id"`
	OrderNumber          string             `json:"order_number"`
	Status               order.Status       `json:"status"`
	TotalItems           int                `json:"total_items"`
	ProgressPercentage   int                `json:"progress_percentage"`
	AllResourcesUploaded bool               `json:"all_resources_uploaded"`
	PendingItems         []form.PendingItem `json:"pending_items"`
	UploadedItems        []form.PendingItem `json:"uploaded_items"`
}

// GetResourceStatus fetches the upload-progress summary for an order.
func (c *Client) GetResourceStatus(ctx context.Context, orderID int64) (*ResourceStatus, error) {
	var status ResourceStatus
	if err := c.getJSON(ctx, fmt.Sprintf("/orders/%d/resource-status/", orderID), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// UploadResources posts one item's collected resources as multipart form
// data. It satisfies form.Transport.
func (c *Client) UploadResources(ctx context.Context, orderID, orderItemID int64, payload form.Payload) (form.UploadResult, error) {
	var result form.UploadResult
	path := fmt.Sprintf("/orders/%d/upload-resources/", orderID)
	if err := c.do(ctx, http.MethodPost, path, bytes.NewReader(payload.Body), payload.ContentType, &result); err != nil {
		return form.UploadResult{}, err
	}
	c.log.Info("resources uploaded",
		zap.Int64("order_id", orderID),
		zap.Int64("order_item_id", orderItemID))
	return result, nil
}
