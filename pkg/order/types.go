// Package order models the customer order surface exposed by the backend:
// orders, their items, and the pending-resource queue derived from them.
// All state transitions happen server-side; these types are read-only DTOs.
package order

import (
	"encoding/json"
	"time"
)

// Status mirrors the backend's order lifecycle tags.
type Status string

const (
	StatusPendingPayment     Status = "pending_payment"
	StatusPendingResources   Status = "pending_resources"
	StatusReadyForProcessing Status = "ready_for_processing"
	StatusAssigned           Status = "assigned"
	StatusInProgress         Status = "in_progress"
	StatusCompleted          Status = "completed"
)

// ItemType tags an order item as a package or a campaign purchase.
type ItemType string

const (
	ItemTypePackage  ItemType = "package"
	ItemTypeCampaign ItemType = "campaign"
)

// Item is one purchased line of an order. ItemDetails is opaque to this
// client; only the name is picked out for display.
type Item struct {
	ID                int64           `json:"id"`
	ItemType          ItemType        `json:"item_type"`
	ItemDetails       json.RawMessage `json:"item_details,omitempty"`
	Quantity          int             `json:"quantity"`
	Price             json.Number     `json:"price"`
	ResourcesUploaded bool            `json:"resources_uploaded"`
}

// DetailName extracts the display name from the opaque item details, falling
// back to "Item" when none is present.
func (i Item) DetailName() string {
	if len(i.ItemDetails) > 0 {
		var details struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(i.ItemDetails, &details); err == nil && details.Name != "" {
			return details.Name
		}
	}
	return "Item"
}

// Order is the customer-facing order DTO.
type Order struct {
	ID                 int64       `json:"id"`
	OrderNumber        string      `json:"order_number"`
	User               int64       `json:"user"`
	TotalAmount        json.Number `json:"total_amount"`
	Status             Status      `json:"status"`
	RazorpayOrderID    string      `json:"razorpay_order_id"`
	RazorpayPaymentID  string      `json:"razorpay_payment_id,omitempty"`
	PaymentCompletedAt *time.Time  `json:"payment_completed_at,omitempty"`
	AssignedTo         *int64      `json:"assigned_to,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	Items              []Item      `json:"items"`
}

// PendingItems returns the items still missing uploaded resources, in the
// order the backend listed them. The result is the pending-item queue for
// one sequencing session; it is derived once and never recomputed mid-flow.
func (o Order) PendingItems() []Item {
	var pending []Item
	for _, item := range o.Items {
		if !item.ResourcesUploaded {
			pending = append(pending, item)
		}
	}
	return pending
}

// AllResourcesUploaded reports whether every item has its resources.
func (o Order) AllResourcesUploaded() bool {
	for _, item := range o.Items {
		if !item.ResourcesUploaded {
			return false
		}
	}
	return true
}

// ResourceProgress returns upload completion as a percentage. An order with
// no items counts as fully uploaded.
func (o Order) ResourceProgress() int {
	if len(o.Items) == 0 {
		return 100
	}
	uploaded := 0
	for _, item := range o.Items {
		if item.ResourcesUploaded {
			uploaded++
		}
	}
	return uploaded * 100 / len(o.Items)
}
