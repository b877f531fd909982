package order_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shiblymohammed/electionServices/pkg/order"
)

func TestPendingItems(t *testing.T) {
	o := order.Order{
		Items: []order.Item{
			{ID: 1, ResourcesUploaded: true},
			{ID: 2},
			{ID: 3},
		},
	}

	var ids []int64
	for _, item := range o.PendingItems() {
		ids = append(ids, item.ID)
	}
	if diff := cmp.Diff([]int64{2, 3}, ids); diff != "" {
		t.Fatalf("pending ids mismatch (-want +got):\n%s", diff)
	}
	if o.AllResourcesUploaded() {
		t.Fatal("order with pending items must not report all uploaded")
	}
	if got := o.ResourceProgress(); got != 33 {
		t.Fatalf("progress = %d, want 33", got)
	}
}

func TestResourceProgress_EmptyOrder(t *testing.T) {
	var o order.Order
	if got := o.ResourceProgress(); got != 100 {
		t.Fatalf("empty order progress = %d, want 100", got)
	}
	if !o.AllResourcesUploaded() {
		t.Fatal("empty order counts as fully uploaded")
	}
}

func TestItemDetailName(t *testing.T) {
	item := order.Item{ItemDetails: json.RawMessage(`{"name":"Street Campaign","price":"4500.00"}`)}
	if got := item.DetailName(); got != "Street Campaign" {
		t.Fatalf("DetailName() = %q", got)
	}

	if got := (order.Item{}).DetailName(); got != "Item" {
		t.Fatalf("fallback name = %q", got)
	}
}

func TestOrderDecode(t *testing.T) {
	payload := `{
		"id": 12,
		"order_number": "EC-20260212-AB12CD34",
		"user": 4,
		"total_amount": "12500.00",
		"status": "pending_resources",
		"razorpay_order_id": "order_Nxy123",
		"created_at": "2026-02-12T09:30:00.123456Z",
		"updated_at": "2026-02-12T09:31:00.123456Z",
		"items": [
			{"id": 31, "item_type": "package", "quantity": 1, "price": "12500.00", "resources_uploaded": false}
		]
	}`

	var o order.Order
	if err := json.Unmarshal([]byte(payload), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if o.Status != order.StatusPendingResources {
		t.Fatalf("status = %q", o.Status)
	}
	if len(o.Items) != 1 || o.Items[0].ItemType != order.ItemTypePackage {
		t.Fatalf("items decoded incorrectly: %+v", o.Items)
	}
}
