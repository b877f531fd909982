// Package electionservices bundles the campaign storefront client and the
// resource submission flow behind a small entry surface. Most callers only
// need NewClient plus UploadResources; the pkg tree carries the individual
// building blocks.
package electionservices

import (
	"context"

	"github.com/shiblymohammed/electionServices/pkg/client"
	"github.com/shiblymohammed/electionServices/pkg/form"
	"github.com/shiblymohammed/electionServices/pkg/order"
	"github.com/shiblymohammed/electionServices/pkg/resource"
	"github.com/shiblymohammed/electionServices/pkg/sequencer"
)

// Re-exported domain types, so simple integrations only import this package.
type (
	// Order is a placed order with its items.
	Order = order.Order
	// FieldDefinition describes one resource input.
	FieldDefinition = resource.FieldDefinition
	// Collector gathers one item's values; see pkg/renderers/tui for the
	// terminal implementation.
	Collector = form.Collector
	// UploadResult is the backend's answer to one submission.
	UploadResult = form.UploadResult
)

// NewClient constructs the API client. See pkg/client for options.
func NewClient(baseURL string, options ...client.Option) (*client.Client, error) {
	return client.New(baseURL, options...)
}

// UploadResources runs the whole resource flow for an order: it loads the
// pending items, presents each through the collector, and submits them in
// sequence. The client doubles as loader and transport.
func UploadResources(ctx context.Context, c *client.Client, orderID int64, collector form.Collector, options ...sequencer.Option) error {
	seq := sequencer.New(orderID, c, options...)
	return seq.Run(ctx, c, collector)
}
