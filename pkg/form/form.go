// Package form implements the per-item resource form: the values/errors
// lifecycle, submit-time validation, multipart packaging, and the collector
// contract UIs plug into. One Form plus one Session cover exactly one order
// item; nothing carries over between items.
package form

import (
	"github.com/shiblymohammed/electionServices/pkg/order"
	"github.com/shiblymohammed/electionServices/pkg/resource"
)

// Form couples one order item with the ordered field definitions the
// customer must complete for it.
type Form struct {
	OrderID int64
	Item    order.Item
	Fields  []resource.FieldDefinition

	// Static marks the fixed fallback schema, which submits under legacy
	// part names instead of field_{id} keys.
	Static bool

	// Last marks the final pending item of the flow. Renderers disable the
	// skip affordance when it is set.
	Last bool
}

// New builds a Form, ordering fields by their declared position.
func New(orderID int64, item order.Item, fields []resource.FieldDefinition) Form {
	return Form{
		OrderID: orderID,
		Item:    item,
		Fields:  resource.SortFields(fields),
	}
}

// Empty reports whether there is nothing to collect. An empty form renders
// no inputs and cannot be submitted.
func (f Form) Empty() bool {
	return len(f.Fields) == 0
}

// Field looks up a definition by id.
func (f Form) Field(id int64) (resource.FieldDefinition, bool) {
	for _, def := range f.Fields {
		if def.ID == id {
			return def, true
		}
	}
	return resource.FieldDefinition{}, false
}
