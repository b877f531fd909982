package resource

import "sort"

// FieldType is the closed set of resource input kinds the backend can
// declare. Rendering and validation dispatch exhaustively on this tag; the
// set is server-defined and never extended client-side.
type FieldType string

const (
	FieldTypeImage    FieldType = "image"
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDocument FieldType = "document"
	FieldTypePhone    FieldType = "phone"
	FieldTypeDate     FieldType = "date"
)

// Valid reports whether the tag is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeImage, FieldTypeText, FieldTypeNumber, FieldTypeDocument, FieldTypePhone, FieldTypeDate:
		return true
	default:
		return false
	}
}

// IsFile reports whether values for this type are binary file references
// rather than strings.
func (t FieldType) IsFile() bool {
	return t == FieldTypeImage || t == FieldTypeDocument
}

// FieldDefinition describes one resource input: its type, constraints, and
// requiredness. Definitions are supplied by the backend and immutable from
// the client's perspective. Constraint attributes are meaningful only for
// the types they apply to and stay zero elsewhere.
type FieldDefinition struct {
	ID       int64     `json:"id"`
	Name     string    `json:"field_name"`
	Type     FieldType `json:"field_type"`
	Required bool      `json:"is_required"`
	Order    int       `json:"order"`
	HelpText string    `json:"help_text,omitempty"`

	// image/document
	MaxFileSizeMB int `json:"max_file_size_mb,omitempty"`
	// text
	MaxLength int `json:"max_length,omitempty"`
	// number
	MinValue *float64 `json:"min_value,omitempty"`
	MaxValue *float64 `json:"max_value,omitempty"`
	// document; lowercase extensions without the leading dot
	AllowedExtensions []string `json:"allowed_extensions,omitempty"`

	// PartName overrides the derived "field_{id}" multipart key. It is never
	// set by the backend; the fixed fallback schema uses it to submit under
	// its legacy part names.
	PartName string `json:"-"`
}

// ItemFields couples one order item with the field definitions declared for
// it, matching the resource-field schema fetch payload.
type ItemFields struct {
	OrderItemID int64             `json:"order_item_id"`
	Fields      []FieldDefinition `json:"fields"`
}

// SortFields returns a copy of defs ordered by ascending Order. Definitions
// sharing an Order keep their relative position.
func SortFields(defs []FieldDefinition) []FieldDefinition {
	out := append([]FieldDefinition(nil), defs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
