package form

import (
	"github.com/shiblymohammed/electionServices/pkg/order"
	"github.com/shiblymohammed/electionServices/pkg/resource"
)

// FieldSource supplies the field definitions for an order item. Two
// interchangeable implementations exist: the server-declared dynamic schema
// and the built-in fixed fallback. The choice is made once at flow start and
// never revisited mid-session.
type FieldSource interface {
	// FieldsFor returns the definitions for one item, already ordered.
	FieldsFor(item order.Item) []resource.FieldDefinition
	// Static reports whether forms built from this source submit under the
	// fixed legacy part names.
	Static() bool
}

type dynamicSource map[int64][]resource.FieldDefinition

// DynamicSource indexes server-supplied field sets by order-item id.
func DynamicSource(sets []resource.ItemFields) FieldSource {
	src := make(dynamicSource, len(sets))
	for _, set := range sets {
		src[set.OrderItemID] = resource.SortFields(set.Fields)
	}
	return src
}

func (s dynamicSource) FieldsFor(item order.Item) []resource.FieldDefinition {
	return s[item.ID]
}

func (s dynamicSource) Static() bool { return false }

type staticSource struct{}

// StaticSource returns the fixed fallback schema used when the backend
// declares no dynamic fields for an order.
func StaticSource() FieldSource { return staticSource{} }

func (staticSource) FieldsFor(order.Item) []resource.FieldDefinition {
	return StaticFields()
}

func (staticSource) Static() bool { return true }

// SelectSource picks the dynamic schema when the backend returned one and
// falls back to the fixed form otherwise.
func SelectSource(sets []resource.ItemFields) FieldSource {
	for _, set := range sets {
		if len(set.Fields) > 0 {
			return DynamicSource(sets)
		}
	}
	return StaticSource()
}

// StaticFields is the fixed fallback schema. Ids are synthetic negatives so
// they can never collide with server-issued definition ids; PartName pins
// the multipart keys the legacy endpoint expects.
func StaticFields() []resource.FieldDefinition {
	return []resource.FieldDefinition{
		{
			ID:            -1,
			Name:          "Candidate Photo",
			Type:          resource.FieldTypeImage,
			Required:      true,
			Order:         1,
			HelpText:      "Upload candidate photo (max 5MB, formats: jpg, jpeg, png, gif)",
			MaxFileSizeMB: 5,
			PartName:      "candidate_photo",
		},
		{
			ID:            -2,
			Name:          "Party Logo",
			Type:          resource.FieldTypeImage,
			Required:      true,
			Order:         2,
			HelpText:      "Upload party logo (max 5MB, formats: jpg, jpeg, png, gif)",
			MaxFileSizeMB: 5,
			PartName:      "party_logo",
		},
		{
			ID:       -3,
			Name:     "Campaign Slogan",
			Type:     resource.FieldTypeText,
			Required: true,
			Order:    3,
			HelpText: "Enter campaign slogan",
			PartName: "campaign_slogan",
		},
		{
			ID:       -4,
			Name:     "Preferred Date",
			Type:     resource.FieldTypeDate,
			Required: true,
			Order:    4,
			HelpText: "Preferred date for campaign",
			PartName: "preferred_date",
		},
		{
			ID:       -5,
			Name:     "WhatsApp Number",
			Type:     resource.FieldTypePhone,
			Required: true,
			Order:    5,
			HelpText: "WhatsApp contact number",
			PartName: "whatsapp_number",
		},
		{
			ID:       -6,
			Name:     "Additional Notes",
			Type:     resource.FieldTypeText,
			Order:    6,
			HelpText: "Any additional notes or requirements",
			PartName: "additional_notes",
		},
	}
}
