// Package openapi derives resource field definitions from an OpenAPI
// document's component schemas. It backs the offline preview flow: staff
// can check what a resource form will look like for a draft schema before
// any field definitions exist server-side.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/shiblymohammed/electionServices/pkg/resource"
)

// Schema extensions understood by the preview mapper.
const (
	extFieldType     = "x-field-type"
	extOrder         = "x-order"
	extMaxFileSizeMB = "x-max-file-size-mb"
	extAllowedExts   = "x-allowed-extensions"
)

// Preview loads OpenAPI documents and maps their component schemas onto
// field definitions.
type Preview struct {
	resolveRefs bool
}

// Option configures a Preview.
type Option func(*Preview)

// WithExternalRefs allows the loader to follow external $ref targets.
// Disabled by default so previews stay offline.
func WithExternalRefs(allow bool) Option {
	return func(p *Preview) {
		p.resolveRefs = allow
	}
}

// New builds a Preview.
func New(options ...Option) *Preview {
	p := &Preview{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Document is a loaded OpenAPI spec ready for schema lookups.
type Document struct {
	spec *openapi3.T
}

// Load parses raw JSON or YAML OpenAPI content.
func (p *Preview) Load(ctx context.Context, raw []byte) (*Document, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.resolveRefs,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return &Document{spec: spec}, nil
}

// SchemaNames lists the component schemas available for preview, sorted.
func (d *Document) SchemaNames() []string {
	if d.spec == nil || d.spec.Components == nil {
		return nil
	}
	names := make([]string, 0, len(d.spec.Components.Schemas))
	for name := range d.spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fields maps one component schema's properties onto field definitions.
// Properties order by their x-order extension when present, otherwise by
// name; ids are synthetic and only meaningful within the preview.
func (d *Document) Fields(schemaName string) ([]resource.FieldDefinition, error) {
	if d.spec == nil || d.spec.Components == nil {
		return nil, fmt.Errorf("openapi: document has no component schemas")
	}
	ref, ok := d.spec.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q not found", schemaName)
	}
	schema := ref.Value

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]resource.FieldDefinition, 0, len(names))
	for i, name := range names {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		def := mapProperty(int64(i+1), name, prop.Value, required[name])
		def.Order = propertyOrder(prop.Value, i+1)
		defs = append(defs, def)
	}
	return resource.SortFields(defs), nil
}

func mapProperty(id int64, name string, src *openapi3.Schema, required bool) resource.FieldDefinition {
	def := resource.FieldDefinition{
		ID:       id,
		Name:     displayName(name),
		Type:     fieldType(src),
		Required: required,
		HelpText: src.Description,
	}
	if src.MaxLength != nil {
		def.MaxLength = int(*src.MaxLength)
	}
	if src.Min != nil {
		v := *src.Min
		def.MinValue = &v
	}
	if src.Max != nil {
		v := *src.Max
		def.MaxValue = &v
	}
	if mb, ok := extFloat(src.Extensions, extMaxFileSizeMB); ok {
		def.MaxFileSizeMB = int(mb)
	}
	def.AllowedExtensions = extStrings(src.Extensions, extAllowedExts)
	return def
}

// fieldType picks the closest field type for a property: an explicit
// x-field-type wins, then the schema's type and format.
func fieldType(src *openapi3.Schema) resource.FieldType {
	if raw, ok := src.Extensions[extFieldType].(string); ok {
		if t := resource.FieldType(raw); t.Valid() {
			return t
		}
	}

	var typ string
	if src.Type != nil {
		if slice := src.Type.Slice(); len(slice) > 0 {
			typ = slice[0]
		}
	}
	switch typ {
	case "number", "integer":
		return resource.FieldTypeNumber
	case "string":
		switch src.Format {
		case "binary", "byte":
			return resource.FieldTypeDocument
		case "date", "date-time":
			return resource.FieldTypeDate
		}
	}
	return resource.FieldTypeText
}

func propertyOrder(src *openapi3.Schema, fallback int) int {
	if v, ok := extFloat(src.Extensions, extOrder); ok {
		return int(v)
	}
	return fallback
}

func extFloat(extensions map[string]any, key string) (float64, bool) {
	switch v := extensions[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func extStrings(extensions map[string]any, key string) []string {
	raw, ok := extensions[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// displayName turns a snake_case property name into a label, matching how
// the backend presents field names.
func displayName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	if len(parts) == 0 {
		return name
	}
	return strings.Join(parts, " ")
}
