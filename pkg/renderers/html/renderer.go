// Package html renders the per-item resource form as a server-side HTML
// fragment, for embedding in order pages. Field keys match the multipart
// part names the upload endpoint expects, so the rendered form posts
// directly to it.
package html

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/shiblymohammed/electionServices/pkg/form"
	"github.com/shiblymohammed/electionServices/pkg/resource"
)

const formTemplate = "form.html"

// ThemeSelector resolves a theme manifest by name and variant. go-theme's
// Registry satisfies this.
type ThemeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// Option configures the renderer.
type Option func(*Renderer)

// WithTemplates overrides the embedded templates, e.g. for a customised
// form layout. The filesystem must contain form.html at its root.
func WithTemplates(files fs.FS) Option {
	return func(r *Renderer) {
		if files != nil {
			r.files = files
		}
	}
}

// WithTheme resolves the named theme at construction and exposes its tokens
// to the template as CSS custom properties on the form element.
func WithTheme(selector ThemeSelector, name, variant string) Option {
	return func(r *Renderer) {
		r.selector = selector
		r.themeName = name
		r.themeVariant = variant
	}
}

// Renderer turns a form session into an HTML fragment. Help text is
// sanitised before it is marked safe for the template.
type Renderer struct {
	files        fs.FS
	policy       *bluemonday.Policy
	selector     ThemeSelector
	themeName    string
	themeVariant string

	mu        sync.Mutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	cssVars   map[string]string
}

// New builds a renderer over the embedded templates unless overridden.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		policy:    bluemonday.StrictPolicy(),
		templates: make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.files == nil {
		sub, err := fs.Sub(templatesFS, "templates")
		if err != nil {
			return nil, fmt.Errorf("html: embedded templates: %w", err)
		}
		r.files = sub
	}
	r.set = pongo2.NewSet("resource-form", pongo2.NewFSLoader(r.files))

	if r.selector != nil {
		selection, err := r.selector.Select(r.themeName, r.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("html: select theme %q: %w", r.themeName, err)
		}
		if selection != nil && selection.Manifest != nil {
			r.cssVars = cssVarsFromTokens(selection.Manifest.Tokens)
		}
	}

	return r, nil
}

// Name identifies the renderer in registries and logs.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType is the MIME type of Render's output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the form fragment for the session's current state,
// including any validation errors recorded on it.
func (r *Renderer) Render(session *form.Session) ([]byte, error) {
	if session == nil {
		return nil, fmt.Errorf("html: session is required")
	}
	f := session.Form()
	errs := session.Errors()

	fields := make([]map[string]any, 0, len(f.Fields))
	for _, def := range f.Fields {
		value, _ := session.Value(def.ID)
		fields = append(fields, r.fieldContext(def, value, errs[def.ID]))
	}

	data := pongo2.Context{
		"order_id":      f.OrderID,
		"order_item_id": f.Item.ID,
		"item_name":     f.Item.DetailName(),
		"quantity":      f.Item.Quantity,
		"fields":        fields,
		"show_skip":     !f.Last,
		"style":         styleAttr(r.cssVars),
	}

	tmpl, err := r.template(formTemplate)
	if err != nil {
		return nil, err
	}
	var buf strings.Builder
	if err := tmpl.ExecuteWriter(data, &buf); err != nil {
		return nil, fmt.Errorf("html: execute %s: %w", formTemplate, err)
	}
	return []byte(buf.String()), nil
}

func (r *Renderer) fieldContext(def resource.FieldDefinition, value resource.Value, fieldErr string) map[string]any {
	label := def.Name
	if !def.Required {
		label += " (optional)"
	}

	ctx := map[string]any{
		"key":      form.PartName(def),
		"label":    label,
		"required": def.Required,
		"input":    inputType(def.Type),
		"help":     r.policy.Sanitize(def.HelpText),
		"error":    fieldErr,
		"value":    value.Text,
	}
	if def.MaxLength > 0 {
		ctx["maxlength"] = def.MaxLength
	}
	if def.Type.IsFile() {
		if len(def.AllowedExtensions) > 0 {
			exts := make([]string, len(def.AllowedExtensions))
			for i, ext := range def.AllowedExtensions {
				exts[i] = "." + strings.TrimPrefix(strings.ToLower(ext), ".")
			}
			ctx["accept"] = strings.Join(exts, ",")
		}
		if value.File != nil {
			ctx["file_name"] = value.File.Name
		}
	}
	return ctx
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("html: load template %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}

func inputType(t resource.FieldType) string {
	switch t {
	case resource.FieldTypeImage, resource.FieldTypeDocument:
		return "file"
	case resource.FieldTypeNumber:
		return "number"
	case resource.FieldTypePhone:
		return "tel"
	case resource.FieldTypeDate:
		return "date"
	default:
		return "text"
	}
}

func cssVarsFromTokens(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for name, value := range tokens {
		out["--"+name] = value
	}
	return out
}

func styleAttr(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + vars[name]
	}
	return strings.Join(parts, "; ")
}
