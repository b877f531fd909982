package html_test

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/shiblymohammed/electionServices/pkg/form"
	"github.com/shiblymohammed/electionServices/pkg/order"
	"github.com/shiblymohammed/electionServices/pkg/renderers/html"
	"github.com/shiblymohammed/electionServices/pkg/resource"
)

func testForm(last bool) form.Form {
	item := order.Item{ID: 31, ItemType: order.ItemTypePackage, Quantity: 2}
	f := form.New(7, item, []resource.FieldDefinition{
		{ID: 5, Name: "Candidate Photo", Type: resource.FieldTypeImage, Required: true, Order: 1,
			MaxFileSizeMB: 5, AllowedExtensions: []string{"jpg", "png"},
			HelpText: `High resolution <script>alert("x")</script>portrait`},
		{ID: 7, Name: "Campaign Slogan", Type: resource.FieldTypeText, Required: true, Order: 2, MaxLength: 100},
		{ID: 9, Name: "Preferred Date", Type: resource.FieldTypeDate, Required: false, Order: 3},
	})
	f.Last = last
	return f
}

func TestRenderFormFragment(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	session := form.NewSession(testForm(false), nil)
	session.SetText(7, "Vote for progress")

	out, err := renderer.Render(session)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		`action="/orders/7/upload-resources/"`,
		`name="order_item_id" value="31"`,
		`name="field_5"`,
		`accept=".jpg,.png"`,
		`name="field_7"`,
		`value="Vote for progress"`,
		`maxlength="100"`,
		`type="date"`,
		`Preferred Date (optional)`,
		`(x2)`,
		`Skip for now`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, "<script>") {
		t.Error("help text was not sanitised")
	}
}

func TestRenderOmitsSkipOnLastItem(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := renderer.Render(form.NewSession(testForm(true), nil))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "Skip for now") {
		t.Error("skip control rendered for the last item")
	}
}

func TestRenderShowsValidationErrors(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	session := form.NewSession(testForm(true), nil)
	session.Validate()

	out, err := renderer.Render(session)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "Candidate Photo is required") {
		t.Errorf("missing required-field error:\n%s", got)
	}
	if !strings.Contains(got, "has-error") {
		t.Error("erroring field not marked")
	}
}

func TestRenderStaticFallbackUsesFixedKeys(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	item := order.Item{ID: 31, ItemType: order.ItemTypePackage, Quantity: 1}
	source := form.StaticSource()
	f := form.New(7, item, source.FieldsFor(item))
	f.Static = true
	f.Last = true

	out, err := renderer.Render(form.NewSession(f, nil))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(out)
	for _, key := range []string{"candidate_photo", "party_logo", "campaign_slogan", "preferred_date", "whatsapp_number", "additional_notes"} {
		if !strings.Contains(got, `name="`+key+`"`) {
			t.Errorf("static form missing key %q", key)
		}
	}
}

type stubSelector struct {
	selection *theme.Selection
}

func (s *stubSelector) Select(string, string, ...theme.QueryOption) (*theme.Selection, error) {
	return s.selection, nil
}

func TestRenderAppliesThemeTokens(t *testing.T) {
	selector := &stubSelector{selection: &theme.Selection{
		Theme: "acme",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{"brand": "#123456"},
		},
	}}

	renderer, err := html.New(html.WithTheme(selector, "acme", ""))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := renderer.Render(form.NewSession(testForm(true), nil))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "--brand: #123456") {
		t.Errorf("theme token not applied:\n%s", out)
	}
}
