package resource_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shiblymohammed/electionServices/pkg/resource"
)

func floatPtr(v float64) *float64 { return &v }

func fileRef(name string, size int64) *resource.FileRef {
	return &resource.FileRef{Name: name, Size: size}
}

func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		def   resource.FieldDefinition
		value resource.Value
		want  string
	}{
		{
			name:  "required text absent",
			def:   resource.FieldDefinition{ID: 1, Name: "Campaign Slogan", Type: resource.FieldTypeText, Required: true},
			value: resource.Value{},
			want:  "Campaign Slogan is required",
		},
		{
			name:  "required text empty string",
			def:   resource.FieldDefinition{ID: 1, Name: "Campaign Slogan", Type: resource.FieldTypeText, Required: true},
			value: resource.TextValue(""),
			want:  "Campaign Slogan is required",
		},
		{
			name:  "required text provided",
			def:   resource.FieldDefinition{ID: 1, Name: "Campaign Slogan", Type: resource.FieldTypeText, Required: true},
			value: resource.TextValue("Vote for progress"),
			want:  "",
		},
		{
			name:  "required image absent",
			def:   resource.FieldDefinition{ID: 2, Name: "Candidate Photo", Type: resource.FieldTypeImage, Required: true},
			value: resource.Value{},
			want:  "Candidate Photo is required",
		},
		{
			name:  "required image provided",
			def:   resource.FieldDefinition{ID: 2, Name: "Candidate Photo", Type: resource.FieldTypeImage, Required: true},
			value: resource.FileValue(fileRef("photo.jpg", 1024)),
			want:  "",
		},
		{
			name:  "optional field absent",
			def:   resource.FieldDefinition{ID: 3, Name: "Notes", Type: resource.FieldTypeText},
			value: resource.Value{},
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resource.Validate(tc.def, tc.value); got != tc.want {
				t.Fatalf("Validate() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidate_TextMaxLength(t *testing.T) {
	def := resource.FieldDefinition{ID: 7, Name: "Slogan", Type: resource.FieldTypeText, Required: true, MaxLength: 20}

	if got := resource.Validate(def, resource.TextValue(strings.Repeat("a", 25))); got != "Maximum 20 characters allowed" {
		t.Fatalf("over-length text: got %q", got)
	}
	if got := resource.Validate(def, resource.TextValue(strings.Repeat("a", 20))); got != "" {
		t.Fatalf("at-limit text: got %q", got)
	}
}

func TestValidate_NumberBounds(t *testing.T) {
	def := resource.FieldDefinition{
		ID:       4,
		Name:     "Quantity",
		Type:     resource.FieldTypeNumber,
		MinValue: floatPtr(1),
		MaxValue: floatPtr(5),
	}

	cases := map[string]string{
		"0":   "Minimum value is 1",
		"6":   "Maximum value is 5",
		"abc": "Please enter a valid number",
		"3":   "",
	}
	for input, want := range cases {
		if got := resource.Validate(def, resource.TextValue(input)); got != want {
			t.Errorf("input %q: got %q, want %q", input, got, want)
		}
	}
}

func TestValidate_Phone(t *testing.T) {
	def := resource.FieldDefinition{ID: 5, Name: "WhatsApp Number", Type: resource.FieldTypePhone}

	cases := map[string]bool{
		"9876543210":    true,
		"98765 43210":   true, // whitespace stripped before matching
		"987654321":     false,
		"98765432100":   false,
		"98765abc10":    false,
		"+919876543210": false,
	}
	for input, ok := range cases {
		got := resource.Validate(def, resource.TextValue(input))
		if ok && got != "" {
			t.Errorf("input %q: unexpected error %q", input, got)
		}
		if !ok && got != "Please enter a valid 10-digit phone number" {
			t.Errorf("input %q: got %q", input, got)
		}
	}
}

func TestValidate_Date(t *testing.T) {
	def := resource.FieldDefinition{ID: 6, Name: "Preferred Date", Type: resource.FieldTypeDate}

	if got := resource.Validate(def, resource.TextValue("2026-02-14")); got != "" {
		t.Fatalf("valid date: got %q", got)
	}
	if got := resource.Validate(def, resource.TextValue("not-a-date")); got != "Please enter a valid date" {
		t.Fatalf("invalid date: got %q", got)
	}
	if got := resource.Validate(def, resource.TextValue("2026-02-30")); got != "Please enter a valid date" {
		t.Fatalf("impossible date: got %q", got)
	}
}

func TestValidate_FileSize(t *testing.T) {
	def := resource.FieldDefinition{ID: 8, Name: "Party Logo", Type: resource.FieldTypeImage, MaxFileSizeMB: 5}

	if got := resource.Validate(def, resource.FileValue(fileRef("logo.png", 5*1024*1024))); got != "" {
		t.Fatalf("at-limit file: got %q", got)
	}
	if got := resource.Validate(def, resource.FileValue(fileRef("logo.png", 5*1024*1024+1))); got != "File size must be less than 5MB" {
		t.Fatalf("oversized file: got %q", got)
	}
}

func TestValidate_DocumentExtensions(t *testing.T) {
	def := resource.FieldDefinition{
		ID:                9,
		Name:              "Manifesto",
		Type:              resource.FieldTypeDocument,
		AllowedExtensions: []string{"pdf", "doc"},
	}

	if got := resource.Validate(def, resource.FileValue(fileRef("resume.pdf", 100))); got != "" {
		t.Fatalf("allowed extension: got %q", got)
	}
	if got := resource.Validate(def, resource.FileValue(fileRef("resume.PDF", 100))); got != "" {
		t.Fatalf("case-insensitive extension: got %q", got)
	}
	if got := resource.Validate(def, resource.FileValue(fileRef("resume.txt", 100))); got != "Allowed formats: pdf, doc" {
		t.Fatalf("disallowed extension: got %q", got)
	}
	if got := resource.Validate(def, resource.FileValue(fileRef("resume", 100))); got != "Allowed formats: pdf, doc" {
		t.Fatalf("extensionless name: got %q", got)
	}
}

func TestValidateAll(t *testing.T) {
	defs := []resource.FieldDefinition{
		{ID: 1, Name: "Slogan", Type: resource.FieldTypeText, Required: true, Order: 1},
		{ID: 2, Name: "Quantity", Type: resource.FieldTypeNumber, Order: 2, MinValue: floatPtr(1)},
		{ID: 3, Name: "Notes", Type: resource.FieldTypeText, Order: 3},
	}
	values := resource.Values{
		2: resource.TextValue("0"),
	}

	got := resource.ValidateAll(defs, values)
	want := resource.Errors{
		1: "Slogan is required",
		2: "Minimum value is 1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	values[1] = resource.TextValue("Forward together")
	values[2] = resource.TextValue("2")
	if got := resource.ValidateAll(defs, values); len(got) != 0 {
		t.Fatalf("expected clean validation, got %v", got)
	}
}
