package openapi_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shiblymohammed/electionServices/pkg/openapi"
	"github.com/shiblymohammed/electionServices/pkg/resource"
)

const previewDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "Resource Schemas", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "PosterResources": {
        "type": "object",
        "required": ["candidate_photo", "campaign_slogan"],
        "properties": {
          "candidate_photo": {
            "type": "string",
            "format": "binary",
            "description": "High resolution portrait",
            "x-field-type": "image",
            "x-order": 1,
            "x-max-file-size-mb": 5,
            "x-allowed-extensions": ["jpg", "png"]
          },
          "campaign_slogan": {
            "type": "string",
            "maxLength": 100,
            "x-order": 2
          },
          "poster_count": {
            "type": "integer",
            "minimum": 1,
            "maximum": 500,
            "x-order": 3
          },
          "preferred_date": {
            "type": "string",
            "format": "date",
            "x-order": 4
          }
        }
      }
    }
  }
}`

func loadPreview(t *testing.T) *openapi.Document {
	t.Helper()
	doc, err := openapi.New().Load(context.Background(), []byte(previewDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return doc
}

func TestSchemaNames(t *testing.T) {
	doc := loadPreview(t)
	if diff := cmp.Diff([]string{"PosterResources"}, doc.SchemaNames()); diff != "" {
		t.Fatalf("schema names mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsFromSchema(t *testing.T) {
	doc := loadPreview(t)
	defs, err := doc.Fields("PosterResources")
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	if len(defs) != 4 {
		t.Fatalf("got %d fields, want 4", len(defs))
	}

	photo := defs[0]
	if photo.Name != "Candidate Photo" || photo.Type != resource.FieldTypeImage {
		t.Fatalf("first field = %+v", photo)
	}
	if !photo.Required || photo.MaxFileSizeMB != 5 {
		t.Fatalf("photo constraints = %+v", photo)
	}
	if diff := cmp.Diff([]string{"jpg", "png"}, photo.AllowedExtensions); diff != "" {
		t.Fatalf("extensions mismatch (-want +got):\n%s", diff)
	}

	slogan := defs[1]
	if slogan.Type != resource.FieldTypeText || slogan.MaxLength != 100 {
		t.Fatalf("slogan = %+v", slogan)
	}

	count := defs[2]
	if count.Type != resource.FieldTypeNumber {
		t.Fatalf("count type = %s", count.Type)
	}
	if count.MinValue == nil || *count.MinValue != 1 || count.MaxValue == nil || *count.MaxValue != 500 {
		t.Fatalf("count bounds = %+v", count)
	}
	if count.Required {
		t.Fatal("count should be optional")
	}

	if defs[3].Type != resource.FieldTypeDate {
		t.Fatalf("date field = %+v", defs[3])
	}
}

func TestFieldsValidateLikeServerDefinitions(t *testing.T) {
	doc := loadPreview(t)
	defs, err := doc.Fields("PosterResources")
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}

	slogan := defs[1]
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	if msg := resource.Validate(slogan, resource.TextValue(string(long))); msg != "Maximum 100 characters allowed" {
		t.Fatalf("validation message = %q", msg)
	}
}

func TestUnknownSchema(t *testing.T) {
	doc := loadPreview(t)
	if _, err := doc.Fields("Missing"); err == nil {
		t.Fatal("expected error for unknown schema")
	}
}

func TestEmptyDocumentRejected(t *testing.T) {
	if _, err := openapi.New().Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
