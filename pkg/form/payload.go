package form

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/shiblymohammed/electionServices/pkg/resource"
)

// Payload is the packaged multipart submission for one order item: the
// owning item id plus one part per provided value.
type Payload struct {
	ContentType string
	Body        []byte
}

// BuildPayload assembles the multipart body. Every value present in values
// is included — files as binary parts, everything else in string form —
// keyed by field_{id} (or the definition's fixed part name). Fields the
// user never touched are omitted entirely. File contents are read here, at
// packaging time.
func BuildPayload(f Form, values resource.Values) (Payload, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("order_item_id", strconv.FormatInt(f.Item.ID, 10)); err != nil {
		return Payload{}, fmt.Errorf("form: write order item id: %w", err)
	}

	for _, def := range f.Fields {
		value, ok := values[def.ID]
		if !ok {
			continue
		}
		key := PartName(def)
		if value.File != nil {
			if err := writeFilePart(writer, key, value.File); err != nil {
				return Payload{}, err
			}
			continue
		}
		if err := writer.WriteField(key, value.Text); err != nil {
			return Payload{}, fmt.Errorf("form: write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return Payload{}, fmt.Errorf("form: finalize payload: %w", err)
	}

	return Payload{
		ContentType: writer.FormDataContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// PartName is the multipart key for a field: its fixed part name when set,
// otherwise field_{id}. Renderers use it so form inputs post under the keys
// the upload endpoint reads.
func PartName(def resource.FieldDefinition) string {
	if def.PartName != "" {
		return def.PartName
	}
	return fmt.Sprintf("field_%d", def.ID)
}

func writeFilePart(writer *multipart.Writer, key string, ref *resource.FileRef) error {
	if ref.Open == nil {
		return fmt.Errorf("form: file %q has no content", ref.Name)
	}
	src, err := ref.Open()
	if err != nil {
		return fmt.Errorf("form: open file %q: %w", ref.Name, err)
	}
	defer func() {
		_ = src.Close()
	}()

	part, err := writer.CreateFormFile(key, ref.Name)
	if err != nil {
		return fmt.Errorf("form: create part %s: %w", key, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("form: copy file %q: %w", ref.Name, err)
	}
	return nil
}
