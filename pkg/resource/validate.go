package resource

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validate checks one candidate value against its definition and returns a
// human-readable message, or the empty string when the value is acceptable.
// It is pure: no side effects, no state, definition plus value in, message
// out. Callers decide how to surface the result.
func Validate(def FieldDefinition, value Value) string {
	if def.Required && value.IsZero() {
		return fmt.Sprintf("%s is required", def.Name)
	}
	if value.IsZero() {
		return ""
	}

	switch def.Type {
	case FieldTypeText:
		if def.MaxLength > 0 && len([]rune(value.Text)) > def.MaxLength {
			return fmt.Sprintf("Maximum %d characters allowed", def.MaxLength)
		}

	case FieldTypeNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(value.Text), 64)
		if err != nil {
			return "Please enter a valid number"
		}
		// Both bound checks run independently; when a value violates both,
		// the later message wins, matching the submission endpoint's UX.
		msg := ""
		if def.MinValue != nil && n < *def.MinValue {
			msg = fmt.Sprintf("Minimum value is %s", formatBound(*def.MinValue))
		}
		if def.MaxValue != nil && n > *def.MaxValue {
			msg = fmt.Sprintf("Maximum value is %s", formatBound(*def.MaxValue))
		}
		return msg

	case FieldTypePhone:
		digits := strings.Join(strings.Fields(value.Text), "")
		if !phonePattern.MatchString(digits) {
			return "Please enter a valid 10-digit phone number"
		}

	case FieldTypeDate:
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(value.Text)); err != nil {
			return "Please enter a valid date"
		}

	case FieldTypeImage:
		if value.File != nil {
			if msg := checkFileSize(def, value.File); msg != "" {
				return msg
			}
		}

	case FieldTypeDocument:
		if value.File != nil {
			if msg := checkFileSize(def, value.File); msg != "" {
				return msg
			}
			if len(def.AllowedExtensions) > 0 && !extensionAllowed(value.File.Name, def.AllowedExtensions) {
				return fmt.Sprintf("Allowed formats: %s", strings.Join(def.AllowedExtensions, ", "))
			}
		}
	}

	return ""
}

// ValidateAll applies Validate to every definition. A field absent from
// values is treated identically to an explicit empty value. The form is
// submittable iff the returned map is empty.
func ValidateAll(defs []FieldDefinition, values Values) Errors {
	errs := make(Errors)
	for _, def := range defs {
		if msg := Validate(def, values[def.ID]); msg != "" {
			errs[def.ID] = msg
		}
	}
	return errs
}

func checkFileSize(def FieldDefinition, ref *FileRef) string {
	if def.MaxFileSizeMB <= 0 {
		return ""
	}
	maxBytes := int64(def.MaxFileSizeMB) * 1024 * 1024
	if ref.Size > maxBytes {
		return fmt.Sprintf("File size must be less than %dMB", def.MaxFileSizeMB)
	}
	return ""
}

// extensionAllowed matches the segment after the last dot (the whole name
// when there is no dot), lower-cased, against the allowed list.
func extensionAllowed(name string, allowed []string) bool {
	ext := name
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		ext = name[idx+1:]
	}
	ext = strings.ToLower(ext)
	for _, candidate := range allowed {
		if ext == candidate {
			return true
		}
	}
	return false
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
