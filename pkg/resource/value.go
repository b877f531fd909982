package resource

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileRef references a binary value without holding its content. Open is
// called at packaging time so large files are streamed, not buffered, while
// the form is being filled.
type FileRef struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// FileFromPath stats path and returns a FileRef that opens it on demand.
func FileFromPath(path string) (*FileRef, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("resource: stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("resource: %q is a directory", path)
	}
	return &FileRef{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// Value holds one candidate field value: either a text string or a file
// reference. The zero Value means "not provided".
type Value struct {
	Text string
	File *FileRef
}

// TextValue wraps a string as a Value.
func TextValue(s string) Value {
	return Value{Text: s}
}

// FileValue wraps a file reference as a Value.
func FileValue(ref *FileRef) Value {
	return Value{File: ref}
}

// IsZero reports whether the value counts as absent: no file and an empty
// string. Whitespace-only text is deliberately not absent, matching the
// submission endpoint's behaviour.
func (v Value) IsZero() bool {
	return v.File == nil && v.Text == ""
}

// Values maps field-definition ids to candidate values. Absent entries mean
// "not yet provided"; lookup is by id and insertion order is irrelevant.
type Values map[int64]Value

// Clone returns a shallow copy; FileRef pointers are shared.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for id, value := range v {
		out[id] = value
	}
	return out
}

// Errors maps field-definition ids to human-readable messages. Any entry
// blocks submission.
type Errors map[int64]string

// Clone returns a copy of the error map.
func (e Errors) Clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	for id, msg := range e {
		out[id] = msg
	}
	return out
}
