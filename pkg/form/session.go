package form

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shiblymohammed/electionServices/pkg/resource"
)

const defaultSuccessDelay = time.Second

// UploadResult is the backend's answer to a resource submission.
type UploadResult struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	OrderStatus  string        `json:"order_status,omitempty"`
	AllUploaded  bool          `json:"all_resources_uploaded,omitempty"`
	PendingItems []PendingItem `json:"pending_items,omitempty"`
}

// PendingItem is the backend's summary of an item still missing resources.
type PendingItem struct {
	ID       int64  `json:"id"`
	ItemType string `json:"item_type"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// Transport submits a packaged payload to the backend. The HTTP client
// satisfies this; tests use stubs.
type Transport interface {
	UploadResources(ctx context.Context, orderID, orderItemID int64, payload Payload) (UploadResult, error)
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithSuccessDelay overrides the visible-confirmation pause after a
// successful upload. Zero disables it; tests use that.
func WithSuccessDelay(d time.Duration) SessionOption {
	return func(s *Session) {
		s.successDelay = d
	}
}

// Session owns the mutable state of one item's form: collected values and
// their validation errors. It is created fresh when an item's form mounts
// and discarded when the sequencer advances; nothing persists across items
// or reloads.
type Session struct {
	form      Form
	transport Transport

	mu         sync.Mutex
	values     resource.Values
	errors     resource.Errors
	submitting bool

	successDelay time.Duration
}

// NewSession starts an empty session for one form.
func NewSession(f Form, transport Transport, options ...SessionOption) *Session {
	s := &Session{
		form:         f,
		transport:    transport,
		values:       make(resource.Values),
		errors:       make(resource.Errors),
		successDelay: defaultSuccessDelay,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Form returns the definition set this session collects for.
func (s *Session) Form() Form {
	return s.form
}

// SetText records a text-like value for a field and optimistically clears
// any standing error for it when the new value is non-empty. Full
// re-validation only happens at submit.
func (s *Session) SetText(fieldID int64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[fieldID] = resource.TextValue(text)
	if text != "" {
		delete(s.errors, fieldID)
	}
}

// SetFile records a file value. A nil ref deselects the field entirely.
func (s *Session) SetFile(fieldID int64, ref *resource.FileRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ref == nil {
		delete(s.values, fieldID)
		return
	}
	s.values[fieldID] = resource.FileValue(ref)
	delete(s.errors, fieldID)
}

// Value returns the current value for a field, if any.
func (s *Session) Value(fieldID int64) (resource.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[fieldID]
	return value, ok
}

// Values returns a snapshot of all collected values.
func (s *Session) Values() resource.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Clone()
}

// Errors returns a snapshot of the current per-field errors.
func (s *Session) Errors() resource.Errors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors.Clone()
}

// FirstError returns the first erroring field in presentation order, so the
// caller can bring it into view.
func (s *Session) FirstError() (resource.FieldDefinition, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, def := range s.form.Fields {
		if msg, ok := s.errors[def.ID]; ok {
			return def, msg, true
		}
	}
	return resource.FieldDefinition{}, "", false
}

// Validate runs the field validator across every definition, replaces the
// error map with the result, and reports whether the form is submittable.
func (s *Session) Validate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = resource.ValidateAll(s.form.Fields, s.values)
	return len(s.errors) == 0
}

// Submitting reports whether an upload is currently in flight.
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Submit validates, packages, and uploads the form. On validation failure it
// returns ErrValidationFailed and surfaces every field error at once. On
// transport failure it returns a classified *SubmitError and leaves all
// values in place for retry. A second Submit while one is in flight fails
// with ErrSubmitInFlight. Success is reported only after the short visible
// confirmation delay has elapsed.
func (s *Session) Submit(ctx context.Context) (UploadResult, error) {
	if s.form.Empty() {
		return UploadResult{}, ErrNothingToSubmit
	}
	if s.transport == nil {
		return UploadResult{}, fmt.Errorf("form: transport is required")
	}

	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return UploadResult{}, ErrSubmitInFlight
	}
	s.errors = resource.ValidateAll(s.form.Fields, s.values)
	if len(s.errors) > 0 {
		s.mu.Unlock()
		return UploadResult{}, ErrValidationFailed
	}
	s.submitting = true
	values := s.values.Clone()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	payload, err := BuildPayload(s.form, values)
	if err != nil {
		return UploadResult{}, err
	}

	result, err := s.transport.UploadResources(ctx, s.form.OrderID, s.form.Item.ID, payload)
	if err != nil {
		return UploadResult{}, ClassifyUploadError(err)
	}
	if !result.Success {
		return result, &SubmitError{
			Category: CategoryUnknown,
			Message:  "Failed to upload resources. Please try again.",
		}
	}

	if s.successDelay > 0 {
		timer := time.NewTimer(s.successDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return result, ctx.Err()
		}
	}

	return result, nil
}
