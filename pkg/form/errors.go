package form

import (
	"errors"
	"net"
	"net/url"
)

var (
	// ErrValidationFailed signals the submit was blocked by local field
	// errors; inspect Session.Errors for the per-field messages.
	ErrValidationFailed = errors.New("form: validation failed")
	// ErrSubmitInFlight rejects a second submit while one is outstanding.
	ErrSubmitInFlight = errors.New("form: submission already in progress")
	// ErrNothingToSubmit rejects submitting a form with no fields.
	ErrNothingToSubmit = errors.New("form: no fields to submit")
	// ErrSkipRequested is returned by collectors when the user chose to move
	// on without submitting the current item.
	ErrSkipRequested = errors.New("form: skip requested")
)

// ErrorCategory buckets submission failures into the small set of
// user-facing outcomes the UI distinguishes.
type ErrorCategory string

const (
	CategoryOversizedPayload ErrorCategory = "oversized_payload"
	CategoryUnsupportedMedia ErrorCategory = "unsupported_media"
	CategoryMissingFields    ErrorCategory = "missing_fields"
	CategoryServerRejected   ErrorCategory = "server_rejected"
	CategoryNetwork          ErrorCategory = "network"
	CategoryUnknown          ErrorCategory = "unknown"
)

// SubmitError is a classified submission failure. Message is safe to show
// verbatim; Err retains the transport-level cause.
type SubmitError struct {
	Category ErrorCategory
	Message  string
	Err      error
}

func (e *SubmitError) Error() string {
	return e.Message
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// statusCarrier is satisfied by transport errors that expose an HTTP status.
type statusCarrier interface {
	HTTPStatus() int
}

// messageCarrier is satisfied by transport errors that embed a
// server-reported message.
type messageCarrier interface {
	ServerMessage() string
}

// ClassifyUploadError translates a transport failure into the error
// taxonomy. A server-embedded message wins over status-code mapping;
// connectivity failures get their own retry-oriented message; anything
// unrecognized falls back to a generic retry prompt.
func ClassifyUploadError(err error) *SubmitError {
	var submitErr *SubmitError
	if errors.As(err, &submitErr) {
		return submitErr
	}

	var withMessage messageCarrier
	if errors.As(err, &withMessage) {
		if msg := withMessage.ServerMessage(); msg != "" {
			return &SubmitError{Category: CategoryServerRejected, Message: msg, Err: err}
		}
	}

	var withStatus statusCarrier
	if errors.As(err, &withStatus) {
		switch withStatus.HTTPStatus() {
		case 413:
			return &SubmitError{
				Category: CategoryOversizedPayload,
				Message:  "File size too large. Please upload smaller files.",
				Err:      err,
			}
		case 415:
			return &SubmitError{
				Category: CategoryUnsupportedMedia,
				Message:  "Invalid file type. Please upload valid files.",
				Err:      err,
			}
		case 422:
			return &SubmitError{
				Category: CategoryMissingFields,
				Message:  "Missing required fields. Please check all fields and try again.",
				Err:      err,
			}
		}
	}

	if isNetworkError(err) {
		return &SubmitError{
			Category: CategoryNetwork,
			Message:  "Network error. Please check your connection and try again.",
			Err:      err,
		}
	}

	return &SubmitError{
		Category: CategoryUnknown,
		Message:  "Failed to upload resources. Please try again.",
		Err:      err,
	}
}

func isNetworkError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
