package form

import "context"

// Collector gathers values for one form into its session. Implementations
// range from interactive terminal prompts to programmatic fillers in tests.
// Returning ErrSkipRequested tells the caller to move past the current item
// without submitting.
type Collector interface {
	Name() string
	Collect(ctx context.Context, session *Session) error
}
