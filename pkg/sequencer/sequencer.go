// Package sequencer steps through an order's pending items one at a time,
// presenting each item's resource form and advancing on submit success or
// explicit skip until the queue is exhausted.
package sequencer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/shiblymohammed/electionServices/pkg/form"
	"github.com/shiblymohammed/electionServices/pkg/order"
	"github.com/shiblymohammed/electionServices/pkg/resource"
)

// State names the sequencer's lifecycle phases.
type State string

const (
	// StateLoading covers the initial order and schema fetch.
	StateLoading State = "loading"
	// StatePresenting means one pending item's form is active.
	StatePresenting State = "presenting"
	// StateComplete is terminal: every pending item was submitted or the
	// queue was empty at load time.
	StateComplete State = "complete"
	// StateFailed is terminal: the initial fetch failed and the flow never
	// presented anything.
	StateFailed State = "failed"
)

var (
	// ErrLoadFailed wraps a fatal order/schema fetch failure. The flow cannot
	// proceed; callers hand control back to surrounding navigation.
	ErrLoadFailed = errors.New("sequencer: order load failed")
	// ErrNotPresenting rejects navigation while no item is active.
	ErrNotPresenting = errors.New("sequencer: no item is being presented")
	// ErrSkipLast rejects skipping the last pending item; it must be
	// submitted to finish the flow.
	ErrSkipLast = errors.New("sequencer: cannot skip the last pending item")
)

// Loader fetches the order and its resource-field schemas at flow start.
// The HTTP client satisfies this.
type Loader interface {
	GetOrder(ctx context.Context, orderID int64) (*order.Order, error)
	ResourceFields(ctx context.Context, orderID int64) ([]resource.ItemFields, error)
}

// Option customises a Sequencer.
type Option func(*Sequencer)

// WithLogger attaches a logger; the sequencer stays quiet without one.
func WithLogger(log *zap.Logger) Option {
	return func(s *Sequencer) {
		if log != nil {
			s.log = log
		}
	}
}

// Sequencer owns the pending-item queue for one session and a cursor into
// it. The queue is fixed at load time and never recomputed mid-flow; only
// the cursor moves, and never backward. Re-entering the flow from scratch
// rebuilds the queue from the server's current flags.
type Sequencer struct {
	orderID int64
	loader  Loader
	log     *zap.Logger

	state  State
	ord    *order.Order
	queue  []order.Item
	source form.FieldSource
	index  int
}

// New prepares a sequencer in the loading state.
func New(orderID int64, loader Loader, options ...Option) *Sequencer {
	s := &Sequencer{
		orderID: orderID,
		loader:  loader,
		log:     zap.NewNop(),
		state:   StateLoading,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Load fetches the order and field schemas, builds the pending queue, and
// moves to presenting (or straight to complete when nothing is pending).
// A fetch failure is fatal: the sequencer fails without ever presenting.
func (s *Sequencer) Load(ctx context.Context) error {
	if s.loader == nil {
		s.state = StateFailed
		return fmt.Errorf("%w: loader is required", ErrLoadFailed)
	}

	ord, err := s.loader.GetOrder(ctx, s.orderID)
	if err != nil {
		s.state = StateFailed
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	sets, err := s.loader.ResourceFields(ctx, s.orderID)
	if err != nil {
		s.state = StateFailed
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	s.ord = ord
	s.queue = ord.PendingItems()
	s.source = form.SelectSource(sets)
	s.index = 0

	if len(s.queue) == 0 {
		s.state = StateComplete
		s.log.Info("no pending items, flow complete",
			zap.Int64("order_id", s.orderID))
		return nil
	}

	s.state = StatePresenting
	s.log.Info("presenting pending items",
		zap.Int64("order_id", s.orderID),
		zap.Int("pending", len(s.queue)),
		zap.Bool("static_schema", s.source.Static()))
	return nil
}

// State reports the current lifecycle phase.
func (s *Sequencer) State() State {
	return s.state
}

// Order returns the loaded order, nil before a successful Load.
func (s *Sequencer) Order() *order.Order {
	return s.ord
}

// Current builds the form for the item under the cursor.
func (s *Sequencer) Current() (form.Form, bool) {
	if s.state != StatePresenting {
		return form.Form{}, false
	}
	item := s.queue[s.index]
	f := form.New(s.orderID, item, s.source.FieldsFor(item))
	f.Static = s.source.Static()
	f.Last = s.index == len(s.queue)-1
	return f, true
}

// Position reports the cursor as (index, total pending).
func (s *Sequencer) Position() (int, int) {
	return s.index, len(s.queue)
}

// IsLast reports whether the cursor sits on the final pending item.
func (s *Sequencer) IsLast() bool {
	return s.state == StatePresenting && s.index == len(s.queue)-1
}

// Advance moves past the current item after a successful submission,
// completing the flow when the queue is exhausted.
func (s *Sequencer) Advance() error {
	if s.state != StatePresenting {
		return ErrNotPresenting
	}
	if s.index+1 < len(s.queue) {
		s.index++
		return nil
	}
	s.state = StateComplete
	s.log.Info("resource flow complete", zap.Int64("order_id", s.orderID))
	return nil
}

// Skip moves past the current item without submitting. Skipping is disabled
// on the last item; there is nothing to skip to.
func (s *Sequencer) Skip() error {
	if s.state != StatePresenting {
		return ErrNotPresenting
	}
	if s.index+1 >= len(s.queue) {
		return ErrSkipLast
	}
	s.log.Info("item skipped",
		zap.Int64("order_id", s.orderID),
		zap.Int64("order_item_id", s.queue[s.index].ID))
	s.index++
	return nil
}

// Progress reports how far through the pending queue the session is, as a
// percentage of items passed (submitted or skipped).
func (s *Sequencer) Progress() int {
	switch s.state {
	case StateComplete:
		return 100
	case StatePresenting:
		if len(s.queue) == 0 {
			return 100
		}
		return s.index * 100 / len(s.queue)
	default:
		return 0
	}
}
