package sequencer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/shiblymohammed/electionServices/pkg/form"
)

// Run drives the whole flow: load, then for each pending item create a
// session, hand it to the collector, and submit. A collector returning
// form.ErrSkipRequested moves to the next item without submitting, except
// on the last item where the request is surfaced as an error. Submit
// failures abort the run with the session's values intact server-side
// untouched; the caller can re-enter the flow later.
func (s *Sequencer) Run(ctx context.Context, transport form.Transport, collector form.Collector, options ...form.SessionOption) error {
	if collector == nil {
		return errors.New("sequencer: collector is required")
	}

	if s.state == StateLoading {
		if err := s.Load(ctx); err != nil {
			return err
		}
	}

	for s.state == StatePresenting {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, ok := s.Current()
		if !ok {
			break
		}
		session := form.NewSession(f, transport, options...)

		err := collector.Collect(ctx, session)
		if errors.Is(err, form.ErrSkipRequested) {
			if skipErr := s.Skip(); skipErr != nil {
				return skipErr
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("sequencer: collect item %d: %w", f.Item.ID, err)
		}

		if _, err := session.Submit(ctx); err != nil {
			s.log.Warn("submission failed",
				zap.Int64("order_id", s.orderID),
				zap.Int64("order_item_id", f.Item.ID),
				zap.Error(err))
			return fmt.Errorf("sequencer: submit item %d: %w", f.Item.ID, err)
		}

		if err := s.Advance(); err != nil {
			return err
		}
	}

	return nil
}
