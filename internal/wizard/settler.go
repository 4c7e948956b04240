package wizard

import (
	"context"
	"time"

	"github.com/Ambaicci/zwip/internal/model"
)

// DelaySettler simulates the settlement leg with a fixed delay. It refuses
// to start on an already-cancelled context, but once the delay is running
// it always completes: an in-flight transfer cannot be cancelled.
type DelaySettler struct {
	Delay time.Duration
}

// Settle blocks for the configured delay and reports success.
func (d DelaySettler) Settle(ctx context.Context, _ model.Money) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.Delay > 0 {
		time.Sleep(d.Delay)
	}
	return nil
}
