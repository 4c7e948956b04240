package cli

import (
	"context"
	"io"
	"time"

	"github.com/Ambaicci/zwip/internal/model"
	"github.com/schollz/progressbar/v3"
)

// ProgressSettler renders the simulated settlement as a progress bar in
// non-interactive mode. Cancellation is honored only before the bar starts;
// an in-flight settlement always runs to completion.
type ProgressSettler struct {
	Writer io.Writer
	Delay  time.Duration
}

// Settle animates the settlement delay.
func (p ProgressSettler) Settle(ctx context.Context, total model.Money) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	const steps = 20
	bar := progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(p.Writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Processing "+FormatMoney(total)+"...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]█[reset]",
			SaucerPadding: "░",
			BarStart:      "▐",
			BarEnd:        "▌",
		}),
		progressbar.OptionClearOnFinish(),
	)

	tick := p.Delay / steps
	for i := 0; i < steps; i++ {
		time.Sleep(tick)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return nil
}
