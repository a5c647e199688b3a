package app

import (
	"context"
	"fmt"
	"io"
	"time"
)

// RunHeadless drives a from wall time until ctx is done, writing a line to w
// whenever a region changes. Cancellation or deadline ends the run cleanly.
func RunHeadless(ctx context.Context, a *App, w io.Writer, interval time.Duration, now func() time.Time) error {
	if interval <= 0 {
		interval = time.Second
	}
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Close()

	last := a.Snapshot()
	if _, err := fmt.Fprintln(w, last); err != nil {
		return err
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.AdvanceTo(now())
			snap := a.Snapshot()
			if snap == last {
				continue
			}
			last = snap
			if _, err := fmt.Fprintln(w, snap); err != nil {
				return err
			}
		}
	}
}
