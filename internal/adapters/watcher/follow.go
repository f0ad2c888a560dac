package watcher

import (
	"context"
	"time"

	"go.trai.ch/curve/internal/core/ports"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

// Follow starts w on path and calls onChange once per burst of events until
// ctx is done. Removal events are ignored since most editors recreate the
// file right after. Pending events are flushed before Follow returns.
func Follow(ctx context.Context, w ports.Watcher, path string, window time.Duration, onChange func()) error {
	if err := w.Start(ctx, path); err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	d := NewDebouncer(window, func(events []ports.WatchEvent) {
		for _, e := range events {
			if e.Operation != ports.OpRemove {
				onChange()
				return
			}
		}
	})
	defer d.Flush()

	for event := range w.Events() {
		d.Add(event)
	}
	return nil
}
