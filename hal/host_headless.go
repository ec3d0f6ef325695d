//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the run after this many ticks; 0 runs until ctx is done.
	Ticks uint64
}

// RunHeadless drives h from a ticker instead of a window and runs run on its own goroutine.
func RunHeadless(ctx context.Context, h *Host, run func(context.Context) error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h.Start(ctx)
	done := make(chan error, 1)
	go func() { done <- run(ctx) }()

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case err := <-done:
			return err
		case <-ctx.Done():
			return waitRun(done)
		case <-t.C:
			h.Tick()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				cancel()
				return waitRun(done)
			}
		}
	}
}

func waitRun(done <-chan error) error {
	err := <-done
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
