package engine

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Run drives the engine until game over, quit or ctx cancellation.
// Each iteration polls one input, ticks, renders, then sleeps FrameSleep.
// Cancellation is reported as ReasonInterrupted with a nil error; only
// renderer failures are returned as errors.
func (e *Engine) Run(ctx context.Context, in InputSource, r Renderer) (Result, error) {
	for {
		if ctx.Err() != nil {
			e.Stop(ReasonInterrupted)
			return e.Result(), nil
		}

		ev, err := in.Poll()
		if err != nil {
			log.Printf("input poll failed, treating as no input: %v", err)
			ev = InputNone
		}

		state := e.Tick(ev)

		if err := r.Render(e.Snapshot()); err != nil {
			return e.Result(), fmt.Errorf("render frame: %w", err)
		}

		if state == StateGameOver {
			return e.Result(), nil
		}

		select {
		case <-ctx.Done():
			e.Stop(ReasonInterrupted)
			return e.Result(), nil
		case <-time.After(e.cfg.FrameSleep):
		}
	}
}
