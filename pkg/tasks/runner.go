package tasks

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"alvezinc.backend/pkg/logger"
)

// Runner executes detached background work. Tasks receive a fresh
// context, so they keep running after the request that spawned them is
// gone; failures are observable only through logs.
type Runner struct {
	wg sync.WaitGroup
}

// NewRunner creates a new runner
func NewRunner() *Runner {
	return &Runner{}
}

// Go runs fn on its own goroutine. Panics are recovered and logged so
// one bad task cannot take the process down.
func (r *Runner) Go(name string, fn func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(context.Background(), "background task panicked",
					zap.String("task", name),
					zap.String("panic", fmt.Sprint(rec)),
				)
			}
		}()
		fn(context.Background())
	}()
}

// Wait blocks until every spawned task finishes or ctx expires.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
