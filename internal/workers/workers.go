package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(log *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: log}
}

// Add registers another worker. It must be called before Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first failure cancels the rest. Errors from all workers are joined.
func (w *Workers) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w.logger.Debug().Str("worker", worker.Name()).Msg("worker started")
			if err := worker.Run(ctx); err != nil {
				w.logger.Error().Err(err).Str("worker", worker.Name()).Msg("worker failed")
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", worker.Name(), err))
				mu.Unlock()
				cancel()
				return
			}
			w.logger.Debug().Str("worker", worker.Name()).Msg("worker stopped")
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}
