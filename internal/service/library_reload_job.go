package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
)

// LibraryReloadJob refreshes the store from the executor on a ticker so
// changes made by other clients eventually show up.
type LibraryReloadJob struct {
	store    LibraryStore
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewLibraryReloadJob creates an idle job. A non-positive interval disables
// it.
func NewLibraryReloadJob(store LibraryStore, interval time.Duration, log *logger.Logger) *LibraryReloadJob {
	return &LibraryReloadJob{
		store:    store,
		interval: interval,
		logger:   log,
	}
}

func (j *LibraryReloadJob) Enabled() bool {
	return j.interval > 0
}

// Start stops any previously running loop and launches a new one that
// reloads the store every interval until ctx is cancelled or Stop is called.
func (j *LibraryReloadJob) Start(ctx context.Context) {
	if !j.Enabled() {
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.store.Reload(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Warn().Err(err).Msg("periodic library reload failed")
				}
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call when the job
// is not running.
func (j *LibraryReloadJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run starts the job and blocks until ctx is done.
func (j *LibraryReloadJob) Run(ctx context.Context) error {
	j.Start(ctx)
	<-ctx.Done()
	j.Stop()
	return nil
}

func (j *LibraryReloadJob) Name() string {
	return "library-reload"
}
