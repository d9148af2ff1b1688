// Package workers runs the client's background workers (periodic library
// reload, observability endpoint) side by side and stops them together.
package workers

import "context"

// Worker is a long-running background task.
//
// Run blocks until ctx is cancelled or the worker fails. A worker that has
// nothing to do returns nil immediately.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
//
//	func (w *MyWorker) Name() string { return "my-worker" }
type Worker interface {
	Run(ctx context.Context) error
	Name() string
}
