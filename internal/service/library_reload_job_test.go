// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

// spyStore считает вызовы Reload.
type spyStore struct {
	LibraryStore
	calls atomic.Int64
	err   error
}

func (s *spyStore) Reload(context.Context) error {
	s.calls.Add(1)
	return s.err
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestLibraryReloadJob_Start_CallsReload(t *testing.T) {
	spy := &spyStore{}
	job := NewLibraryReloadJob(spy, 10*time.Millisecond, logger.Nop())

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Reload должен быть вызван несколько раз, вызвано: %d", got)
}

func TestLibraryReloadJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyStore{}
	job := NewLibraryReloadJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load(), "после Stop вызовов быть не должно")
}

func TestLibraryReloadJob_StopWithoutStart(t *testing.T) {
	job := NewLibraryReloadJob(&spyStore{}, time.Second, logger.Nop())
	job.Stop()
}

func TestLibraryReloadJob_ErrorsDoNotStopTheLoop(t *testing.T) {
	spy := &spyStore{err: errors.New("executor down")}
	job := NewLibraryReloadJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestLibraryReloadJob_Disabled(t *testing.T) {
	spy := &spyStore{}
	job := NewLibraryReloadJob(spy, 0, logger.Nop())
	assert.False(t, job.Enabled())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.NoError(t, job.Run(ctx))
	assert.Equal(t, int64(0), spy.calls.Load())
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestLibraryReloadJob_Run_BlocksUntilCancelled(t *testing.T) {
	spy := &spyStore{}
	job := NewLibraryReloadJob(spy, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- job.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Greater(t, spy.calls.Load(), int64(0))
}
