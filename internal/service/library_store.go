package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-library-keeper/internal/adapter"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/models"
)

type libraryStore struct {
	gateway  adapter.CommandGateway
	observer StoreObserver

	// writeMu serializes reloads and mutations so a refetch always observes
	// the write that triggered it.
	writeMu sync.Mutex

	mu      sync.RWMutex
	items   []models.Metadata
	byID    map[string]int
	version uint64

	subMu   sync.RWMutex
	subs    map[uint64]func(Event)
	nextSub uint64

	logger *logger.Logger
}

// NewLibraryStore creates an empty store. observer may be nil.
func NewLibraryStore(gateway adapter.CommandGateway, observer StoreObserver, log *logger.Logger) LibraryStore {
	if observer == nil {
		observer = nopStoreObserver{}
	}
	return &libraryStore{
		gateway:  gateway,
		observer: observer,
		items:    []models.Metadata{},
		byID:     map[string]int{},
		subs:     map[uint64]func(Event){},
		logger:   log,
	}
}

func (s *libraryStore) Reload(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.emit(Event{Op: OpReload, Kind: EventPending})
	err := s.refetch(ctx)
	s.observer.ReloadFinished(err)
	if err != nil {
		s.logger.Error().Err(err).Msg("library reload failed, keeping cached items")
		s.emit(Event{Op: OpReload, Kind: EventFailed, Err: err, Version: s.Version()})
		return fmt.Errorf("reload library: %w", err)
	}

	s.emit(Event{Op: OpReload, Kind: EventSucceeded, Version: s.Version()})
	return nil
}

func (s *libraryStore) Items() []models.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Metadata, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

func (s *libraryStore) Find(id string) (models.Metadata, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Metadata{}, false
	}
	return s.items[i].Clone(), true
}

func (s *libraryStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *libraryStore) Update(ctx context.Context, opt models.MetadataOptional) (string, error) {
	var id string
	err := s.mutate(ctx, OpUpdate, func(ctx context.Context) error {
		var err error
		id, err = s.gateway.Update(ctx, opt)
		return err
	})
	return id, err
}

func (s *libraryStore) Remove(ctx context.Context, id string) error {
	return s.mutate(ctx, OpRemove, func(ctx context.Context) error {
		return s.gateway.Remove(ctx, id)
	})
}

func (s *libraryStore) Deploy(ctx context.Context, id, target string) error {
	if strings.TrimSpace(target) == "" {
		return &ValidationError{Field: "target", Reason: ErrBlankValue}
	}
	return s.mutate(ctx, OpDeploy, func(ctx context.Context) error {
		return s.gateway.Deploy(ctx, id, target)
	})
}

func (s *libraryStore) DeployOff(ctx context.Context, id string) error {
	return s.mutate(ctx, OpDeployOff, func(ctx context.Context) error {
		return s.gateway.DeployOff(ctx, id)
	})
}

func (s *libraryStore) Clear(ctx context.Context) error {
	return s.mutate(ctx, OpClear, func(ctx context.Context) error {
		if err := s.gateway.LibraryExport(ctx); err != nil {
			return fmt.Errorf("export before clear: %w", err)
		}
		return s.gateway.LibraryClear(ctx)
	})
}

func (s *libraryStore) Export(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.emit(Event{Op: OpExport, Kind: EventPending})
	if err := s.gateway.LibraryExport(ctx); err != nil {
		s.logger.Error().Err(err).Str("op", string(OpExport)).Msg("library operation failed")
		s.emit(Event{Op: OpExport, Kind: EventFailed, Err: err, Version: s.Version()})
		return err
	}
	s.emit(Event{Op: OpExport, Kind: EventSucceeded, Version: s.Version()})
	return nil
}

func (s *libraryStore) Import(ctx context.Context) error {
	return s.mutate(ctx, OpImport, func(ctx context.Context) error {
		return s.gateway.LibraryImport(ctx)
	})
}

func (s *libraryStore) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// mutate runs write and, when it succeeds, refetches the whole library.
// A failed write leaves the cache as it was.
func (s *libraryStore) mutate(ctx context.Context, op Op, write func(ctx context.Context) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.emit(Event{Op: op, Kind: EventPending})

	if err := write(ctx); err != nil {
		s.logger.Error().Err(err).Str("op", string(op)).Msg("library operation failed")
		s.emit(Event{Op: op, Kind: EventFailed, Err: err, Version: s.Version()})
		return err
	}

	if err := s.refetch(ctx); err != nil {
		rerr := &ResyncError{Op: string(op), Err: err}
		s.observer.ResyncFailed()
		s.logger.Warn().Err(err).Str("op", string(op)).Msg("library operation applied but refetch failed")
		s.emit(Event{Op: op, Kind: EventResyncFailed, Err: rerr, Version: s.Version()})
		return rerr
	}

	s.logger.Debug().Str("op", string(op)).Uint64("version", s.Version()).Msg("library operation succeeded")
	s.emit(Event{Op: op, Kind: EventSucceeded, Version: s.Version()})
	return nil
}

// refetch replaces the cache with the executor's list. Callers hold writeMu.
func (s *libraryStore) refetch(ctx context.Context) error {
	items, err := s.gateway.GetAll(ctx)
	if err != nil {
		return err
	}

	byID := make(map[string]int, len(items))
	for i, item := range items {
		byID[item.ID] = i
	}

	s.mu.Lock()
	s.items = items
	s.byID = byID
	s.version++
	version := s.version
	s.mu.Unlock()

	s.observer.CacheReplaced(len(items), version)
	return nil
}

func (s *libraryStore) emit(e Event) {
	s.subMu.RLock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}

type nopStoreObserver struct{}

func (nopStoreObserver) CacheReplaced(int, uint64) {}
func (nopStoreObserver) ResyncFailed()             {}
func (nopStoreObserver) ReloadFinished(error)      {}
