// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side library logic between the executor
// gateway and the user interfaces.
//
// [LibraryStore] is the single in-memory copy of the library. Every mutation
// goes through the gateway and is followed by a full refetch, so the cache
// only ever mirrors executor state. [EditSession] is a private working copy
// of one item, flattening the platform, archive and deploy unions into plain
// form fields and composing them back on submit. [LibraryView] is a filtered
// projection of the store recomputed only when the store or the filter
// changes.
package service

import (
	"context"

	"github.com/MKhiriev/go-library-keeper/models"
)

// LibraryStore is the canonical cached library.
//
// Mutations are serialized per store. A failed write leaves the cache
// untouched; a successful write followed by a failed refetch returns a
// [ResyncError].
type LibraryStore interface {
	// Reload replaces the cache with the executor's full list. On failure
	// the previous cache is kept.
	Reload(ctx context.Context) error

	// Items returns a deep copy of the cached items in executor order.
	Items() []models.Metadata

	// Find returns a deep copy of the cached item with id.
	Find(id string) (models.Metadata, bool)

	// Version increases every time the cache is replaced.
	Version() uint64

	// Update creates (no id) or replaces an item and returns its id. The id
	// is returned even when the result is a ResyncError.
	Update(ctx context.Context, opt models.MetadataOptional) (string, error)

	Remove(ctx context.Context, id string) error

	// Deploy rejects a blank target locally.
	Deploy(ctx context.Context, id, target string) error

	DeployOff(ctx context.Context, id string) error

	// Clear exports the library first and clears it only if the export
	// succeeded.
	Clear(ctx context.Context) error

	// Export does not change the library and is not followed by a refetch.
	Export(ctx context.Context) error

	Import(ctx context.Context) error

	// Subscribe registers fn for every store event and returns a function
	// removing it. fn runs on the goroutine performing the operation and
	// must not call mutating store methods synchronously.
	Subscribe(fn func(Event)) (unsubscribe func())
}

// PathService resolves user supplied paths through the executor and hands
// them to the host OS.
type PathService interface {
	Resolve(ctx context.Context, path string) (string, error)
	Open(ctx context.Context, path string) error
}

// LookupService fetches store page details for platform ids.
type LookupService interface {
	DLSite(ctx context.Context, id string) (models.DLSiteInfo, error)
}

// Opener opens an absolute path with the host's default handler.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// StoreObserver receives cache statistics. *metrics.Metrics implements it.
type StoreObserver interface {
	CacheReplaced(items int, version uint64)
	ResyncFailed()
	ReloadFinished(err error)
}
