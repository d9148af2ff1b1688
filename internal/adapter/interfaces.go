// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's boundary to the remote executor that
// persists library metadata and performs archive and deploy work.
//
// [Invoker] is the raw request/response mechanism: one named command, JSON
// arguments in, JSON result out. Two transports implement it, HTTP via resty
// ([NewHTTPInvoker]) and gRPC with a JSON codec ([NewGRPCInvoker]).
// [CommandGateway] is the typed façade the services use: one method per
// command, a per-call timeout, and every failure wrapped in a [CommandError]
// naming the command.
//
// Transport statuses are mapped to the sentinel errors in errors.go so
// callers can use [errors.Is] independently of the transport in use.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-library-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Invoker sends one named command to the executor. args is encoded as the
// command's JSON argument object; when result is non-nil the JSON reply is
// decoded into it.
type Invoker interface {
	Invoke(ctx context.Context, op string, args any, result any) error
	Close() error
}

// CommandGateway is the typed command surface of the executor.
type CommandGateway interface {
	// GetAll returns every persisted item in executor order.
	GetAll(ctx context.Context) ([]models.Metadata, error)

	// Get returns one item; an unknown id yields an error wrapping ErrNotFound.
	Get(ctx context.Context, id string) (models.Metadata, error)

	// Update creates the item when opt has no id and fully replaces it
	// otherwise. It returns the item's id.
	Update(ctx context.Context, opt models.MetadataOptional) (string, error)

	Remove(ctx context.Context, id string) error

	// Deploy makes the item available at target.
	Deploy(ctx context.Context, id, target string) error

	DeployOff(ctx context.Context, id string) error

	LibraryClear(ctx context.Context) error
	LibraryExport(ctx context.Context) error
	LibraryImport(ctx context.Context) error

	// ResolvePath asks the executor to turn path into an absolute path.
	ResolvePath(ctx context.Context, path string) (string, error)

	// FetchDLSite asks the executor to look up a DLSite work by product id.
	FetchDLSite(ctx context.Context, id string) (models.DLSiteInfo, error)
}

// CommandObserver receives timing and outcome of every gateway call.
type CommandObserver interface {
	CommandStarted(op string)
	CommandFinished(op string, err error, seconds float64)
}
