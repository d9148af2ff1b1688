package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
	"github.com/MKhiriev/go-library-keeper/models"
)

type commandGateway struct {
	invoker  Invoker
	timeout  time.Duration
	observer CommandObserver

	logger *logger.Logger
}

// NewCommandGateway wraps invoker with typed commands. Each call is bounded
// by timeout when it is positive. observer may be nil.
func NewCommandGateway(invoker Invoker, timeout time.Duration, observer CommandObserver, log *logger.Logger) CommandGateway {
	if observer == nil {
		observer = nopObserver{}
	}
	return &commandGateway{
		invoker:  invoker,
		timeout:  timeout,
		observer: observer,
		logger:   log,
	}
}

func (g *commandGateway) GetAll(ctx context.Context) ([]models.Metadata, error) {
	var items []models.Metadata
	if err := g.call(ctx, OpMetadataGetAll, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Metadata{}
	}
	return items, nil
}

func (g *commandGateway) Get(ctx context.Context, id string) (models.Metadata, error) {
	var item models.Metadata
	if err := g.call(ctx, OpMetadataGet, keyArgs{Key: id}, &item); err != nil {
		return models.Metadata{}, err
	}
	return item, nil
}

func (g *commandGateway) Update(ctx context.Context, opt models.MetadataOptional) (string, error) {
	var id string
	if err := g.call(ctx, OpMetadataUpdate, updateArgs{Opt: opt}, &id); err != nil {
		return "", err
	}
	return id, nil
}

func (g *commandGateway) Remove(ctx context.Context, id string) error {
	return g.call(ctx, OpMetadataRemove, keyArgs{Key: id}, nil)
}

func (g *commandGateway) Deploy(ctx context.Context, id, target string) error {
	return g.call(ctx, OpMetadataDeploy, deployArgs{Key: id, Target: target}, nil)
}

func (g *commandGateway) DeployOff(ctx context.Context, id string) error {
	return g.call(ctx, OpMetadataDeployOff, keyArgs{Key: id}, nil)
}

func (g *commandGateway) LibraryClear(ctx context.Context) error {
	return g.call(ctx, OpLibraryClear, nil, nil)
}

func (g *commandGateway) LibraryExport(ctx context.Context) error {
	return g.call(ctx, OpLibraryExport, nil, nil)
}

func (g *commandGateway) LibraryImport(ctx context.Context) error {
	return g.call(ctx, OpLibraryImport, nil, nil)
}

func (g *commandGateway) ResolvePath(ctx context.Context, path string) (string, error) {
	var abs string
	if err := g.call(ctx, OpResolveAbsolute, pathArgs{Path: path}, &abs); err != nil {
		return "", err
	}
	return abs, nil
}

func (g *commandGateway) FetchDLSite(ctx context.Context, id string) (models.DLSiteInfo, error) {
	var info models.DLSiteInfo
	if err := g.call(ctx, OpFetchDLSite, idArgs{ID: id}, &info); err != nil {
		return models.DLSiteInfo{}, err
	}
	return info, nil
}

// call performs exactly one invocation: no retry, no caching.
func (g *commandGateway) call(ctx context.Context, op string, args any, result any) error {
	ctx, requestID := utils.EnsureRequestID(ctx)
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.observer.CommandStarted(op)
	start := time.Now()
	err := g.invoker.Invoke(ctx, op, args, result)
	elapsed := time.Since(start)
	g.observer.CommandFinished(op, err, elapsed.Seconds())

	if err != nil {
		g.logger.Error().
			Err(err).
			Str("op", op).
			Str("request_id", requestID).
			Dur("duration", elapsed).
			Msg("command failed")
		return &CommandError{Op: op, RequestID: requestID, Err: err}
	}

	g.logger.Debug().
		Str("op", op).
		Str("request_id", requestID).
		Dur("duration", elapsed).
		Msg("command succeeded")
	return nil
}

type nopObserver struct{}

func (nopObserver) CommandStarted(string)                  {}
func (nopObserver) CommandFinished(string, error, float64) {}
