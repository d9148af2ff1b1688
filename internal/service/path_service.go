package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-library-keeper/internal/adapter"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
)

type pathService struct {
	gateway adapter.CommandGateway
	opener  Opener

	logger *logger.Logger
}

func NewPathService(gateway adapter.CommandGateway, opener Opener, log *logger.Logger) PathService {
	return &pathService{
		gateway: gateway,
		opener:  opener,
		logger:  log,
	}
}

// Resolve asks the executor for the absolute form of path.
func (p *pathService) Resolve(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", &ValidationError{Field: "path", Reason: ErrBlankValue}
	}

	abs, err := p.gateway.ResolvePath(ctx, path)
	if err != nil {
		return "", &PathResolutionError{Path: path, Err: err}
	}
	return abs, nil
}

// Open resolves path and opens it with the host's default handler.
func (p *pathService) Open(ctx context.Context, path string) error {
	abs, err := p.Resolve(ctx, path)
	if err != nil {
		return err
	}

	if err = p.opener.Open(ctx, abs); err != nil {
		p.logger.Error().Err(err).Str("path", abs).Msg("failed to open path")
		return &PathResolutionError{Path: abs, Err: err}
	}
	return nil
}
