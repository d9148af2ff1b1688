package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-library-keeper/internal/adapter"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/models"
)

type lookupService struct {
	gateway adapter.CommandGateway
	logger  *logger.Logger
}

func NewLookupService(gateway adapter.CommandGateway, log *logger.Logger) LookupService {
	return &lookupService{
		gateway: gateway,
		logger:  log,
	}
}

// DLSite fetches the product page summary for a DLSite work id such as
// RJ01000000. The id is trimmed and must not be blank.
func (l *lookupService) DLSite(ctx context.Context, id string) (models.DLSiteInfo, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.DLSiteInfo{}, &ValidationError{Field: "dlsite_id", Reason: ErrBlankValue}
	}

	info, err := l.gateway.FetchDLSite(ctx, id)
	if err != nil {
		return models.DLSiteInfo{}, err
	}

	l.logger.Debug().Str("id", id).Str("title", info.Title).Msg("dlsite work fetched")
	return info, nil
}
