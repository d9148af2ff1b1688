package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
	"github.com/MKhiriev/go-library-keeper/models"
)

// AuthSettings enables bearer token checks on the reload endpoint when
// SignKey is set.
type AuthSettings struct {
	SignKey string
	Issuer  string
}

type Handler struct {
	library service.LibraryStore
	metrics http.Handler
	build   models.AppBuildInfo
	auth    AuthSettings
	hasher  *utils.Hasher

	logger *logger.Logger
}

// NewHandler builds the status API handler. metrics may be nil, in which
// case /metrics is not registered.
func NewHandler(library service.LibraryStore, metrics http.Handler, build models.AppBuildInfo, auth AuthSettings, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		library: library,
		metrics: metrics,
		build:   build,
		auth:    auth,
		hasher:  utils.NewHasher(hashKey),
		logger:  logger,
	}
}
