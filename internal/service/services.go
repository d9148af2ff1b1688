package service

import (
	"time"

	"github.com/MKhiriev/go-library-keeper/internal/adapter"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/validators"
)

type Services struct {
	Library   LibraryStore
	Paths     PathService
	Lookup    LookupService
	View      *LibraryView
	ReloadJob *LibraryReloadJob

	validator validators.Validator
	logger    *logger.Logger
}

func NewServices(gateway adapter.CommandGateway, opener Opener, observer StoreObserver, reloadInterval time.Duration, log *logger.Logger) *Services {
	library := NewLibraryStore(gateway, observer, log.WithComponent("library"))

	return &Services{
		Library:   library,
		Paths:     NewPathService(gateway, opener, log.WithComponent("paths")),
		Lookup:    NewLookupService(gateway, log.WithComponent("lookup")),
		View:      NewLibraryView(library),
		ReloadJob: NewLibraryReloadJob(library, reloadInterval, log.WithComponent("reload")),
		validator: validators.NewMetadataValidator(),
		logger:    log,
	}
}

// NewEditSession returns a session bound to the shared library store.
func (s *Services) NewEditSession() *EditSession {
	return NewEditSession(s.Library, s.validator, s.logger.WithComponent("edit"))
}
