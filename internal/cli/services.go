package cli

import (
	"fmt"

	"github.com/MKhiriev/go-library-keeper/internal/adapter"
	"github.com/MKhiriev/go-library-keeper/internal/config"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
)

// ServicesFactory builds the library services from an optional JSON config
// path.
type ServicesFactory func(configPath string) (*service.Services, error)

// NewServicesFromConfig is the production [ServicesFactory]. Configuration
// comes from defaults, the environment and the JSON file; command line
// flags belong to cobra.
func NewServicesFromConfig(configPath string) (*service.Services, error) {
	log := logger.NewClientLogger("libctl")

	cfg, err := config.GetClientConfigFromEnv(configPath)
	if err != nil {
		return nil, err
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping default")
	}

	invoker, err := adapter.NewInvoker(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create invoker: %w", err)
	}
	gateway := adapter.NewCommandGateway(invoker, cfg.Adapter.RequestTimeout, nil, log)

	return service.NewServices(gateway, utils.SystemOpener{}, nil, 0, log), nil
}

type runtime struct {
	configPath  string
	newServices ServicesFactory
	services    *service.Services
}

func (r *runtime) load() (*service.Services, error) {
	if r.services != nil {
		return r.services, nil
	}
	s, err := r.newServices(r.configPath)
	if err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}
	r.services = s
	return s, nil
}
