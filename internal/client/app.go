package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library-keeper/internal/adapter"
	"github.com/MKhiriev/go-library-keeper/internal/config"
	handler "github.com/MKhiriev/go-library-keeper/internal/handler/http"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/metrics"
	"github.com/MKhiriev/go-library-keeper/internal/server"
	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/internal/tui"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
	"github.com/MKhiriev/go-library-keeper/internal/workers"
	"github.com/MKhiriev/go-library-keeper/models"
)

type App struct {
	services *service.Services
	ui       UI
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp builds the whole client from cfg: transport, gateway, services,
// terminal UI and background workers.
func NewApp(cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	m := metrics.NewMetrics()

	invoker, err := adapter.NewInvoker(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create invoker: %w", err)
	}
	gateway := adapter.NewCommandGateway(invoker, cfg.Adapter.RequestTimeout, m, log)

	services := service.NewServices(gateway, utils.SystemOpener{}, m, cfg.Workers.ReloadInterval, log)

	bg, err := newBackground(cfg, services, m, build, log)
	if err != nil {
		return nil, err
	}

	return newApp(services, tui.New(services, build, log), bg, log), nil
}

func newApp(services *service.Services, ui UI, bg *workers.Workers, log *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		workers:  bg,
		logger:   log,
	}
}

func newBackground(cfg *config.ClientConfig, services *service.Services, m *metrics.Metrics, build models.AppBuildInfo, log *logger.Logger) (*workers.Workers, error) {
	bg := workers.NewWorkers(log)

	if services.ReloadJob.Enabled() {
		bg.Add(services.ReloadJob)
	}

	if cfg.Observability.Address != "" {
		h := handler.NewHandler(
			services.Library,
			m.Handler(),
			build,
			handler.AuthSettings{SignKey: cfg.Adapter.TokenSignKey, Issuer: cfg.Adapter.TokenIssuer},
			cfg.Adapter.HashKey,
			log,
		)
		srv, err := server.NewHTTPServer(cfg.Observability.Address, h.Init(), log)
		if err != nil {
			return nil, fmt.Errorf("create status server: %w", err)
		}
		bg.Add(srv)
	}

	return bg, nil
}

// Run starts the background workers and blocks on the UI. When the UI
// returns the workers are cancelled and awaited.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bgErr := make(chan error, 1)
	go func() {
		bgErr <- a.workers.Run(ctx)
	}()

	a.logger.Info().Msg("client started")
	uiErr := a.ui.Run(ctx)
	cancel()

	err := <-bgErr
	if err != nil {
		a.logger.Error().Err(err).Msg("background workers stopped with error")
	}
	a.logger.Info().Msg("client stopped")

	if uiErr != nil {
		return fmt.Errorf("ui: %w", uiErr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}
