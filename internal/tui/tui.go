// Package tui is the terminal interface of the library client: a filterable
// library table, an item detail page and an edit form, all backed by
// [service.Services].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/models"
)

type TUI struct {
	services *service.Services
	build    models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.Services, build models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, build: build, logger: log}
}

// Run blocks until the user quits or ctx is cancelled. Store events, including
// those raised by background reloads, are delivered to the running program.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.build)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.services.Library.Subscribe(func(e service.Event) {
		p.Send(storeEventMsg(e))
	})
	defer unsubscribe()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("terminal UI stopped by context")
		return nil
	}
	return err
}
