package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/models"
)

func (m appModel) cmdReload() tea.Cmd {
	ctx := m.ctx
	lib := m.services.Library
	return func() tea.Msg {
		return opDoneMsg{op: string(service.OpReload), err: lib.Reload(ctx)}
	}
}

func (m appModel) cmdRemove(id string) tea.Cmd {
	ctx := m.ctx
	lib := m.services.Library
	return func() tea.Msg {
		return opDoneMsg{op: string(service.OpRemove), id: id, err: lib.Remove(ctx, id)}
	}
}

func (m appModel) cmdDeploy(id, target string) tea.Cmd {
	ctx := m.ctx
	lib := m.services.Library
	return func() tea.Msg {
		return opDoneMsg{op: string(service.OpDeploy), id: id, err: lib.Deploy(ctx, id, target)}
	}
}

func (m appModel) cmdDeployOff(id string) tea.Cmd {
	ctx := m.ctx
	lib := m.services.Library
	return func() tea.Msg {
		return opDoneMsg{op: string(service.OpDeployOff), id: id, err: lib.DeployOff(ctx, id)}
	}
}

func (m appModel) cmdClear() tea.Cmd {
	ctx := m.ctx
	lib := m.services.Library
	return func() tea.Msg {
		return opDoneMsg{op: string(service.OpClear), err: lib.Clear(ctx)}
	}
}

func (m appModel) cmdExport() tea.Cmd {
	ctx := m.ctx
	lib := m.services.Library
	return func() tea.Msg {
		return opDoneMsg{op: string(service.OpExport), err: lib.Export(ctx)}
	}
}

func (m appModel) cmdImport() tea.Cmd {
	ctx := m.ctx
	lib := m.services.Library
	return func() tea.Msg {
		return opDoneMsg{op: string(service.OpImport), err: lib.Import(ctx)}
	}
}

func (m appModel) cmdOpen(path string) tea.Cmd {
	ctx := m.ctx
	paths := m.services.Paths
	return func() tea.Msg {
		return opDoneMsg{op: opOpen, err: paths.Open(ctx, path)}
	}
}

// cmdSave sends a prepared payload. The edit session stays on the UI
// goroutine and is reset in handleSaved.
func (m appModel) cmdSave(opt models.MetadataOptional) tea.Cmd {
	ctx := m.ctx
	lib := m.services.Library
	return func() tea.Msg {
		id, err := lib.Update(ctx, opt)
		return savedMsg{id: id, err: err}
	}
}

func (m appModel) cmdFetchDLSite(id string) tea.Cmd {
	ctx := m.ctx
	lookup := m.services.Lookup
	return func() tea.Msg {
		info, err := lookup.DLSite(ctx, id)
		return dlsiteMsg{info: info, err: err}
	}
}

func cmdCopyToClipboard(text, status string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return opDoneMsg{op: opCopy, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{status: status}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func opStatus(op string) string {
	switch op {
	case string(service.OpReload):
		return "Библиотека обновлена"
	case string(service.OpRemove):
		return "Запись удалена"
	case string(service.OpDeploy):
		return "Развёрнуто"
	case string(service.OpDeployOff):
		return "Развёртка снята"
	case string(service.OpClear):
		return "Библиотека экспортирована и очищена"
	case string(service.OpExport):
		return "Библиотека экспортирована"
	case string(service.OpImport):
		return "Библиотека импортирована"
	case opOpen:
		return "Открыто"
	}
	return "Готово"
}
