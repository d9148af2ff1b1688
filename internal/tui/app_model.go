package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenEdit
	screenBuildInfo
)

type appModel struct {
	ctx      context.Context
	services *service.Services
	build    models.AppBuildInfo

	currentScreen screen
	list          listModel
	detailID      string
	session       *service.EditSession
	form          formModel

	spinner spinner.Model
	busy    bool
	status  string

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	showPrompt   bool
	prompt       promptModel
}

func newAppModel(ctx context.Context, services *service.Services, build models.AppBuildInfo) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return appModel{
		ctx:      ctx,
		services: services,
		build:    build,
		list:     newListModel(services.View),
		session:  services.NewEditSession(),
		spinner:  sp,
		busy:     true,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdReload())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.table.SetHeight(max(msg.Height-14, 5))
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case storeEventMsg:
		return m.handleStoreEvent(service.Event(msg))
	case opDoneMsg:
		return m.handleOpDone(msg)
	case savedMsg:
		return m.handleSaved(msg)
	case dlsiteMsg:
		return m.handleDLSite(msg)
	case copiedMsg:
		m.status = msg.status
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showError:
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.showError = false
		}
		return m, nil
	case m.showConfirm:
		return m.updateConfirm(keyMsg)
	case m.showPrompt:
		return m.updatePrompt(keyMsg)
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenEdit:
		return m.updateEdit(keyMsg)
	case screenBuildInfo:
		if key.Matches(keyMsg, keys.esc, keys.quit) {
			m.currentScreen = screenList
		}
	}
	return m, nil
}

// forward passes non-key messages such as cursor blinks to the focused input.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.showPrompt:
		m.prompt.input, cmd = m.prompt.input.Update(msg)
	case m.currentScreen == screenEdit:
		m.form, cmd = m.form.update(msg)
	case m.currentScreen == screenList:
		m.list, cmd = m.list.update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		data := fmt.Sprintf("Записей: %d\n\n%s", len(m.services.Library.Items()), m.list.render())
		body = renderPage("БИБЛИОТЕКА", data, listHelp(m.list.filtering()))
	case screenDetail:
		item, _ := m.services.Library.Find(m.detailID)
		body = renderPage(item.Title, renderDetail(item), helpLine(
			keys.esc, keys.edit, keys.remove, keys.deploy, keys.undeploy, keys.open, keys.openDir, keys.copy))
	case screenEdit:
		body = renderPage(m.form.title(), m.form.render(), helpLine(
			keys.tab, keys.left, keys.right, keys.save, keys.delEntry, keys.genPass, keys.fetch, keys.esc))
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.build)
	}

	switch {
	case m.busy:
		body += "\n\n" + m.spinner.View() + " Загрузка..."
	case m.status != "":
		body += "\n\n" + statusStyle.Render(m.status)
	}

	if m.showPrompt {
		body += "\n\n" + m.prompt.View()
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func listHelp(filtering bool) string {
	if filtering {
		return helpLine(keys.enter, keys.esc, keys.regex)
	}
	return helpLine(keys.up, keys.down, keys.enter, keys.filter, keys.newItem, keys.edit, keys.remove,
		keys.reload, keys.export, keys.importLb, keys.clear, keys.info, keys.quit)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// startOp marks the model busy and runs cmd. Only one operation started from
// the UI is in flight at a time.
func (m *appModel) startOp(cmd tea.Cmd) tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	m.status = ""
	return tea.Batch(m.spinner.Tick, cmd)
}

func (m appModel) handleStoreEvent(e service.Event) (tea.Model, tea.Cmd) {
	switch e.Kind {
	case service.EventSucceeded, service.EventResyncFailed:
		m.list.refresh()
		if m.currentScreen == screenDetail {
			if _, ok := m.services.Library.Find(m.detailID); !ok {
				m.currentScreen = screenList
			}
		}
	case service.EventFailed:
		if e.Op == service.OpReload && !m.busy {
			m.status = "Не удалось обновить библиотеку: " + humanizeError(e.Err)
			return m, cmdClearStatus()
		}
	}
	return m, nil
}

func (m appModel) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	if msg.op != opCopy {
		m.busy = false
	}
	m.list.refresh()

	if msg.op == string(service.OpRemove) && (msg.err == nil || service.IsResync(msg.err)) {
		m.currentScreen = screenList
	}

	if msg.err != nil {
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}

	m.status = opStatus(msg.op)
	return m, cmdClearStatus()
}

func (m appModel) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.list.refresh()

	if msg.err != nil && !service.IsResync(msg.err) {
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}

	m.session.Reset()
	m.detailID = msg.id
	m.currentScreen = screenList
	if _, ok := m.services.Library.Find(msg.id); ok {
		m.currentScreen = screenDetail
	}

	if msg.err != nil {
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}
	m.status = "Сохранено"
	return m, cmdClearStatus()
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.filtering() {
		switch {
		case key.Matches(msg, keys.enter, keys.esc):
			m.list.stopFilter()
			return m, nil
		case key.Matches(msg, keys.regex):
			m.list.toggleRegex()
			return m, nil
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.filter):
		return m, m.list.startFilter()
	case key.Matches(msg, keys.regex):
		m.list.toggleRegex()
		return m, nil
	case key.Matches(msg, keys.esc):
		if m.list.filter.Value() != "" {
			m.list.filter.SetValue("")
			m.services.View.SetQuery("")
			m.list.refresh()
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		if id := m.list.selectedID(); id != "" {
			m.detailID = id
			m.currentScreen = screenDetail
		}
		return m, nil
	case key.Matches(msg, keys.newItem):
		m.openForm("")
		return m, nil
	case key.Matches(msg, keys.edit):
		if id := m.list.selectedID(); id != "" {
			m.openForm(id)
		}
		return m, nil
	case key.Matches(msg, keys.remove):
		if item, ok := m.list.selected(); ok {
			m.askRemove(item)
		}
		return m, nil
	case key.Matches(msg, keys.reload):
		return m, m.startOp(m.cmdReload())
	case key.Matches(msg, keys.export):
		return m, m.startOp(m.cmdExport())
	case key.Matches(msg, keys.importLb):
		return m, m.startOp(m.cmdImport())
	case key.Matches(msg, keys.clear):
		m.showConfirm = true
		m.confirm = confirmModel{
			action:  confirmClear,
			message: "Экспортировать и очистить всю библиотеку?",
		}
		return m, nil
	case key.Matches(msg, keys.info):
		m.currentScreen = screenBuildInfo
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.services.Library.Find(m.detailID)
	if !ok {
		m.currentScreen = screenList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.edit):
		m.openForm(item.ID)
	case key.Matches(msg, keys.remove):
		m.askRemove(item)
	case key.Matches(msg, keys.deploy):
		m.showPrompt = true
		m.prompt = newDeployPrompt(item.ID, item.Title, item.DeployInfo.Path())
	case key.Matches(msg, keys.undeploy):
		if item.DeployInfo.IsUnset() {
			m.status = "Запись не развёрнута"
			return m, cmdClearStatus()
		}
		return m, m.startOp(m.cmdDeployOff(item.ID))
	case key.Matches(msg, keys.open):
		return m, m.openPath(item.ArchiveInfo.Path(), "У записи нет архива")
	case key.Matches(msg, keys.openDir):
		return m, m.openPath(item.DeployInfo.Path(), "Запись не развёрнута")
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(copyTarget(item))
	}
	return m, nil
}

func (m *appModel) openPath(path, missing string) tea.Cmd {
	if path == "" {
		m.status = missing
		return cmdClearStatus()
	}
	return m.startOp(m.cmdOpen(path))
}

func (m appModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
		if !m.session.IsCreating() {
			m.currentScreen = screenDetail
		}
		m.session.Reset()
		return m, nil
	case key.Matches(msg, keys.save):
		if err := m.form.apply(); err != nil {
			m.showErrorf(humanizeError(err))
			return m, nil
		}
		opt, err := m.session.Prepare(m.ctx)
		if err != nil {
			m.showErrorf(humanizeError(err))
			return m, nil
		}
		return m, m.startOp(m.cmdSave(opt))
	case key.Matches(msg, keys.fetch):
		if err := m.form.apply(); err != nil {
			m.showErrorf(humanizeError(err))
			return m, nil
		}
		id := m.session.DLSiteID()
		if id == "" {
			m.form.setNotice("Выберите платформу DLSite и укажите ID", true)
			return m, nil
		}
		return m, m.startOp(m.cmdFetchDLSite(id))
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// handleDLSite fills blank fields of the open form from a DLSite page.
func (m appModel) handleDLSite(msg dlsiteMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	}
	if m.currentScreen != screenEdit {
		return m, nil
	}

	res := m.session.ApplyDLSite(msg.info)
	focus := m.form.focus
	m.form = newFormModel(m.session)
	m.form.focusOn(focus)
	m.form.setNotice(fmt.Sprintf("Данные DLSite загружены, добавлено тегов: %d", len(res.Added)), false)
	return m, nil
}

func (m *appModel) openForm(id string) {
	if id == "" {
		m.session.Reset()
	} else if m.session.Bind(id) {
		m.detailID = id
	}
	m.form = newFormModel(m.session)
	m.currentScreen = screenEdit
}

func (m *appModel) askRemove(item models.Metadata) {
	m.showConfirm = true
	m.confirm = confirmModel{
		action:  confirmRemove,
		id:      item.ID,
		message: "Удалить \"" + item.Title + "\"?",
	}
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		switch m.confirm.action {
		case confirmRemove:
			return m, m.startOp(m.cmdRemove(m.confirm.id))
		case confirmClear:
			return m, m.startOp(m.cmdClear())
		}
	case key.Matches(msg, keys.no, keys.esc):
		m.showConfirm = false
	}
	return m, nil
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.showPrompt = false
		return m, nil
	case key.Matches(msg, keys.enter):
		m.showPrompt = false
		return m, m.startOp(m.cmdDeploy(m.prompt.id, m.prompt.input.Value()))
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}
