package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
	"github.com/MKhiriev/go-library-keeper/models"
)

const listHeight = 15

var listColumns = []table.Column{
	{Title: "Название", Width: 32},
	{Title: "Тип", Width: 10},
	{Title: "Платформа", Width: 22},
	{Title: "Теги", Width: 24},
	{Title: "Архив", Width: 10},
	{Title: "Развёрнуто", Width: 10},
}

// listModel is the filtered library table with its filter input.
type listModel struct {
	view   *service.LibraryView
	table  table.Model
	filter textinput.Model
	items  []models.Metadata

	filterErr error
}

func newListModel(view *service.LibraryView) listModel {
	ti := textinput.New()
	ti.Placeholder = "поиск по названию, тегам, разработчику..."
	ti.Prompt = "/ "
	ti.CharLimit = 256
	ti.Width = 48

	t := table.New(
		table.WithColumns(listColumns),
		table.WithFocused(true),
		table.WithHeight(listHeight),
	)

	return listModel{
		view:   view,
		table:  t,
		filter: ti,
	}
}

// refresh re-reads the projection and keeps the cursor on the same item
// when it is still visible.
func (m *listModel) refresh() {
	selected := m.selectedID()

	items, err := m.view.Rows()
	m.filterErr = err
	m.items = items

	rows := make([]table.Row, 0, len(items))
	cursor := 0
	for i, item := range items {
		rows = append(rows, itemRow(item))
		if item.ID == selected {
			cursor = i
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(cursor)
}

func (m listModel) selected() (models.Metadata, bool) {
	if len(m.items) == 0 {
		return models.Metadata{}, false
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return models.Metadata{}, false
	}
	return m.items[i], true
}

func (m listModel) selectedID() string {
	item, ok := m.selected()
	if !ok {
		return ""
	}
	return item.ID
}

func (m listModel) filtering() bool {
	return m.filter.Focused()
}

func (m *listModel) startFilter() tea.Cmd {
	m.table.Blur()
	return m.filter.Focus()
}

func (m *listModel) stopFilter() {
	m.filter.Blur()
	m.table.Focus()
}

func (m *listModel) toggleRegex() {
	m.view.SetRegex(!m.view.Regex())
	m.refresh()
}

func (m listModel) update(msg tea.Msg) (listModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.filtering() {
		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() != m.view.Query() {
			m.view.SetQuery(m.filter.Value())
			m.refresh()
		}
		return m, cmd
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m listModel) render() string {
	var b strings.Builder

	b.WriteString(m.filter.View())
	if m.view.Regex() {
		b.WriteString("  ")
		b.WriteString(focusedStyle.Render("[regex]"))
	}
	b.WriteString("\n")
	if m.filterErr != nil {
		b.WriteString(errorStyle.Render("Некорректное выражение: " + m.filterErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString("Нет записей")
		return b.String()
	}
	b.WriteString(m.table.View())
	return b.String()
}

func itemRow(item models.Metadata) table.Row {
	size := "-"
	if item.ArchiveSize != nil {
		size = utils.FormatBytes(*item.ArchiveSize)
	}
	deployed := "нет"
	if !item.DeployInfo.IsUnset() {
		deployed = "да"
	}
	return table.Row{
		utils.Truncate(item.Title, listColumns[0].Width),
		string(item.ContentType),
		utils.Truncate(item.Platform.Label(), listColumns[2].Width),
		utils.Truncate(strings.Join(item.Tags, ", "), listColumns[3].Width),
		size,
		deployed,
	}
}
