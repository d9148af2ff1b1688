package tui

type confirmAction int

const (
	confirmRemove confirmAction = iota
	confirmClear
)

type confirmModel struct {
	action  confirmAction
	id      string
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
