package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// promptModel asks for the deploy target of one item.
type promptModel struct {
	id    string
	title string
	input textinput.Model
}

func newDeployPrompt(id, title, initial string) promptModel {
	ti := textinput.New()
	ti.Placeholder = "каталог назначения"
	ti.CharLimit = 1024
	ti.Width = 48
	ti.SetValue(initial)
	ti.Focus()

	return promptModel{id: id, title: title, input: ti}
}

func (m promptModel) View() string {
	content := "Развернуть \"" + m.title + "\" в:\n\n"
	content += m.input.View() + "\n\n"
	content += "enter развернуть    esc отмена"
	return overlayBoxStyle.Render(content)
}
