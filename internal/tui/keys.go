package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	filter   key.Binding
	regex    key.Binding
	reload   key.Binding
	newItem  key.Binding
	edit     key.Binding
	remove   key.Binding
	deploy   key.Binding
	undeploy key.Binding
	open     key.Binding
	openDir  key.Binding
	copy     key.Binding
	export   key.Binding
	importLb key.Binding
	clear    key.Binding
	info     key.Binding
	save     key.Binding
	delEntry key.Binding
	genPass  key.Binding
	fetch    key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "вверх")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "вниз")),
	left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "пред. вариант")),
	right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "след. вариант")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "открыть")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "назад")),
	tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "след. поле")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "пред. поле")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "выход")),
	filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "фильтр")),
	regex:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "regex")),
	reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "обновить")),
	newItem:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "новая")),
	edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "изменить")),
	remove:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "удалить")),
	deploy:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "развернуть")),
	undeploy: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "свернуть")),
	open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "открыть архив")),
	openDir:  key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "открыть развёртку")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "копировать")),
	export:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "экспорт")),
	importLb: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "импорт")),
	clear:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "очистить")),
	info:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "о программе")),
	save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "сохранить")),
	delEntry: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "удалить последний")),
	genPass:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "сгенерировать пароль")),
	fetch:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "данные DLSite")),
	yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "да")),
	no:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "нет")),
}

// helpLine renders the short help of bindings separated by two spaces.
func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
