package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/models"
)

type formField int

const (
	fieldTitle formField = iota
	fieldAlias
	fieldTags
	fieldContentType
	fieldPlatformKind
	fieldPlatformID
	fieldPlatformName
	fieldArchiveKind
	fieldArchivePath
	fieldArchivePassword
	fieldArchiveSize
	fieldDeployKind
	fieldDeployPath
	fieldDescription
	fieldDeveloper
	fieldPublisher
	fieldVersion
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTitle:           "Название",
	fieldAlias:           "Псевдонимы",
	fieldTags:            "Теги",
	fieldContentType:     "Тип",
	fieldPlatformKind:    "Платформа",
	fieldPlatformID:      "ID на платформе",
	fieldPlatformName:    "Имя платформы",
	fieldArchiveKind:     "Архив",
	fieldArchivePath:     "Путь архива",
	fieldArchivePassword: "Пароль архива",
	fieldArchiveSize:     "Размер (байт)",
	fieldDeployKind:      "Развёртка",
	fieldDeployPath:      "Путь развёртки",
	fieldDescription:     "Описание",
	fieldDeveloper:       "Разработчик",
	fieldPublisher:       "Издатель",
	fieldVersion:         "Версия",
}

// formModel edits one item through an [service.EditSession]. Scalar inputs
// are pushed into the session on submit; aliases and tags go in as they are
// entered.
type formModel struct {
	session *service.EditSession
	focus   formField
	inputs  [fieldCount]textinput.Model

	contentType  int
	platformKind int
	archiveKind  int
	deployKind   int

	notice    string
	noticeErr bool
}

func newFormModel(session *service.EditSession) formModel {
	w := session.Working()
	u := session.Unions()

	m := formModel{session: session}
	for f := range fieldCount {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 1024
		ti.Width = 48
		m.inputs[f] = ti
	}
	m.inputs[fieldArchivePassword].EchoMode = textinput.EchoPassword
	m.inputs[fieldAlias].Placeholder = "enter: добавить"
	m.inputs[fieldTags].Placeholder = "через пробел или запятую, enter: добавить"

	m.inputs[fieldTitle].SetValue(w.Title)
	m.inputs[fieldPlatformID].SetValue(u.PlatformID)
	m.inputs[fieldPlatformName].SetValue(u.PlatformName)
	m.inputs[fieldArchivePath].SetValue(u.ArchivePath)
	m.inputs[fieldArchivePassword].SetValue(u.ArchivePassword)
	m.inputs[fieldDeployPath].SetValue(u.DeployPath)
	m.inputs[fieldDescription].SetValue(deref(w.Description))
	m.inputs[fieldDeveloper].SetValue(deref(w.Developer))
	m.inputs[fieldPublisher].SetValue(deref(w.Publisher))
	m.inputs[fieldVersion].SetValue(deref(w.Version))
	if w.ArchiveSize != nil {
		m.inputs[fieldArchiveSize].SetValue(strconv.FormatUint(*w.ArchiveSize, 10))
	}

	if w.ContentType != nil {
		m.contentType = max(slices.Index(models.ContentTypes, *w.ContentType), 0)
	}
	m.platformKind = max(slices.Index(models.PlatformKinds, u.PlatformKind), 0)
	m.archiveKind = max(slices.Index(models.ArchiveKinds, u.ArchiveKind), 0)
	m.deployKind = max(slices.Index(models.DeployKinds, u.DeployKind), 0)

	m.inputs[fieldTitle].Focus()
	return m
}

// focusOn moves focus to f, used after the form is rebuilt from the session.
func (m *formModel) focusOn(f formField) {
	m.inputs[m.focus].Blur()
	m.focus = f
	if !isSelector(f) {
		m.inputs[f].Focus()
	}
}

func isSelector(f formField) bool {
	switch f {
	case fieldContentType, fieldPlatformKind, fieldArchiveKind, fieldDeployKind:
		return true
	}
	return false
}

// visible hides payload inputs that the selected variant does not carry.
func (m formModel) visible(f formField) bool {
	switch f {
	case fieldPlatformID:
		return models.PlatformKinds[m.platformKind] != models.PlatformUnknown
	case fieldPlatformName:
		return models.PlatformKinds[m.platformKind] == models.PlatformOther
	case fieldArchivePath:
		return models.ArchiveKinds[m.archiveKind] != models.ArchiveUnset
	case fieldArchivePassword:
		return models.ArchiveKinds[m.archiveKind] == models.ArchiveFile
	case fieldDeployPath:
		return models.DeployKinds[m.deployKind] != models.DeployUnset
	}
	return true
}

func (m *formModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	next := m.focus
	for range fieldCount {
		next = formField((int(next) + delta + int(fieldCount)) % int(fieldCount))
		if m.visible(next) {
			break
		}
	}
	m.focus = next
	if !isSelector(next) {
		m.inputs[next].Focus()
	}
}

func (m *formModel) cycle(delta int) {
	step := func(i, n int) int { return (i + delta + n) % n }
	switch m.focus {
	case fieldContentType:
		m.contentType = step(m.contentType, len(models.ContentTypes))
	case fieldPlatformKind:
		m.platformKind = step(m.platformKind, len(models.PlatformKinds))
	case fieldArchiveKind:
		m.archiveKind = step(m.archiveKind, len(models.ArchiveKinds))
	case fieldDeployKind:
		m.deployKind = step(m.deployKind, len(models.DeployKinds))
	}
}

func (m *formModel) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *formModel) addEntry() {
	input := m.inputs[m.focus].Value()
	switch m.focus {
	case fieldAlias:
		if err := m.session.AddAlias(input); err != nil {
			m.setNotice(entryError(err), true)
			return
		}
		m.setNotice("", false)
	case fieldTags:
		res, err := m.session.AddTag(input)
		if err != nil {
			m.setNotice(entryError(err), true)
			return
		}
		if len(res.Duplicates) > 0 {
			m.setNotice("Уже есть: "+strings.Join(res.Duplicates, ", "), false)
		} else {
			m.setNotice("", false)
		}
	default:
		return
	}
	m.inputs[m.focus].SetValue("")
}

func (m *formModel) deleteLastEntry() {
	w := m.session.Working()
	switch m.focus {
	case fieldAlias:
		m.session.DelAlias(len(w.Alias) - 1)
	case fieldTags:
		m.session.DelTag(len(w.Tags) - 1)
	}
}

func (m *formModel) generatePassword() {
	if models.ArchiveKinds[m.archiveKind] != models.ArchiveFile {
		m.setNotice("Пароль задаётся только для архива ArchiveFile", true)
		return
	}
	pw, err := m.session.GenerateArchivePassword()
	if err != nil {
		m.setNotice(err.Error(), true)
		return
	}
	m.inputs[fieldArchivePassword].SetValue(pw)
	m.setNotice("Пароль сгенерирован", false)
}

// apply pushes the scalar inputs and selectors into the session.
func (m formModel) apply() error {
	s := m.session
	s.SetTitle(m.inputs[fieldTitle].Value())
	s.SetContentType(models.ContentTypes[m.contentType])
	s.SetUnions(service.FlatUnions{
		PlatformKind:    models.PlatformKinds[m.platformKind],
		PlatformID:      m.inputs[fieldPlatformID].Value(),
		PlatformName:    m.inputs[fieldPlatformName].Value(),
		ArchiveKind:     models.ArchiveKinds[m.archiveKind],
		ArchivePath:     m.inputs[fieldArchivePath].Value(),
		ArchivePassword: m.inputs[fieldArchivePassword].Value(),
		DeployKind:      models.DeployKinds[m.deployKind],
		DeployPath:      m.inputs[fieldDeployPath].Value(),
	})
	s.SetDescription(m.inputs[fieldDescription].Value())
	s.SetDeveloper(m.inputs[fieldDeveloper].Value())
	s.SetPublisher(m.inputs[fieldPublisher].Value())
	s.SetVersion(m.inputs[fieldVersion].Value())

	raw := strings.TrimSpace(m.inputs[fieldArchiveSize].Value())
	if raw == "" {
		s.SetArchiveSize(nil)
		return nil
	}
	size, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return &service.ValidationError{Field: "archive_size", Value: raw, Reason: errors.New("not a byte count")}
	}
	s.SetArchiveSize(&size)
	return nil
}

// update handles form-local keys. Submit and cancel are handled by the app.
func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(k, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(k, keys.genPass):
			m.generatePassword()
			return m, nil
		case isSelector(m.focus) && key.Matches(k, keys.left):
			m.cycle(-1)
			return m, nil
		case isSelector(m.focus) && key.Matches(k, keys.right):
			m.cycle(1)
			return m, nil
		case key.Matches(k, keys.enter):
			if m.focus == fieldAlias || m.focus == fieldTags {
				m.addEntry()
			} else {
				m.moveFocus(1)
			}
			return m, nil
		case key.Matches(k, keys.delEntry):
			m.deleteLastEntry()
			return m, nil
		}
	}

	if isSelector(m.focus) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) render() string {
	w := m.session.Working()
	var b strings.Builder

	for f := range fieldCount {
		if !m.visible(f) {
			continue
		}

		label := labelStyle.Render(fieldLabels[f] + ":")
		if f == m.focus {
			label = focusedStyle.Render("> ") + label
		} else {
			label = "  " + label
		}
		b.WriteString(label)

		switch f {
		case fieldContentType:
			b.WriteString(selectorValue(string(models.ContentTypes[m.contentType]), f == m.focus))
		case fieldPlatformKind:
			b.WriteString(selectorValue(string(models.PlatformKinds[m.platformKind]), f == m.focus))
		case fieldArchiveKind:
			b.WriteString(selectorValue(string(models.ArchiveKinds[m.archiveKind]), f == m.focus))
		case fieldDeployKind:
			b.WriteString(selectorValue(string(models.DeployKinds[m.deployKind]), f == m.focus))
		case fieldAlias:
			b.WriteString(listOrDash(w.Alias))
			b.WriteString("\n" + strings.Repeat(" ", 20) + m.inputs[f].View())
		case fieldTags:
			b.WriteString(listOrDash(w.Tags))
			b.WriteString("\n" + strings.Repeat(" ", 20) + m.inputs[f].View())
		default:
			b.WriteString(m.inputs[f].View())
		}
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		if m.noticeErr {
			b.WriteString(errorStyle.Render(m.notice))
		} else {
			b.WriteString(statusStyle.Render(m.notice))
		}
	}
	return b.String()
}

func (m formModel) title() string {
	if m.session.IsCreating() {
		return "Новая запись"
	}
	return fmt.Sprintf("Изменение: %s", m.session.Working().Title)
}

func selectorValue(v string, focused bool) string {
	if focused {
		return focusedStyle.Render("‹ " + v + " ›")
	}
	return v
}

func entryError(err error) string {
	switch {
	case errors.Is(err, service.ErrBlankValue):
		return "Пустое значение"
	case errors.Is(err, service.ErrDuplicateValue):
		return "Уже есть в списке"
	}
	return err.Error()
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
