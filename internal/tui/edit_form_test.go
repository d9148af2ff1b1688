package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/models"
)

func newTestForm(t *testing.T) formModel {
	t.Helper()
	session := service.NewEditSession(nil, nil, logger.Nop())
	return newFormModel(session)
}

func formKey(t *testing.T, f formModel, k tea.KeyMsg) formModel {
	t.Helper()
	f, _ = f.update(k)
	return f
}

func formType(t *testing.T, f formModel, s string) formModel {
	t.Helper()
	for _, r := range s {
		f = formKey(t, f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func focusField(t *testing.T, f formModel, target formField) formModel {
	t.Helper()
	for range fieldCount {
		if f.focus == target {
			return f
		}
		f = formKey(t, f, tea.KeyMsg{Type: tea.KeyTab})
	}
	require.Equal(t, target, f.focus, "field is not reachable")
	return f
}

func TestForm_AddTags(t *testing.T) {
	f := newTestForm(t)
	f = focusField(t, f, fieldTags)

	f = formType(t, f, "a, b a")
	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"a", "b"}, f.session.Working().Tags)
	assert.Equal(t, "Уже есть: a", f.notice)
	assert.Empty(t, f.inputs[fieldTags].Value())

	// повторный ввод тех же тегов ничего не добавляет
	f = formType(t, f, "b")
	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, f.noticeErr)
	assert.Equal(t, "b", f.inputs[fieldTags].Value())

	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Equal(t, []string{"a"}, f.session.Working().Tags)
}

func TestForm_AddAlias(t *testing.T) {
	f := newTestForm(t)
	f = focusField(t, f, fieldAlias)

	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, f.noticeErr)
	assert.Equal(t, "Пустое значение", f.notice)

	f = formType(t, f, "AQ")
	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"AQ"}, f.session.Working().Alias)

	f = formType(t, f, "AQ")
	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Уже есть в списке", f.notice)
}

func TestForm_SelectorControlsVisibleFields(t *testing.T) {
	f := newTestForm(t)

	assert.False(t, f.visible(fieldPlatformID))
	assert.False(t, f.visible(fieldArchivePath))
	assert.False(t, f.visible(fieldDeployPath))

	f = focusField(t, f, fieldPlatformKind)
	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.PlatformSteam, models.PlatformKinds[f.platformKind])
	assert.True(t, f.visible(fieldPlatformID))
	assert.False(t, f.visible(fieldPlatformName))

	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyLeft})
	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, models.PlatformOther, models.PlatformKinds[f.platformKind])
	assert.True(t, f.visible(fieldPlatformName))
}

func TestForm_TabSkipsHiddenFields(t *testing.T) {
	f := newTestForm(t)
	f = focusField(t, f, fieldPlatformKind)

	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldArchiveKind, f.focus)

	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldPlatformKind, f.focus)
}

func TestForm_GeneratePassword(t *testing.T) {
	f := newTestForm(t)

	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.True(t, f.noticeErr)
	assert.Empty(t, f.inputs[fieldArchivePassword].Value())

	f = focusField(t, f, fieldArchiveKind)
	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, models.ArchiveFile, models.ArchiveKinds[f.archiveKind])

	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.False(t, f.noticeErr)
	assert.Len(t, f.inputs[fieldArchivePassword].Value(), 8)
}

func TestForm_ApplyComposesPayload(t *testing.T) {
	f := newTestForm(t)
	f = formType(t, f, "  Alpha  ")

	f = focusField(t, f, fieldPlatformKind)
	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyRight})
	f.inputs[fieldPlatformID].SetValue(" 1234 ")

	f = focusField(t, f, fieldArchiveKind)
	f = formKey(t, f, tea.KeyMsg{Type: tea.KeyRight})
	f.inputs[fieldArchivePath].SetValue("games/alpha.7z")
	f.inputs[fieldArchiveSize].SetValue("2048")

	require.NoError(t, f.apply())

	opt, err := f.session.Compose()
	require.NoError(t, err)
	assert.Equal(t, "Alpha", opt.Title)
	assert.Equal(t, models.SteamPlatform("1234"), opt.Platform)
	assert.Equal(t, models.ArchiveFileInfo("games/alpha.7z", ""), opt.ArchiveInfo)
	require.NotNil(t, opt.ArchiveSize)
	assert.Equal(t, uint64(2048), *opt.ArchiveSize)
	assert.Nil(t, opt.Developer)
	assert.Nil(t, opt.DeployInfo)
	assert.True(t, opt.FlagCreateArchive)
}

func TestForm_ApplyRejectsBadSize(t *testing.T) {
	f := newTestForm(t)
	f.inputs[fieldArchiveSize].SetValue("-1")

	err := f.apply()
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "archive_size", verr.Field)
}
