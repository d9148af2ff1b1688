package tui

import (
	"strings"

	"github.com/MKhiriev/go-library-keeper/internal/utils"
	"github.com/MKhiriev/go-library-keeper/models"
)

const timeLayout = "2006-01-02 15:04:05"

func renderDetail(item models.Metadata) string {
	lines := []string{
		field("ID", item.ID),
		field("Название", item.Title),
		field("Псевдонимы", listOrDash(item.Alias)),
		field("Теги", listOrDash(item.Tags)),
		field("Тип", string(item.ContentType)),
		field("Платформа", item.Platform.Label()),
		field("Разработчик", valueOrDash(item.Developer)),
		field("Издатель", valueOrDash(item.Publisher)),
		field("Версия", valueOrDash(item.Version)),
		"",
		field("Архив", archiveLabel(item.ArchiveInfo)),
		field("Размер архива", archiveSize(item.ArchiveSize)),
		field("Развёртка", deployLabel(item.DeployInfo)),
		"",
		field("Создано", item.TimeCreated.Local().Format(timeLayout)),
		field("Изменено", item.TimeUpdated.Local().Format(timeLayout)),
	}

	if item.Description != nil && *item.Description != "" {
		lines = append(lines, "", "Описание:", *item.Description)
	}

	return strings.Join(lines, "\n")
}

func archiveLabel(a models.ArchiveInfo) string {
	if a.IsUnset() {
		return "-"
	}
	label := string(a.Kind()) + ": " + a.Path()
	if a.Password() != "" {
		label += " (с паролем)"
	}
	return label
}

func deployLabel(d models.DeployInfo) string {
	if d.IsUnset() {
		return "-"
	}
	return string(d.Kind()) + ": " + d.Path()
}

func archiveSize(size *uint64) string {
	if size == nil {
		return "-"
	}
	return utils.FormatBytes(*size)
}

// copyTarget picks what the copy key puts on the clipboard: the archive
// password when there is one, otherwise the archive path, otherwise the title.
func copyTarget(item models.Metadata) (string, string) {
	if pw := item.ArchiveInfo.Password(); pw != "" {
		return pw, "Пароль архива скопирован"
	}
	if p := item.ArchiveInfo.Path(); p != "" {
		return p, "Путь архива скопирован"
	}
	return item.Title, "Название скопировано"
}
