package service

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-library-keeper/models"
)

// tagSeparators splits tag input on whitespace and ASCII or full-width
// commas and semicolons, and on pipes.
var tagSeparators = regexp.MustCompile(`[\s，,；;|]+`)

// SplitTags splits raw tag input into non-empty tokens in input order.
func SplitTags(input string) []string {
	parts := tagSeparators.Split(strings.TrimSpace(input), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// sanitize trims every string field in place, union payloads included.
// Blank optional strings become absent and blank list entries are dropped.
func sanitize(m *models.EditableMetadata) {
	m.Title = strings.TrimSpace(m.Title)
	m.Alias = sanitizeList(m.Alias)
	m.Tags = sanitizeList(m.Tags)
	m.Description = sanitizeOptional(m.Description)
	m.Developer = sanitizeOptional(m.Developer)
	m.Publisher = sanitizeOptional(m.Publisher)
	m.Version = sanitizeOptional(m.Version)

	m.Platform = sanitizePlatform(m.Platform)
	m.ArchiveInfo = sanitizeArchive(m.ArchiveInfo)
	if m.DeployInfo != nil {
		d := sanitizeDeploy(*m.DeployInfo)
		m.DeployInfo = &d
	}
}

func sanitizePlatform(p models.Platform) models.Platform {
	id := strings.TrimSpace(p.ID())
	switch p.Kind() {
	case models.PlatformSteam:
		return models.SteamPlatform(id)
	case models.PlatformDLSite:
		return models.DLSitePlatform(id)
	case models.PlatformOther:
		return models.OtherPlatform(strings.TrimSpace(p.Name()), id)
	}
	return p
}

func sanitizeArchive(a models.ArchiveInfo) models.ArchiveInfo {
	path := strings.TrimSpace(a.Path())
	switch a.Kind() {
	case models.ArchiveFile:
		return models.ArchiveFileInfo(path, strings.TrimSpace(a.Password()))
	case models.ArchiveCommonFile:
		return models.CommonFileInfo(path)
	case models.ArchiveDirectory:
		return models.DirectoryArchiveInfo(path)
	}
	return a
}

func sanitizeDeploy(d models.DeployInfo) models.DeployInfo {
	path := strings.TrimSpace(d.Path())
	switch d.Kind() {
	case models.DeployFile:
		return models.FileDeploy(path)
	case models.DeployDirectory:
		return models.DirectoryDeploy(path)
	}
	return d
}

func sanitizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func sanitizeOptional(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
