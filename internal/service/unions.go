package service

import (
	"fmt"

	"github.com/MKhiriev/go-library-keeper/models"
)

// FlatUnions is the form view of the three metadata unions: a variant
// selector plus the scalar fields any variant of that union may use.
// Scalars of inactive variants are kept so switching back restores them.
type FlatUnions struct {
	PlatformKind models.PlatformKind
	PlatformID   string
	PlatformName string

	ArchiveKind     models.ArchiveKind
	ArchivePath     string
	ArchivePassword string

	DeployKind models.DeployKind
	DeployPath string
}

// Decompose flattens the unions of m.
func Decompose(m models.EditableMetadata) FlatUnions {
	f := FlatUnions{
		PlatformKind: m.Platform.Kind(),
		PlatformID:   m.Platform.ID(),
		PlatformName: m.Platform.Name(),

		ArchiveKind:     m.ArchiveInfo.Kind(),
		ArchivePath:     m.ArchiveInfo.Path(),
		ArchivePassword: m.ArchiveInfo.Password(),

		DeployKind: models.DeployUnset,
	}
	if m.DeployInfo != nil {
		f.DeployKind = m.DeployInfo.Kind()
		f.DeployPath = m.DeployInfo.Path()
	}
	return f
}

// MapPlatform builds the platform variant selected by kind. It is the exact
// inverse of [Decompose]: scalars are taken as they are, and an empty Other
// id means absent.
func MapPlatform(kind models.PlatformKind, id, name string) (models.Platform, error) {
	switch kind {
	case models.PlatformUnknown, "":
		return models.UnknownPlatform(), nil
	case models.PlatformSteam:
		return models.SteamPlatform(id), nil
	case models.PlatformDLSite:
		return models.DLSitePlatform(id), nil
	case models.PlatformOther:
		return models.OtherPlatform(name, id), nil
	default:
		return models.Platform{}, fmt.Errorf("%w: platform %q", models.ErrUnknownVariant, kind)
	}
}

// MapArchiveInfo builds the archive variant selected by kind. The password
// only survives for ArchiveFile.
func MapArchiveInfo(kind models.ArchiveKind, path, password string) (models.ArchiveInfo, error) {
	switch kind {
	case models.ArchiveUnset, "":
		return models.UnsetArchive(), nil
	case models.ArchiveFile:
		return models.ArchiveFileInfo(path, password), nil
	case models.ArchiveCommonFile:
		return models.CommonFileInfo(path), nil
	case models.ArchiveDirectory:
		return models.DirectoryArchiveInfo(path), nil
	default:
		return models.ArchiveInfo{}, fmt.Errorf("%w: archive %q", models.ErrUnknownVariant, kind)
	}
}

func MapDeployInfo(kind models.DeployKind, path string) (models.DeployInfo, error) {
	switch kind {
	case models.DeployUnset, "":
		return models.UnsetDeploy(), nil
	case models.DeployFile:
		return models.FileDeploy(path), nil
	case models.DeployDirectory:
		return models.DirectoryDeploy(path), nil
	default:
		return models.DeployInfo{}, fmt.Errorf("%w: deploy %q", models.ErrUnknownVariant, kind)
	}
}
