package models

import (
	"fmt"
)

// ArchiveKind identifies the active variant of an [ArchiveInfo].
type ArchiveKind string

const (
	ArchiveUnset      ArchiveKind = "Unset"
	ArchiveFile       ArchiveKind = "ArchiveFile"
	ArchiveCommonFile ArchiveKind = "CommonFile"
	ArchiveDirectory  ArchiveKind = "Directory"
)

// ArchiveKinds lists every archive variant in display order.
var ArchiveKinds = []ArchiveKind{ArchiveUnset, ArchiveFile, ArchiveCommonFile, ArchiveDirectory}

// ArchiveInfo describes where the archived copy of an item lives.
//
// Tagged union of Unset, ArchiveFile{path, password?}, CommonFile{path} and
// Directory{path}; the zero value is Unset.
type ArchiveInfo struct {
	kind     ArchiveKind
	path     string
	password string
}

// UnsetArchive returns the Unset variant.
func UnsetArchive() ArchiveInfo { return ArchiveInfo{} }

// ArchiveFileInfo returns the ArchiveFile{path, password?} variant. An empty
// password means none.
func ArchiveFileInfo(path, password string) ArchiveInfo {
	return ArchiveInfo{kind: ArchiveFile, path: path, password: password}
}

// CommonFileInfo returns the CommonFile{path} variant.
func CommonFileInfo(path string) ArchiveInfo {
	return ArchiveInfo{kind: ArchiveCommonFile, path: path}
}

// DirectoryArchiveInfo returns the Directory{path} variant.
func DirectoryArchiveInfo(path string) ArchiveInfo {
	return ArchiveInfo{kind: ArchiveDirectory, path: path}
}

// Kind reports the active variant.
func (a ArchiveInfo) Kind() ArchiveKind {
	if a.kind == "" {
		return ArchiveUnset
	}
	return a.kind
}

// Path returns the archive location, or "" for Unset.
func (a ArchiveInfo) Path() string { return a.path }

// Password returns the archive password of the ArchiveFile variant, or "".
func (a ArchiveInfo) Password() string { return a.password }

func (a ArchiveInfo) IsUnset() bool { return a.Kind() == ArchiveUnset }

type archivePathPayload struct {
	Path string `json:"path"`
}

type archiveFilePayload struct {
	Path     string `json:"path"`
	Password string `json:"password,omitempty"`
}

func (a ArchiveInfo) MarshalJSON() ([]byte, error) {
	switch a.Kind() {
	case ArchiveUnset:
		return marshalVariant(string(ArchiveUnset), nil)
	case ArchiveFile:
		return marshalVariant(string(ArchiveFile), archiveFilePayload{Path: a.path, Password: a.password})
	case ArchiveCommonFile, ArchiveDirectory:
		return marshalVariant(string(a.kind), archivePathPayload{Path: a.path})
	default:
		return nil, fmt.Errorf("%w: archive %q", ErrUnknownVariant, a.kind)
	}
}

func (a *ArchiveInfo) UnmarshalJSON(data []byte) error {
	tag, payload, err := unmarshalVariant(data)
	if err != nil {
		return fmt.Errorf("archive_info: %w", err)
	}

	switch ArchiveKind(tag) {
	case ArchiveUnset:
		if payload != nil {
			return fmt.Errorf("archive_info: %w: Unset carries no payload", ErrMalformedVariant)
		}
		*a = UnsetArchive()
	case ArchiveFile:
		var v archiveFilePayload
		if err = decodePayload(tag, payload, &v); err != nil {
			return fmt.Errorf("archive_info: %w", err)
		}
		*a = ArchiveFileInfo(v.Path, v.Password)
	case ArchiveCommonFile, ArchiveDirectory:
		var v archivePathPayload
		if err = decodePayload(tag, payload, &v); err != nil {
			return fmt.Errorf("archive_info: %w", err)
		}
		*a = ArchiveInfo{kind: ArchiveKind(tag), path: v.Path}
	default:
		return fmt.Errorf("archive_info: %w: %q", ErrUnknownVariant, tag)
	}
	return nil
}

// ParseArchiveKind converts a selector string to an [ArchiveKind].
func ParseArchiveKind(s string) (ArchiveKind, error) {
	for _, k := range ArchiveKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: archive %q", ErrUnknownVariant, s)
}
