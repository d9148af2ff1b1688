package models

import "time"

// Metadata is a persisted library item as reported by the executor.
//
// ID is minted by the executor and never changes. TimeCreated and TimeUpdated
// are maintained by the executor and are never sent back by the client.
type Metadata struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Alias       []string    `json:"alias"`
	Tags        []string    `json:"tags"`
	ContentType ContentType `json:"content_type"`
	Platform    Platform    `json:"platform"`
	Description *string     `json:"description,omitempty"`
	Developer   *string     `json:"developer,omitempty"`
	Publisher   *string     `json:"publisher,omitempty"`
	Version     *string     `json:"version,omitempty"`
	ArchiveInfo ArchiveInfo `json:"archive_info"`
	ArchiveSize *uint64     `json:"archive_size,omitempty"`
	DeployInfo  DeployInfo  `json:"deploy_info"`
	TimeCreated time.Time   `json:"time_created"`
	TimeUpdated time.Time   `json:"time_updated"`
}

// Clone returns a deep copy that shares no slices or pointers with m.
func (m Metadata) Clone() Metadata {
	c := m
	c.Alias = cloneStrings(m.Alias)
	c.Tags = cloneStrings(m.Tags)
	c.Description = clonePtr(m.Description)
	c.Developer = clonePtr(m.Developer)
	c.Publisher = clonePtr(m.Publisher)
	c.Version = clonePtr(m.Version)
	c.ArchiveSize = clonePtr(m.ArchiveSize)
	return c
}

// ToEditable converts a persisted item into an editable working copy.
// Executor-maintained timestamps are dropped.
func (m Metadata) ToEditable() EditableMetadata {
	c := m.Clone()
	contentType := c.ContentType
	deploy := c.DeployInfo
	return EditableMetadata{
		ID:          c.ID,
		Title:       c.Title,
		Alias:       c.Alias,
		Tags:        c.Tags,
		ContentType: &contentType,
		Platform:    c.Platform,
		Description: c.Description,
		Developer:   c.Developer,
		Publisher:   c.Publisher,
		Version:     c.Version,
		ArchiveInfo: c.ArchiveInfo,
		ArchiveSize: c.ArchiveSize,
		DeployInfo:  &deploy,
	}
}

// EditableMetadata is the mutable mirror of [Metadata] used while editing.
// An empty ID means the item is being created.
type EditableMetadata struct {
	ID          string       `json:"id,omitempty"`
	Title       string       `json:"title"`
	Alias       []string     `json:"alias"`
	Tags        []string     `json:"tags"`
	ContentType *ContentType `json:"content_type,omitempty"`
	Platform    Platform     `json:"platform"`
	Description *string      `json:"description,omitempty"`
	Developer   *string      `json:"developer,omitempty"`
	Publisher   *string      `json:"publisher,omitempty"`
	Version     *string      `json:"version,omitempty"`
	ArchiveInfo ArchiveInfo  `json:"archive_info"`
	ArchiveSize *uint64      `json:"archive_size,omitempty"`
	DeployInfo  *DeployInfo  `json:"deploy_info,omitempty"`
}

// NewEditableMetadata returns the default working copy for a new item.
func NewEditableMetadata() EditableMetadata {
	contentType := ContentTypeOther
	return EditableMetadata{
		Alias:       []string{},
		Tags:        []string{},
		ContentType: &contentType,
		Platform:    UnknownPlatform(),
		ArchiveInfo: UnsetArchive(),
	}
}

// IsCreating reports whether the working copy has no executor-assigned id yet.
func (e EditableMetadata) IsCreating() bool {
	return e.ID == ""
}

// Clone returns a deep copy that shares no slices or pointers with e.
func (e EditableMetadata) Clone() EditableMetadata {
	c := e
	c.Alias = cloneStrings(e.Alias)
	c.Tags = cloneStrings(e.Tags)
	c.ContentType = clonePtr(e.ContentType)
	c.Description = clonePtr(e.Description)
	c.Developer = clonePtr(e.Developer)
	c.Publisher = clonePtr(e.Publisher)
	c.Version = clonePtr(e.Version)
	c.ArchiveSize = clonePtr(e.ArchiveSize)
	c.DeployInfo = clonePtr(e.DeployInfo)
	return c
}

// MetadataOptional is the payload of an update command. A missing ID requests
// creation; FlagCreateArchive asks the executor to build the archive while
// creating.
type MetadataOptional struct {
	EditableMetadata
	FlagCreateArchive bool `json:"flag_create_archive,omitempty"`
}

func cloneStrings(src []string) []string {
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
