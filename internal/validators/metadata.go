package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-library-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the display title.
	FieldTitle = "title"

	// FieldAlias targets the alternative titles list.
	FieldAlias = "alias"

	// FieldTags targets the tags list.
	FieldTags = "tags"

	FieldContentType = "content_type"
	FieldPlatform    = "platform"
	FieldArchiveInfo = "archive_info"
	FieldDeployInfo  = "deploy_info"

	// FieldFlagCreateArchive targets the archive creation request of an
	// update payload.
	FieldFlagCreateArchive = "flag_create_archive"
)

var editableFields = []string{
	FieldTitle,
	FieldAlias,
	FieldTags,
	FieldContentType,
	FieldPlatform,
	FieldArchiveInfo,
	FieldDeployInfo,
}

type MetadataValidator struct{}

func NewMetadataValidator() Validator {
	return &MetadataValidator{}
}

func (v *MetadataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EditableMetadata:
		return v.validateEditable(ctx, value, fields...)
	case *models.EditableMetadata:
		return v.validateEditable(ctx, *value, fields...)

	case models.MetadataOptional:
		return v.validateOptional(ctx, value, fields...)
	case *models.MetadataOptional:
		return v.validateOptional(ctx, *value, fields...)

	case models.Platform:
		return validatePlatform(value)
	case models.ArchiveInfo:
		return validateArchive(value)
	case models.DeployInfo:
		return validateDeploy(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *MetadataValidator) validateEditable(_ context.Context, m models.EditableMetadata, fields ...string) error {
	if len(fields) == 0 {
		fields = editableFields
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(m.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldAlias:
			if err := validateList(m.Alias); err != nil {
				return fmt.Errorf("%s: %w", FieldAlias, err)
			}
		case FieldTags:
			if err := validateList(m.Tags); err != nil {
				return fmt.Errorf("%s: %w", FieldTags, err)
			}
		case FieldContentType:
			if m.ContentType != nil && !m.ContentType.Valid() {
				return ErrInvalidContentType
			}
		case FieldPlatform:
			if err := validatePlatform(m.Platform); err != nil {
				return err
			}
		case FieldArchiveInfo:
			if err := validateArchive(m.ArchiveInfo); err != nil {
				return err
			}
		case FieldDeployInfo:
			if m.DeployInfo != nil {
				if err := validateDeploy(*m.DeployInfo); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MetadataValidator) validateOptional(ctx context.Context, opt models.MetadataOptional, fields ...string) error {
	if len(fields) == 0 {
		fields = append(append([]string{}, editableFields...), FieldFlagCreateArchive)
	}

	var editable []string
	for _, f := range fields {
		if f != FieldFlagCreateArchive {
			editable = append(editable, f)
			continue
		}
		if !opt.FlagCreateArchive {
			continue
		}
		if !opt.IsCreating() {
			return ErrArchiveOnUpdate
		}
		if opt.ArchiveInfo.IsUnset() {
			return ErrArchiveFlagWithUnset
		}
	}

	if len(editable) == 0 {
		return nil
	}
	return v.validateEditable(ctx, opt.EditableMetadata, editable...)
}

func validatePlatform(p models.Platform) error {
	switch p.Kind() {
	case models.PlatformUnknown:
		return nil
	case models.PlatformSteam, models.PlatformDLSite:
		if strings.TrimSpace(p.ID()) == "" {
			return ErrEmptyPlatformID
		}
	case models.PlatformOther:
		if strings.TrimSpace(p.Name()) == "" {
			return ErrEmptyPlatformName
		}
	default:
		return ErrUnknownPlatform
	}
	return nil
}

func validateArchive(a models.ArchiveInfo) error {
	switch a.Kind() {
	case models.ArchiveUnset:
		return nil
	case models.ArchiveFile, models.ArchiveCommonFile, models.ArchiveDirectory:
		if strings.TrimSpace(a.Path()) == "" {
			return ErrEmptyArchivePath
		}
	default:
		return ErrUnknownArchive
	}
	return nil
}

func validateDeploy(d models.DeployInfo) error {
	switch d.Kind() {
	case models.DeployUnset:
		return nil
	case models.DeployFile, models.DeployDirectory:
		if strings.TrimSpace(d.Path()) == "" {
			return ErrEmptyDeployPath
		}
	default:
		return ErrUnknownDeploy
	}
	return nil
}

func validateList(values []string) error {
	seen := make(map[string]struct{}, len(values))
	for i, value := range values {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w at index %d", ErrBlankEntry, i)
		}
		if _, ok := seen[value]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateEntry, value)
		}
		seen[value] = struct{}{}
	}
	return nil
}
