package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle           = errors.New("title is required")
	ErrInvalidContentType   = errors.New("invalid content type")
	ErrEmptyPlatformID      = errors.New("platform id is required")
	ErrEmptyPlatformName    = errors.New("platform name is required")
	ErrUnknownPlatform      = errors.New("unknown platform")
	ErrEmptyArchivePath     = errors.New("archive path is required")
	ErrUnknownArchive       = errors.New("unknown archive kind")
	ErrEmptyDeployPath      = errors.New("deploy path is required")
	ErrUnknownDeploy        = errors.New("unknown deploy kind")
	ErrBlankEntry           = errors.New("list entry is blank")
	ErrDuplicateEntry       = errors.New("list entry is duplicated")
	ErrArchiveOnUpdate      = errors.New("archive creation is only allowed for new items")
	ErrArchiveFlagWithUnset = errors.New("archive creation requires an archive target")
)
