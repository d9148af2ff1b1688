package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
	"github.com/MKhiriev/go-library-keeper/internal/validators"
	"github.com/MKhiriev/go-library-keeper/models"
)

// TagResult reports what a single AddTag call did.
type TagResult struct {
	Added      []string
	Duplicates []string
}

// EditSession holds a private working copy of one item while it is edited.
// It is not safe for concurrent use.
type EditSession struct {
	store     LibraryStore
	validator validators.Validator

	working models.EditableMetadata
	unions  FlatUnions

	logger *logger.Logger
}

// NewEditSession returns a session holding the create defaults. validator
// may be nil.
func NewEditSession(store LibraryStore, validator validators.Validator, log *logger.Logger) *EditSession {
	s := &EditSession{
		store:     store,
		validator: validator,
		logger:    log,
	}
	s.Reset()
	return s
}

// Bind loads a deep copy of the cached item with id into the session. An
// empty or unknown id resets to the create defaults. It reports whether an
// existing item was bound.
func (s *EditSession) Bind(id string) bool {
	if id != "" {
		if item, ok := s.store.Find(id); ok {
			s.working = item.ToEditable()
			s.unions = Decompose(s.working)
			return true
		}
		s.logger.Warn().Str("id", id).Msg("item not in library, editing a new item instead")
	}
	s.Reset()
	return false
}

// Reset discards the working copy and starts a new item.
func (s *EditSession) Reset() {
	s.working = models.NewEditableMetadata()
	s.unions = Decompose(s.working)
}

// Working returns a deep copy of the working copy with its unions as last
// bound, not as currently selected in the flat fields.
func (s *EditSession) Working() models.EditableMetadata {
	return s.working.Clone()
}

func (s *EditSession) IsCreating() bool {
	return s.working.IsCreating()
}

func (s *EditSession) Unions() FlatUnions {
	return s.unions
}

func (s *EditSession) SetUnions(f FlatUnions) {
	s.unions = f
}

func (s *EditSession) SetTitle(title string) {
	s.working.Title = title
}

func (s *EditSession) SetContentType(c models.ContentType) {
	s.working.ContentType = &c
}

func (s *EditSession) SetDescription(v string) { s.working.Description = &v }
func (s *EditSession) SetDeveloper(v string)   { s.working.Developer = &v }
func (s *EditSession) SetPublisher(v string)   { s.working.Publisher = &v }
func (s *EditSession) SetVersion(v string)     { s.working.Version = &v }

// SetArchiveSize sets the archive size in bytes; nil clears it.
func (s *EditSession) SetArchiveSize(size *uint64) {
	if size == nil {
		s.working.ArchiveSize = nil
		return
	}
	v := *size
	s.working.ArchiveSize = &v
}

// AddAlias appends one alias. Blank and already present aliases are
// rejected and leave the list unchanged.
func (s *EditSession) AddAlias(alias string) error {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return &ValidationError{Field: "alias", Reason: ErrBlankValue}
	}
	if slices.Contains(s.working.Alias, alias) {
		return &ValidationError{Field: "alias", Value: alias, Reason: ErrDuplicateValue}
	}
	s.working.Alias = append(s.working.Alias, alias)
	return nil
}

// AddTag splits input into tokens and appends those not already present.
// Tokens already present, or repeated within input, are reported as
// duplicates. An error is returned only when nothing was added.
func (s *EditSession) AddTag(input string) (TagResult, error) {
	var res TagResult

	tokens := SplitTags(input)
	if len(tokens) == 0 {
		return res, &ValidationError{Field: "tags", Reason: ErrBlankValue}
	}

	for _, tag := range tokens {
		if slices.Contains(s.working.Tags, tag) {
			res.Duplicates = append(res.Duplicates, tag)
			continue
		}
		s.working.Tags = append(s.working.Tags, tag)
		res.Added = append(res.Added, tag)
	}

	if len(res.Added) == 0 {
		return res, &ValidationError{Field: "tags", Value: strings.Join(res.Duplicates, ", "), Reason: ErrDuplicateValue}
	}
	return res, nil
}

// DLSiteID returns the trimmed id of the selected DLSite platform, or ""
// when another platform is selected.
func (s *EditSession) DLSiteID() string {
	if s.unions.PlatformKind != models.PlatformDLSite {
		return ""
	}
	return strings.TrimSpace(s.unions.PlatformID)
}

// ApplyDLSite pre-fills the working copy from a DLSite product page. Title,
// developer and description are only set when blank; the circle becomes the
// developer. Page tags are added unless already present. Values already
// entered are never overwritten.
func (s *EditSession) ApplyDLSite(info models.DLSiteInfo) TagResult {
	if strings.TrimSpace(s.working.Title) == "" {
		s.working.Title = strings.TrimSpace(info.Title)
	}
	if isBlank(s.working.Developer) {
		if circle := strings.TrimSpace(info.Circle); circle != "" {
			s.working.Developer = &circle
		}
	}
	if isBlank(s.working.Description) {
		if text := strings.TrimSpace(info.DescriptionText()); text != "" {
			s.working.Description = &text
		}
	}

	var res TagResult
	for _, tag := range info.Tags {
		tag = strings.TrimSpace(tag)
		switch {
		case tag == "":
		case slices.Contains(s.working.Tags, tag):
			res.Duplicates = append(res.Duplicates, tag)
		default:
			s.working.Tags = append(s.working.Tags, tag)
			res.Added = append(res.Added, tag)
		}
	}
	return res
}

func isBlank(p *string) bool {
	return p == nil || strings.TrimSpace(*p) == ""
}

// DelAlias removes the alias at index i. Out of range is a no-op.
func (s *EditSession) DelAlias(i int) {
	if i < 0 || i >= len(s.working.Alias) {
		return
	}
	s.working.Alias = slices.Delete(s.working.Alias, i, i+1)
}

// DelTag removes the tag at index i. Out of range is a no-op.
func (s *EditSession) DelTag(i int) {
	if i < 0 || i >= len(s.working.Tags) {
		return
	}
	s.working.Tags = slices.Delete(s.working.Tags, i, i+1)
}

// GenerateArchivePassword stores a fresh random archive password in the
// flat fields and returns it.
func (s *EditSession) GenerateArchivePassword() (string, error) {
	pw, err := utils.GeneratePassword(utils.DefaultPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generate archive password: %w", err)
	}
	s.unions.ArchivePassword = pw
	return pw, nil
}

// Compose builds the update payload from the working copy: unions are
// rebuilt from the flat fields, the result is deep copied and sanitized,
// and archive creation is requested when a new item has an archive target.
// The session itself is not modified.
func (s *EditSession) Compose() (models.MetadataOptional, error) {
	platform, err := MapPlatform(s.unions.PlatformKind, s.unions.PlatformID, s.unions.PlatformName)
	if err != nil {
		return models.MetadataOptional{}, err
	}
	archive, err := MapArchiveInfo(s.unions.ArchiveKind, s.unions.ArchivePath, s.unions.ArchivePassword)
	if err != nil {
		return models.MetadataOptional{}, err
	}
	deploy, err := MapDeployInfo(s.unions.DeployKind, s.unions.DeployPath)
	if err != nil {
		return models.MetadataOptional{}, err
	}

	m := s.working.Clone()
	m.Platform = platform
	m.ArchiveInfo = archive
	if m.DeployInfo != nil || !deploy.IsUnset() {
		m.DeployInfo = &deploy
	}
	sanitize(&m)

	return models.MetadataOptional{
		EditableMetadata:  m,
		FlagCreateArchive: m.IsCreating() && !archive.IsUnset(),
	}, nil
}

// Prepare composes the working copy and validates the payload. Nothing is
// sent and the session is not modified; callers sending the payload
// themselves call Reset once the executor accepted it.
func (s *EditSession) Prepare(ctx context.Context) (models.MetadataOptional, error) {
	opt, err := s.Compose()
	if err != nil {
		return models.MetadataOptional{}, &ValidationError{Field: "form", Reason: err}
	}

	if s.validator != nil {
		if err = s.validator.Validate(ctx, opt); err != nil {
			return models.MetadataOptional{}, &ValidationError{Field: "form", Reason: fmt.Errorf("%w: %w", ErrInvalidForm, err)}
		}
	}
	return opt, nil
}

// Submit validates and sends the working copy, returning the item id.
// Validation failures never reach the executor. The working copy is reset
// once the executor accepted the write, including when only the refetch
// failed.
func (s *EditSession) Submit(ctx context.Context) (string, error) {
	opt, err := s.Prepare(ctx)
	if err != nil {
		return "", err
	}

	id, err := s.store.Update(ctx, opt)
	if err != nil && !IsResync(err) {
		return "", err
	}

	s.logger.Info().Str("id", id).Bool("created", opt.IsCreating()).Msg("item saved")
	s.Reset()
	return id, err
}
