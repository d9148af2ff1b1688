package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/models"
)

// itemFlags are shared by add and edit. On edit only flags given on the
// command line change the item.
type itemFlags struct {
	title       string
	aliases     []string
	tags        string
	contentType string

	platform     string
	platformID   string
	platformName string

	archive         string
	archivePath     string
	archivePassword string
	genPassword     bool
	size            uint64

	description string
	developer   string
	publisher   string
	version     string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.title, "title", "t", "", "item title")
	fl.StringArrayVar(&f.aliases, "alias", nil, "add an alias (repeatable)")
	fl.StringVar(&f.tags, "tags", "", "add tags separated by spaces, commas, semicolons or |")
	fl.StringVar(&f.contentType, "type", "", "content type: Other, Game, Novel, Comic, Anime, Music, Movie, Software")
	fl.StringVar(&f.platform, "platform", "", "platform: Unknown, Steam, DLSite, Other")
	fl.StringVar(&f.platformID, "platform-id", "", "store id on the platform")
	fl.StringVar(&f.platformName, "platform-name", "", "platform name for Other")
	fl.StringVar(&f.archive, "archive", "", "archive kind: Unset, ArchiveFile, CommonFile, Directory")
	fl.StringVar(&f.archivePath, "archive-path", "", "archive location")
	fl.StringVar(&f.archivePassword, "archive-password", "", "archive password for ArchiveFile")
	fl.BoolVar(&f.genPassword, "generate-password", false, "generate a random archive password")
	fl.Uint64Var(&f.size, "size", 0, "archive size in bytes")
	fl.StringVar(&f.description, "description", "", "description")
	fl.StringVar(&f.developer, "developer", "", "developer")
	fl.StringVar(&f.publisher, "publisher", "", "publisher")
	fl.StringVar(&f.version, "item-version", "", "item version")
}

// apply copies the changed flags into session and reports tag duplicates
// and generated passwords to w.
func (f *itemFlags) apply(cmd *cobra.Command, session *service.EditSession, w io.Writer) error {
	changed := cmd.Flags().Changed

	if changed("title") {
		session.SetTitle(f.title)
	}
	if changed("type") {
		ct, err := models.ParseContentType(f.contentType)
		if err != nil {
			return &service.ValidationError{Field: "type", Value: f.contentType, Reason: err}
		}
		session.SetContentType(ct)
	}
	for _, alias := range f.aliases {
		if err := session.AddAlias(alias); err != nil {
			return err
		}
	}
	if changed("tags") {
		res, err := session.AddTag(f.tags)
		if err != nil {
			return err
		}
		if len(res.Duplicates) > 0 {
			warnColor.Fprintf(w, "! skipped duplicate tags: %v\n", res.Duplicates)
		}
	}

	u := session.Unions()
	if changed("platform") {
		u.PlatformKind = models.PlatformKind(f.platform)
	}
	if changed("platform-id") {
		u.PlatformID = f.platformID
	}
	if changed("platform-name") {
		u.PlatformName = f.platformName
	}
	if changed("archive") {
		u.ArchiveKind = models.ArchiveKind(f.archive)
	}
	if changed("archive-path") {
		u.ArchivePath = f.archivePath
	}
	if changed("archive-password") {
		u.ArchivePassword = f.archivePassword
	}
	session.SetUnions(u)

	if f.genPassword {
		pw, err := session.GenerateArchivePassword()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "archive password: %s\n", pw)
	}

	if changed("size") {
		size := f.size
		session.SetArchiveSize(&size)
	}
	if changed("description") {
		session.SetDescription(f.description)
	}
	if changed("developer") {
		session.SetDeveloper(f.developer)
	}
	if changed("publisher") {
		session.SetPublisher(f.publisher)
	}
	if changed("item-version") {
		session.SetVersion(f.version)
	}
	return nil
}

func newAddCommand(rt *runtime) *cobra.Command {
	var (
		f          itemFlags
		fromDLSite bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a library item",
		Long: `Create a library item. When an archive kind other than Unset is given the
executor is asked to build the archive.`,
		Example: `  libctl add --title "Alpha Quest" --type Game --tags "rpg, indie"
  libctl add -t "Beta" --platform Steam --platform-id 1234 \
    --archive ArchiveFile --archive-path games/beta.7z --generate-password
  libctl add --platform DLSite --platform-id RJ01000000 --from-dlsite`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}

			session := s.NewEditSession()
			out := cmd.OutOrStdout()
			if err = f.apply(cmd, session, out); err != nil {
				return err
			}

			if fromDLSite {
				dlsiteID := session.DLSiteID()
				if dlsiteID == "" {
					return errDLSiteIDRequired
				}
				info, err := s.Lookup.DLSite(cmd.Context(), dlsiteID)
				if err != nil {
					return err
				}
				res := session.ApplyDLSite(info)
				if len(res.Added) > 0 {
					fmt.Fprintf(out, "tags from DLSite: %v\n", res.Added)
				}
			}

			id, err := session.Submit(cmd.Context())
			return report(out, err, "created "+id)
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVar(&fromDLSite, "from-dlsite", false, "fill blank title, developer, description and tags from the DLSite page")

	return cmd
}

func newEditCommand(rt *runtime) *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Change fields of a library item",
		Example: `  libctl edit 3f2a --developer "Studio" --tags sequel`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			if err = s.Library.Reload(cmd.Context()); err != nil {
				return err
			}

			session := s.NewEditSession()
			if !session.Bind(args[0]) {
				return fmt.Errorf("%w: %s", errItemNotFound, args[0])
			}

			out := cmd.OutOrStdout()
			if err = f.apply(cmd, session, out); err != nil {
				return err
			}

			id, err := session.Submit(cmd.Context())
			return report(out, err, "updated "+id)
		},
	}

	f.register(cmd)

	return cmd
}
