package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-library-keeper/models"
)

func newDLSiteCommand(rt *runtime) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "dlsite <product-id>",
		Short:   "Look up a DLSite work through the executor",
		Example: `  libctl dlsite RJ01000000`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			info, err := s.Lookup.DLSite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), info)
			}
			printDLSite(cmd.OutOrStdout(), info)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the page summary as JSON")

	return cmd
}

func printDLSite(w io.Writer, info models.DLSiteInfo) {
	line := func(label, value string) {
		labelColor.Fprint(w, pad(label+":", 14))
		fmt.Fprintln(w, value)
	}

	line("Title", info.Title)
	line("Circle", info.Circle)
	line("Scenario", joinOrDash(info.Scenario))
	line("Illustration", joinOrDash(info.Illustration))
	line("Category", joinOrDash(info.Category))
	line("Tags", joinOrDash(info.Tags))
	if text := info.DescriptionText(); text != "" {
		line("Description", text)
	}
}
