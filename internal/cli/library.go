package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-library-keeper/internal/service"
)

func newListCommand(rt *runtime) *cobra.Command {
	var (
		query    string
		useRegex bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List library items",
		Long: `List library items, optionally filtered. The filter matches title, aliases,
tags, developer, publisher and platform id or name. Matching is case-sensitive.`,
		Example: `  libctl list
  libctl list -q rpg
  libctl list -q '^Alpha' --regex
  libctl list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			if err = s.Library.Reload(cmd.Context()); err != nil {
				return err
			}

			items, err := service.FilterItems(s.Library.Items(), query, useRegex)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), items)
			}
			printItems(cmd.OutOrStdout(), items)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter query")
	cmd.Flags().BoolVar(&useRegex, "regex", false, "treat the query as a regular expression")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print items as JSON")

	return cmd
}

func newGetCommand(rt *runtime) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one library item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			if err = s.Library.Reload(cmd.Context()); err != nil {
				return err
			}

			item, ok := s.Library.Find(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", errItemNotFound, args[0])
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), item)
			}
			printItem(cmd.OutOrStdout(), item)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the item as JSON")

	return cmd
}
