package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Print the absolute path of a library-relative path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			abs, err := s.Paths.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), abs)
			return nil
		},
	}
}

func newOpenCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Open a library path with the system file handler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			err = s.Paths.Open(cmd.Context(), args[0])
			return report(cmd.OutOrStdout(), err, "opened "+args[0])
		},
	}
}
