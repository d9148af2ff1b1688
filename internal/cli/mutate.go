package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from the library",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			err = s.Library.Remove(cmd.Context(), args[0])
			return report(cmd.OutOrStdout(), err, "removed "+args[0])
		},
	}
}

func newDeployCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "deploy <id> <target>",
		Short: "Deploy an item's archive into a target directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			err = s.Library.Deploy(cmd.Context(), args[0], args[1])
			return report(cmd.OutOrStdout(), err, fmt.Sprintf("deployed %s to %s", args[0], args[1]))
		},
	}
}

func newUndeployCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "undeploy <id>",
		Short: "Remove the deployed copy of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			err = s.Library.DeployOff(cmd.Context(), args[0])
			return report(cmd.OutOrStdout(), err, "undeployed "+args[0])
		},
	}
}

func newExportCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the library to the executor's export location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			err = s.Library.Export(cmd.Context())
			return report(cmd.OutOrStdout(), err, "library exported")
		},
	}
}

func newImportCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import the library from the executor's export location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := rt.load()
			if err != nil {
				return err
			}
			err = s.Library.Import(cmd.Context())
			return report(cmd.OutOrStdout(), err, "library imported")
		},
	}
}

func newClearCommand(rt *runtime) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Export and then wipe the whole library",
		Long: `Export the library and then remove every item. Nothing is removed when the
export fails.`,
		Example: `  libctl clear --yes`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errConfirmationRequired
			}
			s, err := rt.load()
			if err != nil {
				return err
			}
			err = s.Library.Clear(cmd.Context())
			return report(cmd.OutOrStdout(), err, "library exported and cleared")
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm clearing the library")

	return cmd
}
