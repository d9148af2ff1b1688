package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-library-keeper/models"
)

// NewRootCommand creates the libctl command tree. Services are built on
// first use so that version and help work without an executor.
func NewRootCommand(build models.AppBuildInfo, newServices ServicesFactory) *cobra.Command {
	rt := &runtime{newServices: newServices}

	rootCmd := &cobra.Command{
		Use:   "libctl",
		Short: "Manage the content library from the command line",
		Long: `libctl talks to the library executor over the same command gateway as the
terminal client. Every mutation is followed by a refetch of the library, and
clear always exports the library before wiping it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&rt.configPath, "config", "c", "", "path to a JSON config file")

	rootCmd.AddCommand(newVersionCommand(build))
	rootCmd.AddCommand(newListCommand(rt))
	rootCmd.AddCommand(newGetCommand(rt))
	rootCmd.AddCommand(newAddCommand(rt))
	rootCmd.AddCommand(newEditCommand(rt))
	rootCmd.AddCommand(newRemoveCommand(rt))
	rootCmd.AddCommand(newDeployCommand(rt))
	rootCmd.AddCommand(newUndeployCommand(rt))
	rootCmd.AddCommand(newExportCommand(rt))
	rootCmd.AddCommand(newImportCommand(rt))
	rootCmd.AddCommand(newClearCommand(rt))
	rootCmd.AddCommand(newResolveCommand(rt))
	rootCmd.AddCommand(newOpenCommand(rt))
	rootCmd.AddCommand(newDLSiteCommand(rt))

	return rootCmd
}

// Execute runs libctl with args and prints a failure to stderr.
func Execute(ctx context.Context, build models.AppBuildInfo, args []string) error {
	rootCmd := NewRootCommand(build, NewServicesFromConfig)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func newVersionCommand(build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()

			titleColor.Fprint(out, "Build version: ")
			fmt.Fprintln(out, build.BuildVersion())
			titleColor.Fprint(out, "Build date: ")
			fmt.Fprintln(out, build.BuildDate())
			titleColor.Fprint(out, "Build commit: ")
			fmt.Fprintln(out, build.BuildCommit())
		},
	}
}
