package cli

import (
	"fmt"
	"io"

	"github.com/chemistrykit/chemkit/internal/branding"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// BuildInfo carries values injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCmd builds the full command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates the skeleton of a new library: a stub source file
under lib/ rendered from a bundled template, and optionally a copy of the
bundled ` + branding.LicenseName() + ` license.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewProjectCmd(info))
	rootCmd.AddCommand(TemplatesCmd())
	rootCmd.AddCommand(VersionCmd(info))

	return rootCmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	rootCmd := NewRootCmd(BuildInfo{Version: version, Commit: commit, Date: date})
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
}
