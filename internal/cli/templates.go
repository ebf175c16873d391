package cli

import (
	"fmt"
	"io/fs"
	"text/tabwriter"

	"github.com/chemistrykit/chemkit/internal/manifest"
	"github.com/chemistrykit/chemkit/internal/scaffold"
	"github.com/spf13/cobra"
)

// TemplatesCmd returns the "templates" command, which lists template sets.
func TemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available template sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("templates")

			var fsys fs.FS = scaffold.DefaultTemplates()
			if dir != "" {
				var err error
				if fsys, err = scaffold.DirTemplates(dir); err != nil {
					return err
				}
			}

			sets, err := manifest.List(fsys)
			if err != nil {
				return err
			}
			if len(sets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No template sets found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tEXT\tVERSION\tDESCRIPTION")
			for _, s := range sets {
				version := s.Version
				if version == "" {
					version = "-"
				}
				fmt.Fprintf(w, "%s\t.%s\t%s\t%s\n", s.Name, s.Extension, version, s.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("templates", "", "Directory to list instead of the bundled template sets")
	return cmd
}
