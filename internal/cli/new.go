package cli

import (
	"fmt"

	"github.com/chemistrykit/chemkit/internal/branding"
	"github.com/chemistrykit/chemkit/internal/config"
	"github.com/chemistrykit/chemkit/internal/scaffold"
	"github.com/chemistrykit/chemkit/internal/shell"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewProjectCmd returns the "new <name>" command.
func NewProjectCmd(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Scaffold a new project",
		Long: `Create <name>/lib/<name>.<ext> from the selected template set, then ask
whether to copy the bundled ` + branding.LicenseName() + ` license to <name>/LICENSE.

Existing files are overwritten; files whose content already matches are
left alone. Nothing is rolled back if a later step fails.

Examples:
  ` + branding.CLIName() + ` new widget
  ` + branding.CLIName() + ` new widget --lang go --license
  ` + branding.CLIName() + ` new widget --no-license --pretend`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0], info)
		},
	}

	cmd.Flags().String("lang", "", "Template set to render (default from config, then \""+branding.DefaultLanguage()+"\")")
	cmd.Flags().String("templates", "", "Directory to load template sets and LICENSE from instead of the bundled ones")
	cmd.Flags().String("config", "", "YAML file with defaults for this run")
	cmd.Flags().Bool("license", false, "Copy the license without asking")
	cmd.Flags().Bool("no-license", false, "Skip the license without asking")
	cmd.Flags().BoolP("pretend", "p", false, "Report what would be created without writing anything")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress status output")
	cmd.MarkFlagsMutuallyExclusive("license", "no-license")

	return cmd
}

func runNew(cmd *cobra.Command, name string, info BuildInfo) error {
	configFile, _ := cmd.Flags().GetString("config")
	settings, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout())
	sh.Quiet = settings.Quiet

	opts := []scaffold.Option{
		scaffold.WithLanguage(settings.Language),
		scaffold.WithPretend(settings.Pretend),
		scaffold.WithReporter(sh),
		scaffold.WithCLIVersion(info.Version),
	}
	if settings.Templates != "" {
		fsys, err := scaffold.DirTemplates(settings.Templates)
		if err != nil {
			return err
		}
		opts = append(opts, scaffold.WithTemplates(fsys))
	}

	result, err := scaffold.New(opts...).Generate(name, licenseDecision(settings.License, sh))
	if err != nil {
		return err
	}

	if settings.Pretend {
		sh.Say(fmt.Sprintf("Pretend run: nothing was written under %s.", result.Root), color.FgYellow)
	}
	return nil
}

// licenseDecision resolves the license mode into a decision callback. Only
// the ask mode touches the terminal.
func licenseDecision(mode string, sh *shell.Shell) scaffold.ConfirmFunc {
	switch mode {
	case config.LicenseYes:
		return scaffold.Always(true)
	case config.LicenseNo:
		return scaffold.Always(false)
	default:
		return sh.Confirm(branding.LicenseQuestion())
	}
}
