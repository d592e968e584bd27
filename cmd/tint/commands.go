package tint

import (
	"fmt"

	"github.com/arthur-debert/tint/internal/version"
	"github.com/arthur-debert/tint/pkg/core"
	"github.com/arthur-debert/tint/pkg/ui"
	"github.com/spf13/cobra"
)

func newRenderCmd(configPath *string) *cobra.Command {
	var (
		templatesDir string
		outputDir    string
		strict       bool
		keepGoing    bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:     "render",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(*configPath, templatesDir, outputDir)
			if err != nil {
				return err
			}

			result, err := core.Generate(core.GenerateOptions{
				ConfigPath:   settings.ConfigPath,
				TemplatesDir: settings.TemplatesDir,
				OutputDir:    settings.OutputDir,
				Strict:       strict,
				DryRun:       dryRun,
				KeepGoing:    keepGoing,
			})

			// A failed render still reports the templates it got through.
			if result != nil {
				out := cmd.OutOrStdout()
				if renderErr := ui.RenderSummary(out, result, outputFormat(out, ui.FormatAuto)); renderErr != nil && err == nil {
					err = renderErr
				}
			}

			return err
		},
	}

	cmd.Flags().StringVarP(&templatesDir, "templates", "t", "", MsgFlagTemplates)
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, MsgFlagKeepGoing)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}

func newSchemesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "schemes",
		Short:   MsgSchemesShort,
		Long:    MsgSchemesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(*configPath, "", "")
			if err != nil {
				return err
			}

			schemes, err := core.ListColorschemes(core.GenerateOptions{ConfigPath: settings.ConfigPath})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return ui.RenderSchemeList(out, schemes, outputFormat(out, ui.FormatAuto))
		},
	}
}

func newShowCmd(configPath *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "show NAME",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Example: MsgShowExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return schemeNames(*configPath), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := ui.ParseFormat(format)
			if err != nil {
				return fmt.Errorf(MsgErrFormat, err)
			}

			settings, err := loadSettings(*configPath, "", "")
			if err != nil {
				return err
			}

			scheme, err := core.ShowColorscheme(core.GenerateOptions{ConfigPath: settings.ConfigPath}, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return ui.RenderScheme(out, scheme, outputFormat(out, parsed))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"auto", "term", "text", "toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// schemeNames lists colorscheme names for shell completion
func schemeNames(configPath string) []string {
	settings, err := loadSettings(configPath, "", "")
	if err != nil {
		return nil
	}
	schemes, err := core.ListColorschemes(core.GenerateOptions{ConfigPath: settings.ConfigPath})
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(schemes))
	for _, s := range schemes {
		names = append(names, s.Name)
	}
	return names
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
