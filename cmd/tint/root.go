package tint

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/tint/internal/version"
	"github.com/arthur-debert/tint/pkg/config"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "tint",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(&configPath))
	rootCmd.AddCommand(newSchemesCmd(&configPath))
	rootCmd.AddCommand(newShowCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadSettings layers flag values over environment and XDG defaults
func loadSettings(configPath, templatesDir, outputDir string) (*config.Settings, error) {
	settings, err := config.LoadSettings(map[string]string{
		config.KeyConfig:    configPath,
		config.KeyTemplates: templatesDir,
		config.KeyOutput:    outputDir,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrSettings, err)
	}

	log.Debug().
		Str("config", settings.ConfigPath).
		Str("templates", settings.TemplatesDir).
		Str("output", settings.OutputDir).
		Msg("Settings resolved")

	return settings, nil
}

// outputFormat resolves FormatAuto for w. Writers that are not files, such
// as test buffers, get plain text.
func outputFormat(w io.Writer, format ui.Format) ui.Format {
	if file, ok := w.(*os.File); ok {
		return ui.Resolve(format, file)
	}
	if format == ui.FormatAuto {
		return ui.FormatText
	}
	return format
}
