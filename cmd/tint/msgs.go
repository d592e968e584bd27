package tint

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Generate themed dotfiles from colorscheme templates"
	MsgRenderShort     = "Render all templates"
	MsgSchemesShort    = "List colorschemes in resolution order"
	MsgShowShort       = "Print a compiled colorscheme"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgVersionFormat = "tint %s (commit %s, built %s)\n"

	// Error messages
	MsgErrSettings = "failed to resolve settings: %w"
	MsgErrFormat   = "invalid --format: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Configuration file (default $XDG_CONFIG_HOME/tint/config.toml)"
	MsgFlagTemplates = "Templates directory (default $XDG_CONFIG_HOME/tint/templates)"
	MsgFlagOutput    = "Output directory (default $XDG_DATA_HOME/tint/output)"
	MsgFlagStrict    = "Fail templates using placeholders their colorscheme does not define"
	MsgFlagKeepGoing = "Render every template and report all failures at the end"
	MsgFlagDryRun    = "Render without writing any file"
	MsgFlagFormat    = "Output format: auto, term, text, toml or yaml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/schemes-long.txt
	msgSchemesLongRaw string
	MsgSchemesLong    = strings.TrimSpace(msgSchemesLongRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
