// Package config loads tint's two kinds of configuration.
//
// The theme configuration is the user's TOML file declaring colorschemes
// and templates:
//
//	[colorschemes.default]
//	bg = "#000000"
//
//	[colorschemes.dark.settings]
//	inherit = ["default"]
//	rename = { fg = "foreground" }
//
//	[templates."alacritty.toml"]
//	theme = "dark"
//
// Every key of a colorscheme table other than "settings" is a color and
// must have a string value. Load reads the file through a types.FS and
// Parse turns the bytes into a types.Config.
//
// App settings are the three locations tint works with (config file,
// templates directory, output root). LoadSettings layers them with koanf:
// XDG defaults, then TINT_* environment variables, then explicit overrides
// such as command-line flags.
package config
