// Package paths resolves tint's default file locations.
//
// Defaults follow the XDG Base Directory specification:
//
//   - Config file: $XDG_CONFIG_HOME/tint/config.toml
//   - Templates:   $XDG_CONFIG_HOME/tint/templates
//   - Output root: $XDG_DATA_HOME/tint/output
//   - Log file:    $XDG_STATE_HOME/tint/tint.log
//
// The XDG variables are read on every call so tests and callers can point
// them elsewhere with t.Setenv. When unset, adrg/xdg supplies the platform
// default.
//
// User-supplied paths go through ExpandHome, which understands a leading
// "~" or "~/".
package paths
