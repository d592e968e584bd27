// Package types defines the core types and interfaces used throughout tint.
// This includes the colorscheme and template definitions loaded from
// configuration, the compiled colorscheme consumed by the renderer, and the
// FS capability interface every component uses for file access.
package types
