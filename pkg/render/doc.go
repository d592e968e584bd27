// Package render substitutes colorscheme values into template text and
// writes the result.
//
// A placeholder is the literal token {key}. Every token whose key is a color
// of the compiled colorscheme is replaced by the color value in one
// left-to-right pass: replaced text is never scanned again, and only whole
// tokens match. Tokens with no matching color are left as they are unless
// the renderer runs in strict mode.
//
// Output files are overwritten. A missing parent directory is created, one
// level only.
package render
