// Package compiler flattens colorscheme definitions into compiled colorschemes.
//
// Each colorscheme is compiled in resolver order, so every colorscheme it
// inherits from is already compiled. One compilation runs three steps over an
// empty accumulator:
//
//  1. merge each inherited colorscheme in listed order (later wins)
//  2. apply renames to the inherited keys
//  3. merge the colorscheme's own colors (always win)
//
// giving the precedence own colors > rename target > later inherit >
// earlier inherit.
package compiler
