// Package resolver orders colorschemes so that every colorscheme is compiled
// after the colorschemes it inherits from.
//
// The inherit relation is a directed graph keyed by colorscheme name. Resolve
// runs Kahn's algorithm over it with in-degree counters. Colorschemes that
// become ready at the same time are emitted in ascending name order, so the
// same configuration always yields the same order.
//
// When the graph has no valid order the error carries the full cycle, e.g.
//
//	cyclic dependency: dark -> base -> dark
//
// found with a depth-first search over the colorschemes that could not be
// ordered.
package resolver
