package types

import (
	"sort"
)

// DefaultColorscheme is the colorscheme every configuration must define.
// Templates without an explicit theme are rendered with it.
const DefaultColorscheme = "default"

// ColorschemeDefinition is a colorscheme as declared in configuration.
// Inheritance is by name only; definitions never point at each other.
type ColorschemeDefinition struct {
	Name string
	// Colors are the scheme's own color values, keyed by color name.
	Colors map[string]string
	// Inherit lists the colorschemes merged in before Colors, in order.
	// Later entries win over earlier ones on key collisions.
	Inherit []string
	// Rename relabels inherited keys (from -> to) before Colors are applied.
	Rename map[string]string
}

// CompiledColorscheme is a fully flattened colorscheme. It holds no
// references to other colorschemes and is never mutated after compilation.
type CompiledColorscheme struct {
	name   string
	colors map[string]string
}

// NewCompiledColorscheme builds a compiled colorscheme from a flat color map.
// The map is copied.
func NewCompiledColorscheme(name string, colors map[string]string) *CompiledColorscheme {
	copied := make(map[string]string, len(colors))
	for k, v := range colors {
		copied[k] = v
	}
	return &CompiledColorscheme{name: name, colors: copied}
}

// Name returns the colorscheme name
func (c *CompiledColorscheme) Name() string {
	return c.name
}

// Get returns the value for a color key
func (c *CompiledColorscheme) Get(key string) (string, bool) {
	v, ok := c.colors[key]
	return v, ok
}

// Len returns the number of colors
func (c *CompiledColorscheme) Len() int {
	return len(c.colors)
}

// Colors returns a copy of the color map
func (c *CompiledColorscheme) Colors() map[string]string {
	copied := make(map[string]string, len(c.colors))
	for k, v := range c.colors {
		copied[k] = v
	}
	return copied
}

// Keys returns the color keys in ascending order
func (c *CompiledColorscheme) Keys() []string {
	keys := make([]string, 0, len(c.colors))
	for k := range c.colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
