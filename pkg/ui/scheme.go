package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/tint/pkg/core"
	"github.com/arthur-debert/tint/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// RenderScheme prints a compiled colorscheme. TOML and YAML produce a
// [colorschemes.<name>] document that can be pasted into a configuration.
func RenderScheme(w io.Writer, scheme *types.CompiledColorscheme, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(schemeDocument(scheme))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(schemeDocument(scheme)); err != nil {
			return err
		}
		return enc.Close()
	}

	p := newPrinter(format)
	var b strings.Builder

	b.WriteString(p.scheme(scheme.Name()))
	b.WriteString("\n")

	keys := scheme.Keys()
	width := 0
	for _, key := range keys {
		if len(key) > width {
			width = len(key)
		}
	}

	for _, key := range keys {
		value, _ := scheme.Get(key)
		if p.styled {
			fmt.Fprintf(&b, "  %s %-*s %s\n", Swatch(value), width, key, p.muted(value))
		} else {
			fmt.Fprintf(&b, "  %-*s %s\n", width, key, value)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func schemeDocument(scheme *types.CompiledColorscheme) map[string]interface{} {
	return map[string]interface{}{
		"colorschemes": map[string]interface{}{
			scheme.Name(): scheme.Colors(),
		},
	}
}

// RenderSchemeList prints colorschemes in the given order with their
// inherit lists
func RenderSchemeList(w io.Writer, schemes []core.ColorschemeSummary, format Format) error {
	p := newPrinter(format)
	var b strings.Builder

	for _, s := range schemes {
		noun := "colors"
		if s.Colors == 1 {
			noun = "color"
		}
		fmt.Fprintf(&b, "%s %s", p.scheme(s.Name), p.muted(fmt.Sprintf("(%d %s)", s.Colors, noun)))
		if len(s.Inherit) > 0 {
			fmt.Fprintf(&b, " inherits %s", strings.Join(s.Inherit, ", "))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
