package core

import (
	"github.com/arthur-debert/tint/pkg/compiler"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/types"
)

// ColorschemeSummary describes one colorscheme for listing
type ColorschemeSummary struct {
	Name    string
	Inherit []string
	// Colors is the number of colors after compilation
	Colors int
}

// ListColorschemes compiles the configuration and returns its colorschemes
// in resolution order. Only FileSystem and ConfigPath of opts are used.
func ListColorschemes(opts GenerateOptions) ([]ColorschemeSummary, error) {
	cfg, compiled, err := compileConfig(opts)
	if err != nil {
		return nil, err
	}

	summaries := make([]ColorschemeSummary, 0, len(compiled.Order))
	for _, name := range compiled.Order {
		summaries = append(summaries, ColorschemeSummary{
			Name:    name,
			Inherit: cfg.Colorschemes[name].Inherit,
			Colors:  compiled.Compiled[name].Len(),
		})
	}
	return summaries, nil
}

// ShowColorscheme compiles the configuration and returns the named
// colorscheme
func ShowColorscheme(opts GenerateOptions, name string) (*types.CompiledColorscheme, error) {
	_, compiled, err := compileConfig(opts)
	if err != nil {
		return nil, err
	}
	return compiled.Get(name)
}

func compileConfig(opts GenerateOptions) (*types.Config, *compiler.Result, error) {
	fsys := opts.fs()

	if opts.ConfigPath == "" {
		return nil, nil, errors.New(errors.ErrInvalidInput, "no configuration file given")
	}

	cfg, err := loadConfig(fsys, opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	compiled, err := compiler.CompileAll(cfg.Colorschemes)
	if err != nil {
		return nil, nil, err
	}

	return cfg, compiled, nil
}
