package compiler

import (
	"sort"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/resolver"
	"github.com/arthur-debert/tint/pkg/types"
)

// Result holds every compiled colorscheme and the order they were built in
type Result struct {
	Order    []string
	Compiled map[string]*types.CompiledColorscheme
}

// Get looks up a compiled colorscheme by name
func (r *Result) Get(name string) (*types.CompiledColorscheme, error) {
	scheme, ok := r.Compiled[name]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownColorscheme, "colorscheme %q not found", name).
			WithDetail("colorscheme", name)
	}
	return scheme, nil
}

// CompileAll resolves the inherit graph of defs and compiles every
// colorscheme in dependency order.
func CompileAll(defs map[string]types.ColorschemeDefinition) (*Result, error) {
	logger := logging.GetLogger("compiler")
	done := logging.LogOperationStart(logger, "compile colorschemes")
	defer done()

	order, err := resolver.Resolve(resolver.InheritGraph(defs))
	if err != nil {
		return nil, err
	}

	compiled := make(map[string]*types.CompiledColorscheme, len(defs))
	for _, name := range order {
		scheme, err := Compile(defs[name], compiled)
		if err != nil {
			return nil, err
		}
		compiled[name] = scheme

		logger.Debug().
			Str("colorscheme", name).
			Strs("inherit", defs[name].Inherit).
			Int("colors", scheme.Len()).
			Msg("compiled colorscheme")
	}

	logger.Info().Int("count", len(compiled)).Msg("compiled all colorschemes")

	return &Result{Order: order, Compiled: compiled}, nil
}

// Compile flattens a single definition. Every colorscheme it inherits must
// already be present in compiled.
func Compile(def types.ColorschemeDefinition, compiled map[string]*types.CompiledColorscheme) (*types.CompiledColorscheme, error) {
	acc := make(map[string]string)

	for _, parent := range def.Inherit {
		dep, ok := compiled[parent]
		if !ok {
			return nil, errors.Newf(errors.ErrUnknownColorscheme,
				"colorscheme %q inherits %q, which is not compiled", def.Name, parent).
				WithDetail("dependent", def.Name).
				WithDetail("dependency", parent)
		}
		for k, v := range dep.Colors() {
			acc[k] = v
		}
	}

	if err := applyRenames(def, acc); err != nil {
		return nil, err
	}

	for k, v := range def.Colors {
		acc[k] = v
	}

	return types.NewCompiledColorscheme(def.Name, acc), nil
}

// applyRenames moves inherited values to their new keys. Renames run in
// ascending source-key order so chained renames behave the same every run.
func applyRenames(def types.ColorschemeDefinition, acc map[string]string) error {
	froms := make([]string, 0, len(def.Rename))
	for from := range def.Rename {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	for _, from := range froms {
		to := def.Rename[from]
		value, ok := acc[from]
		if !ok {
			return errors.Newf(errors.ErrRenameSourceMissing,
				"colorscheme %q: couldn't find %s when renaming to %s", def.Name, from, to).
				WithDetail("colorscheme", def.Name).
				WithDetail("from", from).
				WithDetail("to", to)
		}
		delete(acc, from)
		acc[to] = value
	}
	return nil
}
