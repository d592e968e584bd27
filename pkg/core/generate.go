package core

import (
	stderrors "errors"
	"path/filepath"

	"github.com/arthur-debert/tint/pkg/compiler"
	"github.com/arthur-debert/tint/pkg/config"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/filesystem"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/render"
	"github.com/arthur-debert/tint/pkg/types"
)

// GenerateOptions contains the inputs of a generation run
type GenerateOptions struct {
	// FileSystem defaults to the OS filesystem when nil
	FileSystem types.FS

	ConfigPath   string
	TemplatesDir string
	OutputDir    string

	// Strict fails templates using placeholders their colorscheme lacks
	Strict bool
	// DryRun renders without writing files or creating directories
	DryRun bool
	// KeepGoing renders every template even after a failure
	KeepGoing bool
}

func (o GenerateOptions) fs() types.FS {
	if o.FileSystem == nil {
		return filesystem.NewOS()
	}
	return o.FileSystem
}

// RenderedTemplate is the outcome of rendering one template
type RenderedTemplate struct {
	Definition types.TemplateDefinition
	// Written is false for dry runs and failures
	Written bool
	// Bytes is the size of the rendered content
	Bytes int
	// Unresolved lists placeholders left in the output
	Unresolved []string
	Err        error
}

// GenerateResult describes a generation run
type GenerateResult struct {
	// Order is the colorscheme resolution order
	Order    []string
	Compiled map[string]*types.CompiledColorscheme
	// Templates holds one entry per attempted template, in render order
	Templates []RenderedTemplate
	// Total counts the assembled templates, attempted or not
	Total  int
	DryRun bool
}

// Failed returns the templates that could not be rendered
func (r *GenerateResult) Failed() []RenderedTemplate {
	var failed []RenderedTemplate
	for _, t := range r.Templates {
		if t.Err != nil {
			failed = append(failed, t)
		}
	}
	return failed
}

// Generate renders every template with its colorscheme. On a render failure
// the returned result still describes the templates attempted so far.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	logger := logging.GetLogger("core.generate")
	logger.Info().
		Str("config", opts.ConfigPath).
		Str("templates", opts.TemplatesDir).
		Str("output", opts.OutputDir).
		Bool("strict", opts.Strict).
		Bool("dryRun", opts.DryRun).
		Bool("keepGoing", opts.KeepGoing).
		Msg("Starting generation")

	fsys := opts.fs()

	if err := validateInputs(fsys, opts); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(fsys, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	templates, err := BuildTemplates(fsys, cfg, opts.TemplatesDir, opts.OutputDir)
	if err != nil {
		return nil, err
	}

	compiled, err := compiler.CompileAll(cfg.Colorschemes)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Order:     compiled.Order,
		Compiled:  compiled.Compiled,
		Templates: make([]RenderedTemplate, 0, len(templates)),
		Total:     len(templates),
		DryRun:    opts.DryRun,
	}

	renderer := render.New(fsys, render.Options{Strict: opts.Strict, DryRun: opts.DryRun})

	var failures []error
	for _, tmpl := range templates {
		scheme, err := compiled.Get(tmpl.ThemeName)
		if err != nil {
			return result, errors.Wrap(err, errors.ErrInternal, "template theme was validated but not compiled")
		}

		rendered := RenderedTemplate{Definition: tmpl}
		out, err := renderer.Render(tmpl, filepath.Join(opts.TemplatesDir, tmpl.SourceName), scheme)
		if err != nil {
			rendered.Err = err
			result.Templates = append(result.Templates, rendered)

			logger.Error().Err(err).Str("template", tmpl.SourceName).Msg("Failed to render template")
			if !opts.KeepGoing {
				return result, err
			}
			failures = append(failures, err)
			continue
		}

		rendered.Written = out.Written
		rendered.Bytes = len(out.Content)
		rendered.Unresolved = out.Unresolved
		result.Templates = append(result.Templates, rendered)

		if len(out.Unresolved) > 0 {
			logger.Warn().
				Str("template", tmpl.SourceName).
				Strs("placeholders", out.Unresolved).
				Msg("Template has placeholders the colorscheme does not define")
		}
	}

	if len(failures) > 0 {
		return result, errors.Wrapf(stderrors.Join(failures...), errors.ErrRenderBatch,
			"%d of %d templates failed", len(failures), len(templates)).
			WithDetail("failed", len(failures)).
			WithDetail("total", len(templates))
	}

	logger.Info().Int("templates", len(result.Templates)).Msg("Generation complete")
	return result, nil
}

// validateInputs checks the three locations before anything is loaded
func validateInputs(fsys types.FS, opts GenerateOptions) error {
	if opts.ConfigPath == "" {
		return errors.New(errors.ErrInvalidInput, "no configuration file given")
	}
	info, err := fsys.Stat(opts.ConfigPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigIO, "configuration %s cannot be read", opts.ConfigPath).
			WithDetail("path", opts.ConfigPath)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrConfigIO, "configuration %s is a directory, not a file", opts.ConfigPath).
			WithDetail("path", opts.ConfigPath)
	}

	if opts.TemplatesDir == "" {
		return errors.New(errors.ErrInvalidInput, "no templates directory given")
	}
	info, err = fsys.Stat(opts.TemplatesDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "templates directory %s cannot be read", opts.TemplatesDir).
			WithDetail("path", opts.TemplatesDir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "templates location %s is not a directory", opts.TemplatesDir).
			WithDetail("path", opts.TemplatesDir)
	}

	if opts.OutputDir == "" {
		return errors.New(errors.ErrInvalidInput, "no output directory given")
	}

	return nil
}

// loadConfig loads the configuration and checks the default colorscheme
func loadConfig(fsys types.FS, path string) (*types.Config, error) {
	cfg, err := config.Load(fsys, path)
	if err != nil {
		return nil, err
	}

	if _, ok := cfg.Colorschemes[types.DefaultColorscheme]; !ok {
		return nil, errors.Newf(errors.ErrNoDefaultColorscheme,
			"no %q colorscheme found in %s", types.DefaultColorscheme, path).
			WithDetail("path", path)
	}

	return cfg, nil
}
