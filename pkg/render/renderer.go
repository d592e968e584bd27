package render

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/types"
	"github.com/rs/zerolog"
)

const (
	outputFileMode fs.FileMode = 0644
	outputDirMode  fs.FileMode = 0755
)

// Options controls renderer behaviour
type Options struct {
	// Strict fails rendering when the template has placeholders the
	// colorscheme does not define
	Strict bool
	// DryRun renders without touching the output location
	DryRun bool
}

// Output describes one rendered template
type Output struct {
	// Content is the rendered text
	Content string
	// Written is false in dry-run mode
	Written bool
	// Unresolved lists placeholders left in the output
	Unresolved []string
}

// Renderer renders templates through a filesystem. It keeps no state
// between calls.
type Renderer struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger
}

// New creates a Renderer
func New(fsys types.FS, opts Options) *Renderer {
	return &Renderer{
		fs:     fsys,
		opts:   opts,
		logger: logging.GetLogger("render"),
	}
}

// Render reads sourcePath, substitutes scheme's colors and writes the result
// to tmpl.OutputPath.
func (r *Renderer) Render(tmpl types.TemplateDefinition, sourcePath string, scheme *types.CompiledColorscheme) (*Output, error) {
	data, err := r.fs.ReadFile(sourcePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read template %s", tmpl.SourceName).
			WithDetail("template", tmpl.SourceName).
			WithDetail("path", sourcePath)
	}

	text := string(data)
	unresolved := Unresolved(text, scheme)
	if r.opts.Strict && len(unresolved) > 0 {
		return nil, errors.Newf(errors.ErrUnresolvedPlaceholder,
			"template %s uses placeholders missing from colorscheme %q: %s",
			tmpl.SourceName, scheme.Name(), strings.Join(unresolved, ", ")).
			WithDetail("template", tmpl.SourceName).
			WithDetail("colorscheme", scheme.Name()).
			WithDetail("placeholders", unresolved)
	}

	out := &Output{
		Content:    Substitute(text, scheme),
		Unresolved: unresolved,
	}

	if err := r.ensureParentDir(tmpl); err != nil {
		return nil, err
	}

	if r.opts.DryRun {
		r.logger.Debug().
			Str("template", tmpl.SourceName).
			Str("output", tmpl.OutputPath).
			Msg("dry run, not writing")
		return out, nil
	}

	if err := r.fs.WriteFile(tmpl.OutputPath, []byte(out.Content), outputFileMode); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", tmpl.OutputPath).
			WithDetail("template", tmpl.SourceName).
			WithDetail("path", tmpl.OutputPath)
	}
	out.Written = true

	r.logger.Info().
		Str("template", tmpl.SourceName).
		Str("colorscheme", scheme.Name()).
		Str("output", tmpl.OutputPath).
		Int("bytes", len(out.Content)).
		Msg("rendered template")

	return out, nil
}

// ensureParentDir makes sure the output's immediate parent is a directory,
// creating that single level when it is missing.
func (r *Renderer) ensureParentDir(tmpl types.TemplateDefinition) error {
	parent := filepath.Dir(tmpl.OutputPath)

	info, err := r.fs.Stat(parent)
	if err == nil {
		if !info.IsDir() {
			return errors.Newf(errors.ErrOutputPathInvalid, "output folder %s is not a directory", parent).
				WithDetail("template", tmpl.SourceName).
				WithDetail("path", parent)
		}
		return nil
	}

	if !stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, errors.ErrOutputPathInvalid, "cannot inspect output folder %s", parent).
			WithDetail("template", tmpl.SourceName).
			WithDetail("path", parent)
	}

	if r.opts.DryRun {
		return nil
	}

	if err := r.fs.Mkdir(parent, outputDirMode); err != nil {
		return errors.Wrapf(err, errors.ErrOutputPathInvalid, "cannot create output folder %s", parent).
			WithDetail("template", tmpl.SourceName).
			WithDetail("path", parent)
	}

	r.logger.Debug().Str("path", parent).Msg("created output folder")
	return nil
}
