package core

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/paths"
	"github.com/arthur-debert/tint/pkg/types"
)

// BuildTemplates assembles the template definitions of a run, sorted by
// source name. Configured entries are validated first; every other regular
// file directly inside templatesDir is then rendered with the default
// colorscheme to outputDir/<file name>.
func BuildTemplates(fsys types.FS, cfg *types.Config, templatesDir, outputDir string) ([]types.TemplateDefinition, error) {
	logger := logging.GetLogger("core.templates")

	names := make([]string, 0, len(cfg.Templates))
	for name := range cfg.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	templates := make([]types.TemplateDefinition, 0, len(names))
	explicit := make(map[string]bool, len(names))

	for _, name := range names {
		tmpl, err := explicitTemplate(fsys, cfg, name, cfg.Templates[name], templatesDir, outputDir)
		if err != nil {
			return nil, err
		}
		if explicit[tmpl.SourceName] {
			return nil, errors.Newf(errors.ErrInvalidInput, "template %s is configured more than once", tmpl.SourceName).
				WithDetail("template", tmpl.SourceName)
		}
		templates = append(templates, tmpl)
		explicit[tmpl.SourceName] = true
	}

	discovered, err := discoverTemplates(fsys, templatesDir, outputDir, explicit)
	if err != nil {
		return nil, err
	}
	templates = append(templates, discovered...)

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].SourceName < templates[j].SourceName
	})

	logger.Debug().
		Int("explicit", len(names)).
		Int("discovered", len(discovered)).
		Msg("Templates assembled")

	return templates, nil
}

// explicitTemplate validates one configured entry. The source name is
// stored in clean form so discovery recognises it.
func explicitTemplate(fsys types.FS, cfg *types.Config, name string, in types.TemplateInput, templatesDir, outputDir string) (types.TemplateDefinition, error) {
	if !filepath.IsLocal(name) {
		return types.TemplateDefinition{SourceName: name, Explicit: true},
			errors.Newf(errors.ErrInvalidInput, "template name %q must be a path inside the templates directory", name).
				WithDetail("template", name)
	}

	name = filepath.Clean(name)
	tmpl := types.TemplateDefinition{SourceName: name, Explicit: true}

	source := filepath.Join(templatesDir, name)
	if !isRegularFile(fsys, source) {
		return tmpl, errors.Newf(errors.ErrTemplateSourceMissing, "template %s not found in %s", name, templatesDir).
			WithDetail("template", name).
			WithDetail("path", source)
	}

	tmpl.ThemeName = in.Theme
	if tmpl.ThemeName == "" {
		tmpl.ThemeName = types.DefaultColorscheme
	}
	if _, ok := cfg.Colorschemes[tmpl.ThemeName]; !ok {
		return tmpl, errors.Newf(errors.ErrUnknownColorscheme, "template %s uses unknown colorscheme %q", name, tmpl.ThemeName).
			WithDetail("template", name).
			WithDetail("colorscheme", tmpl.ThemeName)
	}

	dir := outputDir
	if in.Output != "" {
		dir = paths.Clean(in.Output)
	}

	fileName := name
	if in.Name != "" {
		if !filepath.IsLocal(in.Name) {
			return tmpl, errors.Newf(errors.ErrInvalidInput, "output name %q of template %s must be a relative path", in.Name, name).
				WithDetail("template", name)
		}
		fileName = in.Name
	}

	tmpl.OutputPath = filepath.Join(dir, fileName)
	return tmpl, nil
}

// discoverTemplates lists the regular files of templatesDir not in skip.
// Sub-directories are not descended into.
func discoverTemplates(fsys types.FS, templatesDir, outputDir string, skip map[string]bool) ([]types.TemplateDefinition, error) {
	entries, err := fsys.ReadDir(templatesDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list templates in %s", templatesDir).
			WithDetail("path", templatesDir)
	}

	var templates []types.TemplateDefinition
	for _, entry := range entries {
		name := entry.Name()
		if skip[name] || entry.IsDir() {
			continue
		}
		if !entry.Type().IsRegular() && !isRegularFile(fsys, filepath.Join(templatesDir, name)) {
			continue
		}

		templates = append(templates, types.TemplateDefinition{
			SourceName: name,
			ThemeName:  types.DefaultColorscheme,
			OutputPath: filepath.Join(outputDir, name),
		})
	}

	return templates, nil
}

// isRegularFile follows symlinks
func isRegularFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
