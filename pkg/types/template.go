package types

// TemplateDefinition associates a template source file with the colorscheme
// used to render it and the file it is rendered to.
type TemplateDefinition struct {
	// SourceName is the file name inside the templates directory
	SourceName string
	// ThemeName is the colorscheme to render with
	ThemeName string
	// OutputPath is the full path of the rendered file
	OutputPath string
	// Explicit is true when the template came from a configuration entry
	// rather than from templates directory discovery
	Explicit bool
}

// TemplateInput is a template entry as written in the configuration file.
// Every field is optional.
type TemplateInput struct {
	// Theme is the colorscheme name
	Theme string `koanf:"theme" mapstructure:"theme"`
	// Output overrides the output directory
	Output string `koanf:"output" mapstructure:"output"`
	// Name overrides the output file name
	Name string `koanf:"name" mapstructure:"name"`
}

// Config is the parsed theme configuration
type Config struct {
	Colorschemes map[string]ColorschemeDefinition
	Templates    map[string]TemplateInput
}
