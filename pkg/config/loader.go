package config

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
)

const (
	sectionColorschemes = "colorschemes"
	sectionTemplates    = "templates"

	// SettingsKey is the reserved colorscheme key holding inherit and rename
	SettingsKey = "settings"
)

// schemeSettings is the decoded [colorschemes.<name>.settings] table
type schemeSettings struct {
	Inherit []string          `mapstructure:"inherit"`
	Rename  map[string]string `mapstructure:"rename"`
}

// Load reads the configuration file at path and parses it
func Load(fsys types.FS, path string) (*types.Config, error) {
	logger := logging.GetLogger("config.loader")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigIO, "cannot read configuration %s", path).
			WithDetail("path", path)
	}

	if !utf8.Valid(data) {
		return nil, errors.Newf(errors.ErrConfigIO, "configuration %s is not UTF-8 text", path).
			WithDetail("path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		if tintErr, ok := err.(*errors.TintError); ok {
			tintErr.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("colorschemes", len(cfg.Colorschemes)).
		Int("templates", len(cfg.Templates)).
		Msg("configuration loaded")

	return cfg, nil
}

// Parse decodes TOML configuration bytes. Sections other than colorschemes
// and templates are ignored.
func Parse(data []byte) (*types.Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "configuration is not valid TOML")
	}

	// Raw keeps quoted keys such as "alacritty.toml" intact, which the
	// flattened koanf paths would split.
	raw := k.Raw()

	cfg := &types.Config{
		Colorschemes: make(map[string]types.ColorschemeDefinition),
		Templates:    make(map[string]types.TemplateInput),
	}

	schemes, err := section(raw, sectionColorschemes)
	if err != nil {
		return nil, err
	}
	for name, value := range schemes {
		def, err := parseColorscheme(name, value)
		if err != nil {
			return nil, err
		}
		cfg.Colorschemes[name] = def
	}

	templates, err := section(raw, sectionTemplates)
	if err != nil {
		return nil, err
	}
	for name, value := range templates {
		in, err := parseTemplate(name, value)
		if err != nil {
			return nil, err
		}
		cfg.Templates[name] = in
	}

	return cfg, nil
}

// section returns a top-level table, or an empty one when it is absent
func section(raw map[string]interface{}, name string) (map[string]interface{}, error) {
	value, ok := raw[name]
	if !ok {
		return map[string]interface{}{}, nil
	}
	table, ok := value.(map[string]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigParse, "%s must be a table, got %s", name, typeName(value)).
			WithDetail("section", name)
	}
	return table, nil
}

func parseColorscheme(name string, value interface{}) (types.ColorschemeDefinition, error) {
	def := types.ColorschemeDefinition{Name: name, Colors: make(map[string]string)}

	table, ok := value.(map[string]interface{})
	if !ok {
		return def, errors.Newf(errors.ErrConfigParse, "colorscheme %q must be a table, got %s", name, typeName(value)).
			WithDetail("colorscheme", name)
	}

	// Sorted so the first offending key reported is stable.
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := table[key]
		if key == SettingsKey {
			settings, err := decodeSettings(name, raw)
			if err != nil {
				return def, err
			}
			def.Inherit = settings.Inherit
			def.Rename = settings.Rename
			continue
		}

		color, ok := raw.(string)
		if !ok {
			return def, errors.Newf(errors.ErrConfigParse,
				"color %q in colorscheme %q must be a string, got %s", key, name, typeName(raw)).
				WithDetail("colorscheme", name).
				WithDetail("key", key)
		}
		def.Colors[key] = color
	}

	return def, nil
}

func decodeSettings(scheme string, raw interface{}) (schemeSettings, error) {
	var settings schemeSettings

	if _, ok := raw.(map[string]interface{}); !ok {
		return settings, errors.Newf(errors.ErrConfigParse,
			"settings of colorscheme %q must be a table, got %s", scheme, typeName(raw)).
			WithDetail("colorscheme", scheme)
	}

	// A single string is accepted as a one-element inherit list.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &settings,
		ErrorUnused: true,
		DecodeHook:  mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return settings, errors.Wrap(err, errors.ErrInternal, "cannot build settings decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return settings, errors.Wrapf(err, errors.ErrConfigParse, "invalid settings for colorscheme %q", scheme).
			WithDetail("colorscheme", scheme)
	}

	return settings, nil
}

func parseTemplate(name string, raw interface{}) (types.TemplateInput, error) {
	var in types.TemplateInput

	if _, ok := raw.(map[string]interface{}); !ok {
		return in, errors.Newf(errors.ErrConfigParse, "template %q must be a table, got %s", name, typeName(raw)).
			WithDetail("template", name)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &in,
		ErrorUnused: true,
	})
	if err != nil {
		return in, errors.Wrap(err, errors.ErrInternal, "cannot build template decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return in, errors.Wrapf(err, errors.ErrConfigParse, "invalid entry for template %q", name).
			WithDetail("template", name)
	}

	return in, nil
}

func typeName(v interface{}) string {
	switch v.(type) {
	case map[string]interface{}:
		return "table"
	case []interface{}:
		return "array"
	case nil:
		return "nothing"
	default:
		return fmt.Sprintf("%T", v)
	}
}
