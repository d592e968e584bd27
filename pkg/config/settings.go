package config

import (
	"strings"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/paths"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes the environment variables that override settings
const EnvPrefix = "TINT_"

// Settings keys, also the lower-cased environment variable suffixes
const (
	KeyConfig    = "config"
	KeyTemplates = "templates"
	KeyOutput    = "output"
)

// Settings are the locations tint reads from and writes to
type Settings struct {
	ConfigPath   string `koanf:"config"`
	TemplatesDir string `koanf:"templates"`
	OutputDir    string `koanf:"output"`
}

// LoadSettings resolves settings from defaults, TINT_* environment variables
// and overrides, later layers winning. Empty values are skipped in both
// the environment and the overrides.
func LoadSettings(overrides map[string]string) (*Settings, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		KeyConfig:    paths.DefaultConfigPath(),
		KeyTemplates: paths.DefaultTemplatesDir(),
		KeyOutput:    paths.DefaultOutputDir(),
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load environment settings")
	}

	explicit := make(map[string]interface{}, len(overrides))
	for key, value := range overrides {
		if value != "" {
			explicit[key] = value
		}
	}
	if err := k.Load(confmap.Provider(explicit, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load setting overrides")
	}

	var s Settings
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid settings")
	}

	s.ConfigPath = paths.Clean(s.ConfigPath)
	s.TemplatesDir = paths.Clean(s.TemplatesDir)
	s.OutputDir = paths.Clean(s.OutputDir)

	return &s, nil
}
