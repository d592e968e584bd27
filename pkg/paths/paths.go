package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/tint/pkg/errors"
)

const (
	// AppDirName is the directory tint uses below each XDG base directory
	AppDirName = "tint"

	// ConfigFileName is the default configuration file name
	ConfigFileName = "config.toml"

	// TemplatesDirName is the default templates directory name
	TemplatesDirName = "templates"

	// OutputDirName is the default output directory name
	OutputDirName = "output"

	// LogFileName is the log file name inside the state directory
	LogFileName = "tint.log"
)

// Environment variable names
const (
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
	EnvXDGDataHome   = "XDG_DATA_HOME"
	EnvXDGStateHome  = "XDG_STATE_HOME"
	EnvHome          = "HOME"
)

// ConfigDir returns tint's configuration directory
func ConfigDir() string {
	return filepath.Join(baseDir(EnvXDGConfigHome, xdg.ConfigHome), AppDirName)
}

// DataDir returns tint's data directory
func DataDir() string {
	return filepath.Join(baseDir(EnvXDGDataHome, xdg.DataHome), AppDirName)
}

// StateDir returns tint's state directory
func StateDir() string {
	return filepath.Join(baseDir(EnvXDGStateHome, xdg.StateHome), AppDirName)
}

// DefaultConfigPath returns the default configuration file location
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// DefaultTemplatesDir returns the default templates directory
func DefaultTemplatesDir() string {
	return filepath.Join(ConfigDir(), TemplatesDirName)
}

// DefaultOutputDir returns the default output root
func DefaultOutputDir() string {
	return filepath.Join(DataDir(), OutputDirName)
}

// LogFilePath returns the log file location
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

func baseDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return ExpandHome(dir)
	}
	return fallback
}

// ExpandHome expands a leading ~ to the user's home directory.
// "~user" forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// GetHomeDirectory returns the user's home directory, falling back to $HOME
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// Clean expands ~ and cleans path. An empty path stays empty.
func Clean(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(ExpandHome(path))
}
