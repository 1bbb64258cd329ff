// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used as the config directory name.
	AppName = "envf"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileType is the config file format and extension.
	ConfigFileType = "toml"
)

// Config holds the launcher defaults read from the config file.
type Config struct {
	// Silent suppresses warnings about unprocessable env files, as if -s
	// were given on every invocation.
	Silent bool `mapstructure:"silent"`

	// Files are env files loaded before any file given with -f, so
	// command-line files override them on key collision. Relative paths
	// are resolved against the working directory of the run.
	Files []string `mapstructure:"files"`
}

// DefaultConfig returns the defaults applied when no config file exists.
func DefaultConfig() *Config {
	return &Config{}
}

// configDirOverride lets tests redirect the config directory.
var configDirOverride string

// SetConfigDirOverride forces Dir to return dir. An empty string restores
// the platform lookup.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Dir returns the envf configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
func Dir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the optional config file. A missing file yields the defaults
// with a nil error. Any other failure also yields the defaults, with an
// error describing why the file was ignored so the caller can warn and
// continue.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	dir, err := Dir()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(dir)
	v.SetDefault("silent", cfg.Silent)
	v.SetDefault("files", cfg.Files)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		path := filepath.Join(dir, ConfigFileName+"."+ConfigFileType)
		return cfg, fmt.Errorf("config file %s ignored: %w", path, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config file %s ignored: %w", v.ConfigFileUsed(), err)
	}

	return cfg, nil
}
