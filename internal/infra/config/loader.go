// Package config provides configuration loading functionality.
// Precedence, lowest to highest: built-in defaults, the global config file
// (~/.config/trusty/config.toml), the project config file
// (.trusty/config.toml), then TRUSTY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/trustyhq/trusty/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files and the environment.
type Loader struct {
	trustyDir     string // Path to the project .trusty directory
	globalConfDir string // Path to the global config directory
}

// NewLoader creates a new Loader.
func NewLoader(trustyDir string) *Loader {
	return &Loader{
		trustyDir:     trustyDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(trustyDir, globalConfDir string) *Loader {
	return &Loader{
		trustyDir:     trustyDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// fileConfig mirrors the TOML file layout.
type fileConfig struct {
	Claude struct {
		Command        string `toml:"command"`
		Model          string `toml:"model"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	} `toml:"claude"`
	Tasks struct {
		DefaultPriority string `toml:"default_priority"`
	} `toml:"tasks"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// envOverrides holds TRUSTY_* environment variable overrides.
type envOverrides struct {
	ClaudeCommand   string `envconfig:"CLAUDE_COMMAND"`
	ClaudeModel     string `envconfig:"CLAUDE_MODEL"`
	ClaudeTimeout   int    `envconfig:"CLAUDE_TIMEOUT_SECONDS"`
	DefaultPriority string `envconfig:"DEFAULT_PRIORITY"`
	LogLevel        string `envconfig:"LOG_LEVEL"`
}

// Load returns the merged configuration.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		globalPath := filepath.Join(l.globalConfDir, domain.ConfigFileName)
		if err := mergeFile(cfg, globalPath); err != nil {
			return nil, err
		}
	}

	repoPath := filepath.Join(l.trustyDir, domain.ConfigFileName)
	if err := mergeFile(cfg, repoPath); err != nil {
		return nil, err
	}

	var env envOverrides
	if err := envconfig.Process("trusty", &env); err != nil {
		return nil, fmt.Errorf("read environment config: %w", err)
	}
	mergeEnv(cfg, env)

	return cfg, nil
}

// mergeFile overlays the config file at path onto cfg. A missing file is
// not an error.
func mergeFile(cfg *domain.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Claude.Command != "" {
		cfg.Claude.Command = fc.Claude.Command
	}
	if fc.Claude.Model != "" {
		cfg.Claude.Model = fc.Claude.Model
	}
	if fc.Claude.TimeoutSeconds > 0 {
		cfg.Claude.TimeoutSeconds = fc.Claude.TimeoutSeconds
	}
	if fc.Tasks.DefaultPriority != "" {
		cfg.Tasks.DefaultPriority = fc.Tasks.DefaultPriority
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}
	return nil
}

func mergeEnv(cfg *domain.Config, env envOverrides) {
	if env.ClaudeCommand != "" {
		cfg.Claude.Command = env.ClaudeCommand
	}
	if env.ClaudeModel != "" {
		cfg.Claude.Model = env.ClaudeModel
	}
	if env.ClaudeTimeout > 0 {
		cfg.Claude.TimeoutSeconds = env.ClaudeTimeout
	}
	if env.DefaultPriority != "" {
		cfg.Tasks.DefaultPriority = env.DefaultPriority
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
