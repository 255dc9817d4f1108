// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding the project-level config
	globalConfDir string // Global config directory (e.g., ~/.config/taskdeck)
}

// NewLoader creates a new Loader rooted at the given project directory.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global
// config directory. This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
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
	return filepath.Join(configHome, "taskdeck")
}

// Load returns the merged configuration. Project config takes
// precedence over global config; defaults fill whatever remains.
func (l *Loader) Load() (*Config, error) {
	global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	project, err := l.loadFile(filepath.Join(l.projectDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		merge(base, global)
	}
	if project != nil {
		merge(base, project)
	}
	return base, nil
}

// Config is re-exported for callers that only import this package.
type Config = domain.Config

// loadFile parses a single TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// merge overlays non-empty fields of src onto dst.
func merge(dst, src *domain.Config) {
	if src.Store.Type != "" {
		dst.Store.Type = src.Store.Type
	}
	if src.Store.Path != "" {
		dst.Store.Path = src.Store.Path
	}
	if src.Store.Seed != "" {
		dst.Store.Seed = src.Store.Seed
	}
	if src.API.URL != "" {
		dst.API.URL = src.API.URL
	}
	if src.API.Addr != "" {
		dst.API.Addr = src.API.Addr
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
}
