// Package config provides configuration management for the hookkit CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the optional configuration file looked up in the working directory.
const FileName = ".hookkit.toml"

// Default values used when no configuration file is present.
const (
	// DefaultManager is the hook manager executable invoked for every operation
	DefaultManager = "pre-commit"
	// DefaultInstallHint is the suggested install command template for missing utilities
	DefaultInstallHint = "brew install %s"
	// DefaultHookConfig is the hook manager's own configuration file
	DefaultHookConfig = ".pre-commit-config.yaml"
	// DefaultDirectoryURL is the hooks directory page searched by search-hooks
	DefaultDirectoryURL = "https://pre-commit.com/hooks.html"
)

// DefaultHookTypes are the hook classes installed and uninstalled by default.
var DefaultHookTypes = []string{"pre-commit", "commit-msg"}

// Error variables for configuration errors
var (
	// ErrMissingManager is returned when the manager binary name is empty
	ErrMissingManager = errors.New("missing required field: manager")
	// ErrNoHookTypes is returned when the hook type list is empty
	ErrNoHookTypes = errors.New("at least one hook type is required")
	// ErrInvalidInstallHint is returned when the install hint has no %s placeholder
	ErrInvalidInstallHint = errors.New("install_hint must contain a single %s placeholder")
)

// HooksConfig configures the hook manager invocations.
type HooksConfig struct {
	// Manager is the hook manager executable name
	Manager string `toml:"manager"`
	// Types are the hook classes passed to install and uninstall
	Types []string `toml:"types"`
	// InstallHint is the suggested install command template (one %s placeholder)
	InstallHint string `toml:"install_hint"`
	// Config is the path to the hook manager's configuration file
	Config string `toml:"config"`
}

// DirectoryConfig configures the hooks directory search.
type DirectoryConfig struct {
	// URL is the hooks directory page to fetch
	URL string `toml:"url"`
}

// Config represents the entire .hookkit.toml configuration file.
type Config struct {
	Hooks     HooksConfig     `toml:"hooks"`
	Directory DirectoryConfig `toml:"directory"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Hooks: HooksConfig{
			Manager:     DefaultManager,
			Types:       append([]string(nil), DefaultHookTypes...),
			InstallHint: DefaultInstallHint,
			Config:      DefaultHookConfig,
		},
		Directory: DirectoryConfig{
			URL: DefaultDirectoryURL,
		},
	}
}

// Load reads the configuration file at path, applying defaults for any field
// the file leaves unset. A missing file is not an error: the tool is fully
// functional with zero configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// applyDefaults fills fields the file left empty.
func (c *Config) applyDefaults() {
	if c.Hooks.Manager == "" {
		c.Hooks.Manager = DefaultManager
	}
	if len(c.Hooks.Types) == 0 {
		c.Hooks.Types = append([]string(nil), DefaultHookTypes...)
	}
	if c.Hooks.InstallHint == "" {
		c.Hooks.InstallHint = DefaultInstallHint
	}
	if c.Hooks.Config == "" {
		c.Hooks.Config = DefaultHookConfig
	}
	if c.Directory.URL == "" {
		c.Directory.URL = DefaultDirectoryURL
	}
}

// Validate checks the configuration for required fields and well-formed values.
func (c *Config) Validate() error {
	if c.Hooks.Manager == "" {
		return ErrMissingManager
	}
	if len(c.Hooks.Types) == 0 {
		return ErrNoHookTypes
	}
	for _, t := range c.Hooks.Types {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("%w: got an empty hook type", ErrNoHookTypes)
		}
	}
	if strings.Count(c.Hooks.InstallHint, "%s") != 1 {
		return fmt.Errorf("%w: got %q", ErrInvalidInstallHint, c.Hooks.InstallHint)
	}
	return nil
}
