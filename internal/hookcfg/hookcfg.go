// Package hookcfg reads the hook manager's own configuration file.
package hookcfg

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Error variables for hook configuration errors
var (
	// ErrConfigNotFound is returned when the hook configuration file does not exist
	ErrConfigNotFound = errors.New("hook configuration file not found")
	// ErrNoRepos is returned when the configuration declares no hook repositories
	ErrNoRepos = errors.New("hook configuration declares no repositories")
)

// Hook is one hook entry under a repository.
type Hook struct {
	// ID is the hook identifier
	ID string `yaml:"id"`
	// Name is the optional display name overriding the hook's default
	Name string `yaml:"name,omitempty"`
	// Stages optionally restricts the hook to specific hook classes
	Stages []string `yaml:"stages,omitempty"`
}

// Repo is one hook repository declaration.
type Repo struct {
	// Repo is the repository URL, or "local"/"meta" for built-in repos
	Repo string `yaml:"repo"`
	// Rev is the pinned revision
	Rev string `yaml:"rev,omitempty"`
	// Hooks are the hooks enabled from this repository
	Hooks []Hook `yaml:"hooks"`
}

// File represents the hook manager's configuration file.
type File struct {
	Repos []Repo `yaml:"repos"`
}

// Load reads and parses the hook configuration at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(f.Repos) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRepos, path)
	}

	return &f, nil
}

// HookCount returns the total number of hooks across all repositories.
func (f *File) HookCount() int {
	n := 0
	for _, r := range f.Repos {
		n += len(r.Hooks)
	}
	return n
}

// Label returns the display name for a hook, preferring the explicit name.
func (h Hook) Label() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}
