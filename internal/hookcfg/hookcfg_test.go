package hookcfg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `repos:
-   repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.6.0
    hooks:
    -   id: trailing-whitespace
    -   id: end-of-file-fixer
-   repo: local
    hooks:
    -   id: lint
        name: Run the linter
        stages: [pre-commit]
`

// writeSample writes a hook configuration to a temp file and returns its path
func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".pre-commit-config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// TestLoadSampleConfig tests decoding of a realistic configuration
func TestLoadSampleConfig(t *testing.T) {
	f, err := Load(writeSample(t, sampleConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.Repos) != 2 {
		t.Fatalf("expected 2 repos, got %d", len(f.Repos))
	}
	if f.Repos[0].Rev != "v4.6.0" {
		t.Errorf("expected pinned rev, got %q", f.Repos[0].Rev)
	}
	if f.HookCount() != 3 {
		t.Errorf("expected 3 hooks, got %d", f.HookCount())
	}
}

// TestLoadMissingFile tests the not-found sentinel
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

// TestLoadEmptyConfig tests rejection of a configuration without repos
func TestLoadEmptyConfig(t *testing.T) {
	_, err := Load(writeSample(t, "repos: []\n"))
	if !errors.Is(err, ErrNoRepos) {
		t.Errorf("expected ErrNoRepos, got %v", err)
	}
}

// TestLoadMalformedYAML tests parse failure
func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeSample(t, "repos: [unclosed"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

// TestHookLabel tests display name preference
func TestHookLabel(t *testing.T) {
	if got := (Hook{ID: "lint", Name: "Run the linter"}).Label(); got != "Run the linter" {
		t.Errorf("expected explicit name, got %q", got)
	}
	if got := (Hook{ID: "lint"}).Label(); got != "lint" {
		t.Errorf("expected id fallback, got %q", got)
	}
}
