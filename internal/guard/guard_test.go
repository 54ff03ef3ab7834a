package guard

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Tests compare raw text; disable ANSI escapes.
	color.NoColor = true
}

// foundLookPath resolves every name
func foundLookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

// missingLookPath resolves no name
func missingLookPath(name string) (string, error) {
	return "", errors.New("executable file not found in $PATH")
}

// TestCheckExistingUtility tests that a resolvable utility succeeds silently
func TestCheckExistingUtility(t *testing.T) {
	var out bytes.Buffer
	g := &Guard{LookPath: foundLookPath, Out: &out, InstallHint: DefaultInstallHint}

	if err := g.Check("ls"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output on success, got %q", out.String())
	}
}

// TestCheckMissingUtility tests the two-line failure message and sentinel error
func TestCheckMissingUtility(t *testing.T) {
	var out bytes.Buffer
	g := &Guard{LookPath: missingLookPath, Out: &out, InstallHint: DefaultInstallHint}

	err := g.Check("this-tool-does-not-exist-9999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "ERROR") {
		t.Errorf("output should contain ERROR marker, got %q", output)
	}
	if !strings.Contains(output, "this-tool-does-not-exist-9999") {
		t.Errorf("output should name the utility, got %q", output)
	}
	if !strings.Contains(output, "brew install this-tool-does-not-exist-9999") {
		t.Errorf("output should suggest an install command, got %q", output)
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("expected a two-line message, got %d lines: %q", len(lines), output)
	}
}

// TestCheckEmptyName tests that an empty utility name is treated as not found
func TestCheckEmptyName(t *testing.T) {
	var out bytes.Buffer
	g := &Guard{LookPath: foundLookPath, Out: &out}

	if err := g.Check(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty name, got %v", err)
	}
}

// TestCheckCustomInstallHint tests that the hint template is honored
func TestCheckCustomInstallHint(t *testing.T) {
	var out bytes.Buffer
	g := &Guard{LookPath: missingLookPath, Out: &out, InstallHint: "pip install %s"}

	_ = g.Check("pre-commit")

	if !strings.Contains(out.String(), "pip install pre-commit") {
		t.Errorf("expected custom hint in output, got %q", out.String())
	}
}

// TestNewDefaults tests that New wires the real resolver
func TestNewDefaults(t *testing.T) {
	g := New()
	if g.LookPath == nil || g.Out == nil || g.InstallHint == "" {
		t.Error("New should populate resolver, output, and hint")
	}
}
