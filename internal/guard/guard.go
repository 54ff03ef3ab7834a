// Package guard verifies that required command-line utilities are installed.
package guard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/fatih/color"
)

// Error variables for guard errors
var (
	// ErrNotFound is returned when a utility does not resolve on the search path
	ErrNotFound = errors.New("utility not found on PATH")
)

// DefaultInstallHint is the suggested installation command template.
// It must contain a single %s placeholder for the utility name.
const DefaultInstallHint = "brew install %s"

// LookPathFunc resolves a command name on the execution search path.
// It matches the signature of exec.LookPath.
type LookPathFunc func(name string) (string, error)

// Guard checks whether named utilities resolve on the search path and
// reports missing ones with an installation hint.
type Guard struct {
	// LookPath resolves utility names. Defaults to exec.LookPath.
	LookPath LookPathFunc
	// Out receives the failure message. Defaults to os.Stdout.
	Out io.Writer
	// InstallHint is the template for the suggested install command.
	InstallHint string
}

// New creates a Guard with the default resolver, output, and install hint.
func New() *Guard {
	return &Guard{
		LookPath:    exec.LookPath,
		Out:         os.Stdout,
		InstallHint: DefaultInstallHint,
	}
}

// Check reports whether name resolves on the search path.
// Success is silent. On failure it writes a two-line message (an emphasized
// ERROR marker and a suggested install command) and returns ErrNotFound so
// composite operations can stop immediately. An empty name is treated as
// not found.
func (g *Guard) Check(name string) error {
	if name != "" {
		if _, err := g.lookPath()(name); err == nil {
			return nil
		}
	}

	marker := color.New(color.FgRed, color.Bold).Sprint("ERROR:")
	fmt.Fprintf(g.out(), "%s %s is required but was not found on your PATH.\n", marker, name)
	fmt.Fprintf(g.out(), "    %s\n", fmt.Sprintf(g.installHint(), name))

	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (g *Guard) lookPath() LookPathFunc {
	if g.LookPath != nil {
		return g.LookPath
	}
	return exec.LookPath
}

func (g *Guard) out() io.Writer {
	if g.Out != nil {
		return g.Out
	}
	return os.Stdout
}

func (g *Guard) installHint() string {
	if g.InstallHint != "" {
		return g.InstallHint
	}
	return DefaultInstallHint
}
