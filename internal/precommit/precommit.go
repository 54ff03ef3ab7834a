// Package precommit drives the external pre-commit hook manager.
package precommit

import (
	"context"

	"github.com/hookkit/hookkit/internal/config"
	"github.com/hookkit/hookkit/internal/executil"
	"github.com/hookkit/hookkit/internal/guard"
)

// RunOptions selects the scope and output mode of a hook run.
type RunOptions struct {
	// AllFiles runs the hooks against every file in the working tree
	// instead of only the staged changes.
	AllFiles bool
	// ForceColor forces colorized hook output even when not attached to a terminal.
	ForceColor bool
}

// RunAll is the option set used by run-hooks-all and its lint alias.
var RunAll = RunOptions{AllFiles: true, ForceColor: true}

// Manager wraps the hook manager executable with the operations hookkit exposes.
// All methods are stateless one-shot invocations of the external tool.
type Manager struct {
	bin       string
	hookTypes []string
	runner    executil.Runner
	guard     *guard.Guard
}

// New creates a Manager from the hooks configuration.
func New(cfg config.HooksConfig, runner executil.Runner, g *guard.Guard) *Manager {
	return &Manager{
		bin:       cfg.Manager,
		hookTypes: append([]string(nil), cfg.Types...),
		runner:    runner,
		guard:     g,
	}
}

// Bin returns the hook manager executable name.
func (m *Manager) Bin() string {
	return m.bin
}

// Install reinstalls the hooks for every configured hook class.
//
// The guard runs first: if the hook manager itself is missing, nothing else
// is attempted and the guard's failure propagates. The uninstall step is
// tolerated unconditionally since removing hooks that were never installed
// is not an error. The install step carries --install-hooks so the hook
// environments are set up in the same pass; its failure propagates.
func (m *Manager) Install(ctx context.Context) error {
	if err := m.guard.Check(m.bin); err != nil {
		return err
	}

	_ = m.runner.Run(ctx, m.uninstallArgv()...)

	return m.runner.Run(ctx, m.installArgv()...).AsError()
}

// Update runs the hook manager's self-update (autoupdate) once.
func (m *Manager) Update(ctx context.Context) error {
	return m.runner.Run(ctx, m.bin, "autoupdate").AsError()
}

// Run invokes the hooks and propagates the hook manager's exit status verbatim.
func (m *Manager) Run(ctx context.Context, opts RunOptions) error {
	argv := []string{m.bin, "run"}
	if opts.AllFiles {
		argv = append(argv, "--all-files")
	}
	if opts.ForceColor {
		argv = append(argv, "--color=always")
	}
	return m.runner.Run(ctx, argv...).AsError()
}

// Init installs the hooks and then updates them, stopping at the first failure.
func (m *Manager) Init(ctx context.Context) error {
	if err := m.Install(ctx); err != nil {
		return err
	}
	return m.Update(ctx)
}

func (m *Manager) uninstallArgv() []string {
	argv := []string{m.bin, "uninstall"}
	for _, t := range m.hookTypes {
		argv = append(argv, "-t", t)
	}
	return argv
}

func (m *Manager) installArgv() []string {
	argv := []string{m.bin, "install"}
	for _, t := range m.hookTypes {
		argv = append(argv, "-t", t)
	}
	return append(argv, "--install-hooks")
}
