// Package executil runs external commands and reports their exit status.
package executil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Error variables for execution errors
var (
	// ErrEmptyArgv is returned when a command is invoked with no argument vector
	ErrEmptyArgv = errors.New("empty argument vector")
)

// Result represents the outcome of a single external command invocation.
type Result struct {
	// Argv is the full argument vector that was executed
	Argv []string
	// ExitCode is the process exit status (0 on success)
	ExitCode int
	// Err is the underlying error, if the command could not run or exited non-zero
	Err error
}

// Ok reports whether the command ran and exited with status zero.
func (r Result) Ok() bool {
	return r.Err == nil && r.ExitCode == 0
}

// AsError converts a Result into an error suitable for propagation.
// Successful results yield nil. Non-zero exits yield an *ExitError carrying
// the original status so it can be forwarded verbatim to the caller's exit
// code. Commands that never ran (e.g. binary missing) yield the underlying
// error instead.
func (r Result) AsError() error {
	if r.Ok() {
		return nil
	}
	var execErr *exec.ExitError
	if errors.As(r.Err, &execErr) {
		return &ExitError{Argv: r.Argv, Code: r.ExitCode}
	}
	if r.Err != nil {
		return r.Err
	}
	return &ExitError{Argv: r.Argv, Code: r.ExitCode}
}

// ExitError reports an external command that finished with a non-zero status.
type ExitError struct {
	// Argv is the argument vector of the failed command
	Argv []string
	// Code is the exit status reported by the command
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", strings.Join(e.Argv, " "), e.Code)
}

// ExitCode extracts the process exit status carried by err.
// It returns 0 for nil, the embedded status for *ExitError,
// and 1 for any other error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// Runner executes external commands. Call sites decide per invocation
// whether a failure is propagated or tolerated.
type Runner interface {
	// Run executes argv[0] with the remaining arguments and blocks until it returns.
	Run(ctx context.Context, argv ...string) Result
}

// StreamRunner runs commands with their standard streams attached to the
// parent process, so the child's output reaches the user verbatim.
type StreamRunner struct {
	// Stdout receives the child's standard output. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives the child's standard error. Defaults to os.Stderr.
	Stderr io.Writer
	// Stdin feeds the child's standard input. Defaults to os.Stdin.
	Stdin io.Reader
}

// NewStreamRunner creates a StreamRunner attached to the process streams.
func NewStreamRunner() *StreamRunner {
	return &StreamRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
	}
}

// Run executes the command and blocks until it exits.
// The exit status is recovered from *exec.ExitError; errors that prevented
// the command from running at all (e.g. binary missing) report status 1.
func (s *StreamRunner) Run(ctx context.Context, argv ...string) Result {
	if len(argv) == 0 {
		return Result{ExitCode: 1, Err: ErrEmptyArgv}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	cmd.Stdin = s.Stdin

	err := cmd.Run()
	if err == nil {
		return Result{Argv: argv}
	}

	exitCode := 1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return Result{Argv: argv, ExitCode: exitCode, Err: err}
}
