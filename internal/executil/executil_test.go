package executil

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

// TestRunSuccess tests that a succeeding command reports status zero
func TestRunSuccess(t *testing.T) {
	var out bytes.Buffer
	runner := &StreamRunner{Stdout: &out, Stderr: &out}

	result := runner.Run(context.Background(), "sh", "-c", "echo ok")

	if !result.Ok() {
		t.Fatalf("expected success, got exit %d, err %v", result.ExitCode, result.Err)
	}
	if result.AsError() != nil {
		t.Errorf("AsError should be nil for a successful result")
	}
	if !strings.Contains(out.String(), "ok") {
		t.Errorf("child output should be streamed, got %q", out.String())
	}
}

// TestRunNonZeroExit tests exit status extraction
func TestRunNonZeroExit(t *testing.T) {
	var out bytes.Buffer
	runner := &StreamRunner{Stdout: &out, Stderr: &out}

	result := runner.Run(context.Background(), "sh", "-c", "exit 3")

	if result.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", result.ExitCode)
	}

	err := result.AsError()
	if err == nil {
		t.Fatal("expected an error for non-zero exit")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("expected embedded code 3, got %d", exitErr.Code)
	}
}

// TestRunMissingBinary tests that an unresolvable command reports status 1
func TestRunMissingBinary(t *testing.T) {
	runner := &StreamRunner{}

	result := runner.Run(context.Background(), "this-tool-does-not-exist-9999")

	if result.Ok() {
		t.Fatal("expected failure for missing binary")
	}
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1, got %d", result.ExitCode)
	}
}

// TestRunEmptyArgv tests the empty argument vector guard
func TestRunEmptyArgv(t *testing.T) {
	runner := &StreamRunner{}

	result := runner.Run(context.Background())

	if !errors.Is(result.Err, ErrEmptyArgv) {
		t.Errorf("expected ErrEmptyArgv, got %v", result.Err)
	}
}

// TestExitCode tests exit status recovery from errors
func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{"exit error", &ExitError{Argv: []string{"pre-commit"}, Code: 7}, 7},
		{"plain error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// TestExitErrorMessage tests the formatted error string
func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{Argv: []string{"pre-commit", "run"}, Code: 2}
	msg := err.Error()

	if !strings.Contains(msg, "pre-commit run") || !strings.Contains(msg, "2") {
		t.Errorf("unexpected error message: %q", msg)
	}
}
