// Package git provides a thin wrapper around the git command line for
// patch-series operations. Every query shells out to git and parses its
// plain-text output; nothing is cached between calls.
package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	patchseterrors "patchset.dev/patchset/internal/errors"
)

// Runner executes git commands. It is the single injection point for test
// doubles; everything else in this package is built on top of it.
type Runner interface {
	// Run executes git with the given argv, waits for it to exit and returns
	// stdout split into lines. A non-zero exit status or a failure to spawn
	// the process returns a *errors.GitCommandError.
	Run(ctx context.Context, args ...string) ([]string, error)

	// RunInteractive executes git with stdin/stdout/stderr attached to the
	// terminal. Used for commands whose output is not parsed and which may
	// prompt the user, such as send-email.
	RunInteractive(ctx context.Context, args ...string) error
}

// CommandRunner runs git commands against a working directory.
// The zero value runs commands in the process working directory.
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command and returns its stdout as lines.
func (r *CommandRunner) Run(ctx context.Context, args ...string) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, patchseterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return SplitLines(stdout.String()), nil
}

// RunInteractive executes a git command with the terminal attached.
func (r *CommandRunner) RunInteractive(ctx context.Context, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return patchseterrors.NewGitCommandError("git", args, "", "", err)
	}
	return nil
}

// SplitLines splits captured git output into lines. Git output ends in a
// line terminator, which a naive split turns into a trailing empty entry;
// all trailing terminators are stripped first so the result never carries
// one. Empty output yields an empty slice.
func SplitLines(output string) []string {
	output = strings.TrimRight(output, "\r\n")
	if output == "" {
		return []string{}
	}
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
