// Package errors provides sentinel errors and custom error types for the patchset application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNoCurrentBranch indicates that no branch carries the current-branch
	// marker, e.g. a detached HEAD or a repository with no commits
	ErrNoCurrentBranch = errors.New("no current branch")

	// ErrTagMessageParse indicates that tag annotation output did not have
	// the expected shape (lightweight tag, or a git output format change)
	ErrTagMessageParse = errors.New("failed to parse tag message")

	// ErrNotASeriesTag indicates that a tag name does not follow the
	// <branch>-v<N> series naming scheme
	ErrNotASeriesTag = errors.New("not a series tag")
)

// TagMessageError represents a failure to extract the annotation message of a tag
type TagMessageError struct {
	TagName string
}

func (e *TagMessageError) Error() string {
	return fmt.Sprintf("failed to parse annotation message of tag %s", e.TagName)
}

// Is returns true if the target error is ErrTagMessageParse
func (e *TagMessageError) Is(target error) bool {
	return target == ErrTagMessageParse
}

// NewTagMessageError creates a new TagMessageError
func NewTagMessageError(tagName string) *TagMessageError {
	return &TagMessageError{TagName: tagName}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
