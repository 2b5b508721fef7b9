package git

import (
	"context"
	"strings"

	patchseterrors "patchset.dev/patchset/internal/errors"
)

// CurrentBranch returns the name of the currently checked out branch.
// It scans `git branch --no-color` output for the line carrying the
// current-branch marker and returns the name following it. Returns
// errors.ErrNoCurrentBranch when no line is marked (detached HEAD, or a
// repository with no commits).
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	lines, err := c.runner.Run(ctx, "branch", "--no-color")
	if err != nil {
		return "", err
	}
	for _, line := range lines {
		if !strings.Contains(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		// Detached or rebasing HEAD is marked too, but with a placeholder
		// like "* (HEAD detached at abc1234)" instead of a branch name.
		if strings.HasPrefix(fields[1], "(") {
			return "", patchseterrors.ErrNoCurrentBranch
		}
		return fields[1], nil
	}
	return "", patchseterrors.ErrNoCurrentBranch
}
