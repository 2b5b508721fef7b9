package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	patchseterrors "patchset.dev/patchset/internal/errors"
)

func TestCurrentBranch(t *testing.T) {
	t.Parallel()

	t.Run("returns the marked branch", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{Lines: map[string][]string{
			"branch --no-color": {"  main", "* feature", "  other"},
		}}
		client := NewClientWithRunner(runner)

		branch, err := client.CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "feature", branch)
		require.Equal(t, []string{"branch", "--no-color"}, runner.LastCommand())
	})

	t.Run("returns ErrNoCurrentBranch when no line is marked", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{Lines: map[string][]string{
			"branch --no-color": {"  main", "  feature"},
		}}
		client := NewClientWithRunner(runner)

		_, err := client.CurrentBranch(context.Background())
		require.ErrorIs(t, err, patchseterrors.ErrNoCurrentBranch)
	})

	t.Run("detached HEAD placeholder is not a branch", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{Lines: map[string][]string{
			"branch --no-color": {"* (HEAD detached at abc1234)", "  main"},
		}}
		client := NewClientWithRunner(runner)

		_, err := client.CurrentBranch(context.Background())
		require.ErrorIs(t, err, patchseterrors.ErrNoCurrentBranch)
	})

	t.Run("rebase placeholder is not a branch", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{Lines: map[string][]string{
			"branch --no-color": {"* (no branch, rebasing feature)", "  main"},
		}}
		client := NewClientWithRunner(runner)

		_, err := client.CurrentBranch(context.Background())
		require.ErrorIs(t, err, patchseterrors.ErrNoCurrentBranch)
	})

	t.Run("returns ErrNoCurrentBranch for empty output", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{}
		client := NewClientWithRunner(runner)

		_, err := client.CurrentBranch(context.Background())
		require.ErrorIs(t, err, patchseterrors.ErrNoCurrentBranch)
	})
}
