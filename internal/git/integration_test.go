package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	patchseterrors "patchset.dev/patchset/internal/errors"
	"patchset.dev/patchset/internal/git"
	"patchset.dev/patchset/testhelpers"
)

func TestClientAgainstRealGit(t *testing.T) {
	t.Run("current branch and tags", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		client := git.NewClient(scene.Dir)
		ctx := context.Background()

		branch, err := client.CurrentBranch(ctx)
		require.NoError(t, err)
		require.Equal(t, "main", branch)

		require.NoError(t, scene.Repo.CreateAnnotatedTag("main-v1", "cover letter"))
		require.NoError(t, scene.Repo.CreateLightweightTag("unrelated"))

		tags, err := client.Tags(ctx, "main-v*")
		require.NoError(t, err)
		require.Equal(t, []string{"main-v1"}, tags)

		// Read-only queries are repeatable
		again, err := client.Tags(ctx, "main-v*")
		require.NoError(t, err)
		require.Equal(t, tags, again)
	})

	t.Run("tag message round trip", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		client := git.NewClient(scene.Dir)
		ctx := context.Background()

		require.NoError(t, scene.Repo.CreateAnnotatedTag("main-v1", "Subject line"))

		message, err := client.TagMessage(ctx, "main-v1")
		require.NoError(t, err)
		require.Equal(t, []string{"Subject line"}, message)
	})

	t.Run("tag message of a lightweight tag fails to parse", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		client := git.NewClient(scene.Dir)

		require.NoError(t, scene.Repo.CreateLightweightTag("plain"))

		_, err := client.TagMessage(context.Background(), "plain")
		require.ErrorIs(t, err, patchseterrors.ErrTagMessageParse)
	})

	t.Run("detached HEAD has no current branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		client := git.NewClient(scene.Dir)

		require.NoError(t, scene.Repo.DetachHead())

		_, err := client.CurrentBranch(context.Background())
		require.ErrorIs(t, err, patchseterrors.ErrNoCurrentBranch)
	})

	t.Run("failing command surfaces a GitCommandError", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		client := git.NewClient(scene.Dir)

		_, err := client.Log(context.Background(), "no-such-revision")
		var cmdErr *patchseterrors.GitCommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, "git", cmdErr.Command)
	})

	t.Run("oneline log covers the range", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		client := git.NewClient(scene.Dir)
		ctx := context.Background()

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("change one", "a"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("change two", "b"))

		lines, err := client.Log(ctx, "main..feature")
		require.NoError(t, err)
		require.Len(t, lines, 2)
		require.Contains(t, lines[0], "change two")
		require.Contains(t, lines[1], "change one")
	})
}
