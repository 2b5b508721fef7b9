package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRepoRoot creates a directory with an empty .git inside; the config
// layer never talks to git itself.
func fakeRepoRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	return root
}

func TestGetRepoConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()
		root := fakeRepoRoot(t)

		cfg, err := GetRepoConfig(root)
		require.NoError(t, err)
		require.Empty(t, cfg.To)
		require.Nil(t, cfg.SubjectPrefix)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		root := fakeRepoRoot(t)

		prefix := "RFC"
		numbered := true
		in := &RepoConfig{
			To:            []string{"list@example.com"},
			Cc:            []string{"reviewer@example.com"},
			SubjectPrefix: &prefix,
			Numbered:      &numbered,
		}
		require.NoError(t, WriteRepoConfig(root, in))

		out, err := GetRepoConfig(root)
		require.NoError(t, err)
		require.Equal(t, in, out)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()
		root := fakeRepoRoot(t)
		require.NoError(t, os.WriteFile(filepath.Join(root, ".git", ".patchset_config"), []byte("{nope"), 0o644))

		_, err := GetRepoConfig(root)
		require.Error(t, err)
	})
}

func TestGetBase(t *testing.T) {
	t.Parallel()

	t.Run("defaults to master", func(t *testing.T) {
		t.Parallel()
		root := fakeRepoRoot(t)
		base, err := GetBase(root)
		require.NoError(t, err)
		require.Equal(t, "master", base)
	})

	t.Run("honors the configured base", func(t *testing.T) {
		t.Parallel()
		root := fakeRepoRoot(t)
		main := "main"
		require.NoError(t, WriteRepoConfig(root, &RepoConfig{Base: &main}))

		base, err := GetBase(root)
		require.NoError(t, err)
		require.Equal(t, "main", base)
	})
}
