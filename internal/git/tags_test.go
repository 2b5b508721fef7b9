package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	patchseterrors "patchset.dev/patchset/internal/errors"
)

func TestTags(t *testing.T) {
	t.Parallel()

	t.Run("lists all tags without a pattern", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{Lines: map[string][]string{
			"tag": {"feature-v1", "feature-v2", "v1.0"},
		}}
		client := NewClientWithRunner(runner)

		tags, err := client.Tags(context.Background(), "")
		require.NoError(t, err)
		require.Equal(t, []string{"feature-v1", "feature-v2", "v1.0"}, tags)
		require.Equal(t, []string{"tag"}, runner.LastCommand())
	})

	t.Run("passes a pattern through unmodified", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{Lines: map[string][]string{
			"tag -l v1.*": {"v1.0"},
		}}
		client := NewClientWithRunner(runner)

		tags, err := client.Tags(context.Background(), "v1.*")
		require.NoError(t, err)
		require.Equal(t, []string{"v1.0"}, tags)
		require.Equal(t, []string{"tag", "-l", "v1.*"}, runner.LastCommand())
	})
}

func TestCreateTag(t *testing.T) {
	t.Parallel()

	t.Run("creates a lightweight tag without a message file", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{}
		client := NewClientWithRunner(runner)

		require.NoError(t, client.CreateTag(context.Background(), "feature-v1", ""))
		require.Equal(t, []string{"tag", "feature-v1"}, runner.LastCommand())
	})

	t.Run("creates an annotated tag from a message file", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{}
		client := NewClientWithRunner(runner)

		require.NoError(t, client.CreateTag(context.Background(), "feature-v1", "/tmp/cover.txt"))
		require.Equal(t, []string{"tag", "-a", "-F", "/tmp/cover.txt", "feature-v1"}, runner.LastCommand())
	})
}

// showFixture is the layout git produces for `show --raw --no-color` on an
// annotated tag: four header lines, the annotation message, a separator
// line, then the target commit header.
func showFixture(message ...string) []string {
	lines := []string{
		"tag feature-v1",
		"Tagger: Test User <test@example.com>",
		"Date:   Mon Aug 24 10:00:00 2026 +0000",
		"",
	}
	lines = append(lines, message...)
	return lines
}

func TestTagMessage(t *testing.T) {
	t.Parallel()

	t.Run("extracts the annotation message", func(t *testing.T) {
		t.Parallel()
		// Git prints a blank separator between the message and the commit
		// header; it is dropped along with the header itself.
		runner := &FakeRunner{Lines: map[string][]string{
			"show --raw --no-color feature-v1": showFixture(
				"Subject line", "", "body line", "", "commit abcdef123",
			),
		}}
		client := NewClientWithRunner(runner)

		message, err := client.TagMessage(context.Background(), "feature-v1")
		require.NoError(t, err)
		require.Equal(t, []string{"Subject line", "", "body line"}, message)
	})

	t.Run("fails when the commit boundary never appears", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{Lines: map[string][]string{
			"show --raw --no-color feature-v1": showFixture("Subject line", "body line"),
		}}
		client := NewClientWithRunner(runner)

		_, err := client.TagMessage(context.Background(), "feature-v1")
		require.ErrorIs(t, err, patchseterrors.ErrTagMessageParse)

		var tagErr *patchseterrors.TagMessageError
		require.ErrorAs(t, err, &tagErr)
		require.Equal(t, "feature-v1", tagErr.TagName)
	})

	t.Run("fails on output shorter than the header", func(t *testing.T) {
		t.Parallel()
		runner := &FakeRunner{Lines: map[string][]string{
			"show --raw --no-color broken": {"commit abcdef123"},
		}}
		client := NewClientWithRunner(runner)

		_, err := client.TagMessage(context.Background(), "broken")
		require.ErrorIs(t, err, patchseterrors.ErrTagMessageParse)
	})
}

func TestParseTagMessage(t *testing.T) {
	t.Parallel()

	t.Run("drops the separator line before the boundary", func(t *testing.T) {
		t.Parallel()
		message, err := parseTagMessage(showFixture("Subject line", "", "commit abcdef123"))
		require.NoError(t, err)
		require.Equal(t, []string{"Subject line"}, message)
	})

	t.Run("boundary as the first body line is malformed", func(t *testing.T) {
		t.Parallel()
		_, err := parseTagMessage(showFixture("commit abcdef123"))
		require.ErrorIs(t, err, patchseterrors.ErrTagMessageParse)
	})
}
