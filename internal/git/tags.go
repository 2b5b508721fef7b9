package git

import (
	"context"
	"strings"

	patchseterrors "patchset.dev/patchset/internal/errors"
)

// showHeaderLines is the number of header lines git prints before the
// annotation message in `git show --raw --no-color <tag>` output for an
// annotated tag (tag line, tagger, date, blank).
const showHeaderLines = 4

// commitBoundaryPrefix starts the line that follows the annotation message
// in `git show --raw` output.
const commitBoundaryPrefix = "commit "

// Tags returns tag names, in git's own order. A non-empty pattern is passed
// through verbatim as a `tag -l` glob.
func (c *Client) Tags(ctx context.Context, pattern string) ([]string, error) {
	if pattern != "" {
		return c.runner.Run(ctx, "tag", "-l", pattern)
	}
	return c.runner.Run(ctx, "tag")
}

// CreateTag creates a tag named name. When messageFile is non-empty the tag
// is annotated, with the file contents as its message; otherwise a
// lightweight tag is created. Git itself rejects existing or invalid names.
func (c *Client) CreateTag(ctx context.Context, name, messageFile string) error {
	var err error
	if messageFile != "" {
		_, err = c.runner.Run(ctx, "tag", "-a", "-F", messageFile, name)
	} else {
		_, err = c.runner.Run(ctx, "tag", name)
	}
	return err
}

// TagMessage returns the annotation message of an annotated tag as lines.
// Returns an error satisfying errors.Is(err, errors.ErrTagMessageParse) when
// the output does not have the expected annotated-tag layout.
func (c *Client) TagMessage(ctx context.Context, tag string) ([]string, error) {
	lines, err := c.runner.Run(ctx, "show", "--raw", "--no-color", tag)
	if err != nil {
		return nil, err
	}
	message, err := parseTagMessage(lines)
	if err != nil {
		return nil, patchseterrors.NewTagMessageError(tag)
	}
	return message, nil
}

// parseTagMessage extracts the annotation message from `git show --raw
// --no-color <tag>` output. The expected layout is showHeaderLines header
// lines, the message body, a blank separator line, then the target commit
// header starting with commitBoundaryPrefix. The assumptions are pinned by
// a fixture test; if git's output format changes, this is the one place to
// fix.
func parseTagMessage(lines []string) ([]string, error) {
	if len(lines) < showHeaderLines {
		return nil, patchseterrors.ErrTagMessageParse
	}
	message := []string{}
	for _, line := range lines[showHeaderLines:] {
		if strings.HasPrefix(line, commitBoundaryPrefix) {
			if len(message) == 0 {
				return nil, patchseterrors.ErrTagMessageParse
			}
			// The line before the commit header is the separator git
			// inserts after the message, not part of it.
			return message[:len(message)-1], nil
		}
		message = append(message, line)
	}
	return nil, patchseterrors.ErrTagMessageParse
}
