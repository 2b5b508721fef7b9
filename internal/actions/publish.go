// Package actions implements the patchset workflows that sequence git
// operations: publishing a series and emailing it.
package actions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	patchseterrors "patchset.dev/patchset/internal/errors"
	"patchset.dev/patchset/internal/git"
	"patchset.dev/patchset/internal/output"
	"patchset.dev/patchset/internal/series"
	"patchset.dev/patchset/internal/tui"
)

// PublishOptions are the resolved options for a publish run, after repo
// config defaults and command-line flags have been merged.
type PublishOptions struct {
	// Base is the revision the series applies on top of; the exported
	// range is <base>..<branch>.
	Base string

	// Cover letter sources, first one set wins. NoMessage skips the cover
	// letter entirely and stores the series as a lightweight tag.
	Message     string
	MessageFile string
	NoMessage   bool

	To []string
	Cc []string

	SubjectPrefix   string
	OutputDirectory string
	Numbered        bool
	CoverLetter     bool

	// Yes skips the send confirmation prompt.
	Yes bool
}

// PublishResult reports what a publish run produced.
type PublishResult struct {
	Tag     series.Series
	Revlist string
	Sent    bool
}

// Publish stores the current branch's patch series as the next versioned
// series tag, exports the patches and optionally emails them.
func Publish(ctx context.Context, client *git.Client, opts PublishOptions, splog *output.Splog) (*PublishResult, error) {
	branch, err := client.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}
	if branch == opts.Base {
		return nil, fmt.Errorf("refusing to publish from the base branch %q; check out the series branch first", branch)
	}

	existing, err := client.Tags(ctx, series.Glob(branch))
	if err != nil {
		return nil, err
	}
	next := series.Next(existing, branch)

	if err := createSeriesTag(ctx, client, next, existing, opts); err != nil {
		return nil, err
	}
	splog.Info("Stored series as tag %s", output.Tag(next.TagName()))

	revlist := fmt.Sprintf("%s..%s", opts.Base, branch)
	if err := client.FormatPatch(ctx, revlist, git.FormatPatchOptions{
		SubjectPrefix:   opts.SubjectPrefix,
		OutputDirectory: opts.OutputDirectory,
		Numbered:        opts.Numbered,
		CoverLetter:     opts.CoverLetter,
	}); err != nil {
		return nil, err
	}
	splog.Debug("exported patches for %s", revlist)

	result := &PublishResult{Tag: next, Revlist: revlist}
	if len(opts.To) == 0 {
		return result, nil
	}

	target := revlist
	if opts.OutputDirectory != "" {
		target = opts.OutputDirectory
	}
	sent, err := Send(ctx, client, SendOptions{
		To:     opts.To,
		Cc:     opts.Cc,
		Target: target,
		Yes:    opts.Yes,
	}, splog)
	if err != nil {
		return nil, err
	}
	result.Sent = sent
	return result, nil
}

// createSeriesTag creates the tag for the next series version, annotated
// with the cover letter unless NoMessage is set.
func createSeriesTag(ctx context.Context, client *git.Client, next series.Series, existing []string, opts PublishOptions) error {
	if opts.NoMessage {
		return client.CreateTag(ctx, next.TagName(), "")
	}

	message, err := coverLetter(ctx, client, next, existing, opts)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp("", "patchset-cover-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create cover letter file: %w", err)
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	if _, err := tmpFile.WriteString(message); err != nil {
		return fmt.Errorf("failed to write cover letter file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close cover letter file: %w", err)
	}

	return client.CreateTag(ctx, next.TagName(), tmpFile.Name())
}

// coverLetter resolves the cover letter text: explicit message, message
// file, or the editor seeded with the previous version's letter.
func coverLetter(ctx context.Context, client *git.Client, next series.Series, existing []string, opts PublishOptions) (string, error) {
	if opts.Message != "" {
		return opts.Message, nil
	}
	if opts.MessageFile != "" {
		content, err := os.ReadFile(opts.MessageFile)
		if err != nil {
			return "", fmt.Errorf("failed to read cover letter file: %w", err)
		}
		return string(content), nil
	}

	seed := ""
	if prev, ok := series.Latest(existing, next.Branch); ok {
		lines, err := client.TagMessage(ctx, prev.TagName())
		if err == nil {
			seed = strings.Join(lines, "\n") + "\n"
		} else if !errors.Is(err, patchseterrors.ErrTagMessageParse) {
			return "", err
		}
		// A lightweight previous tag just means an empty seed.
	}

	message, err := tui.OpenEditor(seed, "patchset-cover-*.txt")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("empty cover letter; use --no-message to publish without one")
	}
	return message, nil
}
