package git

import "context"

// FormatPatchOptions control the flags passed to `git format-patch`.
// Zero values omit the corresponding flag entirely.
type FormatPatchOptions struct {
	SubjectPrefix   string
	OutputDirectory string
	Numbered        bool
	CoverLetter     bool
}

// FormatPatch exports the commits in revlist as patch files. Patches are
// written by git itself; this call has no output of its own.
func (c *Client) FormatPatch(ctx context.Context, revlist string, opts FormatPatchOptions) error {
	args := []string{"format-patch"}
	if opts.SubjectPrefix != "" {
		args = append(args, "--subject-prefix", opts.SubjectPrefix)
	}
	if opts.OutputDirectory != "" {
		args = append(args, "--output-directory", opts.OutputDirectory)
	}
	if opts.Numbered {
		args = append(args, "--numbered")
	}
	if opts.CoverLetter {
		args = append(args, "--cover-letter")
	}
	args = append(args, revlist)

	_, err := c.runner.Run(ctx, args...)
	return err
}
