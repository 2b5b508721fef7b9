package actions

import (
	"context"
	"strings"

	"patchset.dev/patchset/internal/git"
	"patchset.dev/patchset/internal/output"
	"patchset.dev/patchset/internal/tui"
)

// SendOptions are the resolved options for an email dispatch.
type SendOptions struct {
	To []string
	Cc []string

	// Target is a revision range or a directory of patch files, passed
	// through to git send-email.
	Target string

	// Yes skips the confirmation prompt.
	Yes bool
}

// Send emails a series via git send-email after confirming with the user.
// It reports whether the dispatch was actually issued; declining the
// prompt is not an error.
func Send(ctx context.Context, client *git.Client, opts SendOptions, splog *output.Splog) (bool, error) {
	if !opts.Yes {
		if !tui.IsInteractive() {
			splog.Warn("Not sending email: no terminal to confirm on (use --yes to send anyway)")
			return false, nil
		}
		ok, err := tui.Confirm("Send "+opts.Target+" to "+strings.Join(opts.To, ", ")+"?", false)
		if err != nil {
			return false, err
		}
		if !ok {
			splog.Info("Not sending email")
			return false, nil
		}
	}

	if err := client.SendEmail(ctx, opts.To, opts.Cc, opts.Target); err != nil {
		return false, err
	}
	splog.Info("Sent %s", opts.Target)
	return true, nil
}
