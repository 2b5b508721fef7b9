package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"patchset.dev/patchset/internal/series"
	"patchset.dev/patchset/internal/tui"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [tag]",
		Short: "Print the cover letter stored in a series tag",
		Long: `Print the annotation message of a series tag.

With no argument, the latest series tag of the current branch is shown;
on a terminal, a picker is offered when the branch has several versions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, splog, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = splog.Close() }()

			tag := ""
			if len(args) > 0 {
				tag = args[0]
			} else {
				branch, err := client.CurrentBranch(cmd.Context())
				if err != nil {
					return err
				}
				tags, err := client.Tags(cmd.Context(), series.Glob(branch))
				if err != nil {
					return err
				}
				switch {
				case len(tags) == 0:
					return fmt.Errorf("branch %s has no published series", branch)
				case len(tags) > 1 && tui.IsInteractive():
					tag, err = tui.Select("Which version?", tags)
					if err != nil {
						return err
					}
				default:
					latest, _ := series.Latest(tags, branch)
					tag = latest.TagName()
				}
			}

			message, err := client.TagMessage(cmd.Context(), tag)
			if err != nil {
				return err
			}
			splog.Page(strings.Join(message, "\n") + "\n")
			return nil
		},
	}

	return cmd
}
