package cli

import (
	"github.com/spf13/cobra"

	"patchset.dev/patchset/internal/output"
	"patchset.dev/patchset/internal/series"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "list [pattern]",
		Short: "List tags, or the series tags matching a glob pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, splog, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = splog.Close() }()

			pattern := ""
			if len(args) > 0 {
				pattern = args[0]
			}
			if branch != "" {
				pattern = series.Glob(branch)
			}

			tags, err := client.Tags(cmd.Context(), pattern)
			if err != nil {
				return err
			}
			for _, tag := range tags {
				if _, err := series.Parse(tag); err == nil {
					splog.Info("%s", output.Tag(tag))
				} else {
					splog.Info("%s", tag)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "list the series tags of a branch")

	return cmd
}
