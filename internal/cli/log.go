package cli

import (
	"github.com/spf13/cobra"

	"patchset.dev/patchset/internal/output"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <revlist>",
		Short: "Show the oneline log for a revision range or series tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, splog, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = splog.Close() }()

			lines, err := client.Log(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, line := range lines {
				hash, subject, ok := splitOneline(line)
				if ok {
					splog.Info("%s %s", output.Dim(hash), output.Subject(subject))
				} else {
					splog.Info("%s", line)
				}
			}
			return nil
		},
	}

	return cmd
}

// splitOneline splits an `<abbreviated-hash> <subject>` log line.
func splitOneline(line string) (string, string, bool) {
	for i := 0; i < len(line); i++ {
		if line[i] == ' ' {
			return line[:i], line[i+1:], true
		}
	}
	return "", "", false
}
