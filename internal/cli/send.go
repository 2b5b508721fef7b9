package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"patchset.dev/patchset/internal/actions"
)

// newSendCmd creates the send command
func newSendCmd() *cobra.Command {
	var (
		to  []string
		cc  []string
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "send <revlist-or-dir>",
		Short: "Email a series with git send-email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cfg, splog, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = splog.Close() }()

			if !cmd.Flags().Changed("to") && len(cfg.To) > 0 {
				to = cfg.To
			}
			if !cmd.Flags().Changed("cc") && len(cfg.Cc) > 0 {
				cc = cfg.Cc
			}
			if len(to) == 0 {
				return fmt.Errorf("no recipients: pass --to or configure a default")
			}

			_, err = actions.Send(cmd.Context(), client, actions.SendOptions{
				To:     to,
				Cc:     cc,
				Target: args[0],
				Yes:    yes,
			}, splog)
			return err
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "recipient address (repeatable)")
	cmd.Flags().StringSliceVar(&cc, "cc", nil, "carbon-copy address (repeatable)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "send without asking for confirmation")

	return cmd
}
