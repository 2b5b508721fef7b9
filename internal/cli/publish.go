package cli

import (
	"github.com/spf13/cobra"

	"patchset.dev/patchset/internal/actions"
	"patchset.dev/patchset/internal/config"
)

// newPublishCmd creates the publish command
func newPublishCmd() *cobra.Command {
	var (
		message     string
		messageFile string
		noMessage   bool
		to          []string
		cc          []string
		prefix      string
		outputDir   string
		numbered    bool
		coverLetter bool
		yes         bool
	)

	cmd := &cobra.Command{
		Use:   "publish [base]",
		Short: "Store the current branch as the next series tag and export its patches",
		Long: `Store the current branch's patch series as the next versioned tag and
regenerate its patches with git format-patch.

The series covers <base>..<branch>. The cover letter is taken from
--message or --message-file, or edited interactively, seeded with the
previous version's letter. With recipients configured or given via --to,
the series is emailed with git send-email after confirmation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, repoRoot, cfg, splog, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = splog.Close() }()

			opts := actions.PublishOptions{
				Message:         message,
				MessageFile:     messageFile,
				NoMessage:       noMessage,
				To:              to,
				Cc:              cc,
				SubjectPrefix:   prefix,
				OutputDirectory: outputDir,
				Numbered:        numbered,
				CoverLetter:     coverLetter,
				Yes:             yes,
			}
			if len(args) > 0 {
				opts.Base = args[0]
			}
			applyConfigDefaults(cmd, &opts, cfg, repoRoot)

			_, err = actions.Publish(cmd.Context(), client, opts, splog)
			return err
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "cover letter text")
	cmd.Flags().StringVarP(&messageFile, "message-file", "F", "", "read the cover letter from a file")
	cmd.Flags().BoolVar(&noMessage, "no-message", false, "publish without a cover letter (lightweight tag)")
	cmd.Flags().StringSliceVar(&to, "to", nil, "recipient address (repeatable)")
	cmd.Flags().StringSliceVar(&cc, "cc", nil, "carbon-copy address (repeatable)")
	cmd.Flags().StringVar(&prefix, "subject-prefix", "", "subject prefix for format-patch (e.g. RFC)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory to write patches into")
	cmd.Flags().BoolVarP(&numbered, "numbered", "n", false, "number the patches (format-patch --numbered)")
	cmd.Flags().BoolVar(&coverLetter, "cover-letter", false, "emit a cover-letter patch (format-patch --cover-letter)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "send without asking for confirmation")

	return cmd
}

// applyConfigDefaults fills in options the user did not set on the command
// line from the repository config.
func applyConfigDefaults(cmd *cobra.Command, opts *actions.PublishOptions, cfg *config.RepoConfig, repoRoot string) {
	flags := cmd.Flags()
	if !flags.Changed("to") && len(cfg.To) > 0 {
		opts.To = cfg.To
	}
	if !flags.Changed("cc") && len(cfg.Cc) > 0 {
		opts.Cc = cfg.Cc
	}
	if !flags.Changed("subject-prefix") && cfg.SubjectPrefix != nil {
		opts.SubjectPrefix = *cfg.SubjectPrefix
	}
	if !flags.Changed("output-dir") && cfg.OutputDirectory != nil {
		opts.OutputDirectory = *cfg.OutputDirectory
	}
	if !flags.Changed("numbered") && cfg.Numbered != nil {
		opts.Numbered = *cfg.Numbered
	}
	if !flags.Changed("cover-letter") && cfg.CoverLetter != nil {
		opts.CoverLetter = *cfg.CoverLetter
	}
	if opts.Base == "" {
		// GetBase cannot fail once GetRepoConfig has succeeded.
		base, _ := config.GetBase(repoRoot)
		opts.Base = base
	}
}
