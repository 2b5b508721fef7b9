package cli

import (
	"github.com/spf13/cobra"

	"patchset.dev/patchset/internal/config"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	var (
		base      string
		to        []string
		cc        []string
		prefix    string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Set per-repository publishing defaults",
		Long: `Set per-repository publishing defaults, stored inside .git so they apply
to this clone only. Values set here are used when the matching publish
flag is not given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, repoRoot, cfg, splog, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = splog.Close() }()

			flags := cmd.Flags()
			if flags.Changed("base") {
				cfg.Base = &base
			}
			if flags.Changed("to") {
				cfg.To = to
			}
			if flags.Changed("cc") {
				cfg.Cc = cc
			}
			if flags.Changed("subject-prefix") {
				cfg.SubjectPrefix = &prefix
			}
			if flags.Changed("output-dir") {
				cfg.OutputDirectory = &outputDir
			}

			if err := config.WriteRepoConfig(repoRoot, cfg); err != nil {
				return err
			}
			splog.Info("Updated %s/.git/.patchset_config", repoRoot)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "default base revision for series ranges")
	cmd.Flags().StringSliceVar(&to, "to", nil, "default recipient addresses")
	cmd.Flags().StringSliceVar(&cc, "cc", nil, "default carbon-copy addresses")
	cmd.Flags().StringVar(&prefix, "subject-prefix", "", "default subject prefix")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "default patch output directory")

	return cmd
}
