// Package cli wires the patchset commands together with cobra.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "patchset",
		Short: "Patchset prepares and stores patch series as git tags",
		Long: `Patchset prepares and stores patch series as git tags.

Each publication of a branch is stored as a versioned tag (<branch>-v<N>)
whose annotation is the series cover letter. Patches are regenerated with
git format-patch and can be emailed with git send-email.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newPublishCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newSendCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
