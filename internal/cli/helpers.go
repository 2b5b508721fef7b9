package cli

import (
	"fmt"
	"path/filepath"

	"patchset.dev/patchset/internal/config"
	"patchset.dev/patchset/internal/git"
	"patchset.dev/patchset/internal/output"
)

// setup locates the repository and builds the pieces every command needs:
// a git client rooted at the repo, the repo config and a logger writing its
// debug log under .git.
func setup() (*git.Client, string, *config.RepoConfig, *output.Splog, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, "", nil, nil, err
	}

	cfg, err := config.GetRepoConfig(repoRoot)
	if err != nil {
		return nil, "", nil, nil, err
	}

	splog, err := output.NewSplogWithLogFile(filepath.Join(repoRoot, ".git", "patchset.log"))
	if err != nil {
		return nil, "", nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return git.NewClient(repoRoot), repoRoot, cfg, splog, nil
}
