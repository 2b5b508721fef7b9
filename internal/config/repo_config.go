// Package config provides repository configuration management,
// including reading and writing patchset configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// configFileName is the repository config file, stored inside .git so it is
// per-clone and never committed.
const configFileName = ".patchset_config"

// RepoConfig represents the repository configuration: per-repo defaults for
// publishing. Flags given on the command line take precedence.
type RepoConfig struct {
	To              []string `json:"to,omitempty"`
	Cc              []string `json:"cc,omitempty"`
	SubjectPrefix   *string  `json:"subjectPrefix,omitempty"`
	OutputDirectory *string  `json:"outputDirectory,omitempty"`
	Numbered        *bool    `json:"numbered,omitempty"`
	CoverLetter     *bool    `json:"coverLetter,omitempty"`
	Base            *string  `json:"base,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}

// GetRepoConfig reads the repository configuration.
// A missing config file yields the zero-value configuration.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// WriteRepoConfig persists the repository configuration.
func WriteRepoConfig(repoRoot string, config *RepoConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode repo config: %w", err)
	}
	if err := os.WriteFile(configPath(repoRoot), data, 0o644); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}
	return nil
}

// GetBase returns the configured base revision for series ranges,
// defaulting to "master" when unset.
func GetBase(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}
	if config.Base != nil && *config.Base != "" {
		return *config.Base, nil
	}
	return "master", nil
}
