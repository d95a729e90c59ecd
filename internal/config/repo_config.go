// Package config provides repository configuration management,
// including reading and writing the stack configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the configuration file kept under .git so it never
// ends up committed.
const ConfigFileName = ".stack_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Trunk  *string `json:"trunk,omitempty"`
	Remote *string `json:"remote,omitempty"`
}

// GetRepoConfig reads the repository configuration.
// A missing file returns the default configuration.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ".git", ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// writeRepoConfig persists the repository configuration
func writeRepoConfig(repoRoot string, config *RepoConfig) error {
	configPath := filepath.Join(repoRoot, ".git", ConfigFileName)

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize repo config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}

	return nil
}

// GetTrunk returns the configured trunk branch name, or "main" as default
func GetTrunk(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.Trunk != nil && *config.Trunk != "" {
		return *config.Trunk, nil
	}

	return "main", nil
}

// SetTrunk sets the trunk branch name
func SetTrunk(repoRoot string, trunk string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}

	config.Trunk = &trunk
	return writeRepoConfig(repoRoot, config)
}

// GetRemote returns the configured remote name, or "origin" as default
func GetRemote(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.Remote != nil && *config.Remote != "" {
		return *config.Remote, nil
	}

	return "origin", nil
}

// SetRemote sets the remote name
func SetRemote(repoRoot string, remote string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}

	config.Remote = &remote
	return writeRepoConfig(repoRoot, config)
}
