package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Endi1/stack/internal/config"
)

func tempRepoRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0750))
	return dir
}

func TestRepoConfig(t *testing.T) {
	t.Run("defaults when no config file exists", func(t *testing.T) {
		repoRoot := tempRepoRoot(t)

		trunk, err := config.GetTrunk(repoRoot)
		require.NoError(t, err)
		require.Equal(t, "main", trunk)

		remote, err := config.GetRemote(repoRoot)
		require.NoError(t, err)
		require.Equal(t, "origin", remote)
	})

	t.Run("set and get trunk", func(t *testing.T) {
		repoRoot := tempRepoRoot(t)

		require.NoError(t, config.SetTrunk(repoRoot, "develop"))

		trunk, err := config.GetTrunk(repoRoot)
		require.NoError(t, err)
		require.Equal(t, "develop", trunk)

		// remote stays at its default
		remote, err := config.GetRemote(repoRoot)
		require.NoError(t, err)
		require.Equal(t, "origin", remote)
	})

	t.Run("set and get remote preserves trunk", func(t *testing.T) {
		repoRoot := tempRepoRoot(t)

		require.NoError(t, config.SetTrunk(repoRoot, "develop"))
		require.NoError(t, config.SetRemote(repoRoot, "upstream"))

		trunk, err := config.GetTrunk(repoRoot)
		require.NoError(t, err)
		require.Equal(t, "develop", trunk)

		remote, err := config.GetRemote(repoRoot)
		require.NoError(t, err)
		require.Equal(t, "upstream", remote)
	})

	t.Run("corrupt config file is an error", func(t *testing.T) {
		repoRoot := tempRepoRoot(t)
		configPath := filepath.Join(repoRoot, ".git", config.ConfigFileName)
		require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0600))

		_, err := config.GetTrunk(repoRoot)
		require.Error(t, err)
	})
}
