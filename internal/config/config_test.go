package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("Bankist Demo Bank")

	assert.Equal(t, "Bankist Demo Bank", cfg.Bank.Name)
	assert.Equal(t, "€", cfg.Bank.Currency)
	assert.Equal(t, "accounts/accounts.csv", cfg.Seed.AccountsFile)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Default("Test Bank")
	cfg.Bank.Currency = "$"
	cfg.Git.AutoCommit = false

	path := filepath.Join(t.TempDir(), "bankist.yaml")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bank: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
