package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bankist.yaml configuration.
type Config struct {
	Bank BankConfig `yaml:"bank"`
	Seed SeedConfig `yaml:"seed"`
	Git  GitConfig  `yaml:"git"`
}

// BankConfig identifies the demo bank and how amounts are rendered.
type BankConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// SeedConfig locates the seed accounts fixture inside a workspace.
type SeedConfig struct {
	AccountsFile string `yaml:"accounts_file"`
}

// GitConfig controls git integration for the workspace scaffold.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a bankist.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{
			Name:     bankName,
			Currency: "€",
		},
		Seed: SeedConfig{
			AccountsFile: "accounts/accounts.csv",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Bankist",
			AuthorEmail: "demo@bankist.dev",
		},
	}
}
