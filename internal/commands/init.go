package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/gitops"
	"github.com/bankist-dev/bankist/internal/registry"
)

func newInitCommand() *cobra.Command {
	var name string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Bankist workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, noGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "Bankist Demo Bank", "bank display name")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git init and initial commit")

	return cmd
}

func runInit(dir, name string, noGit bool) error {
	// Create directory structure.
	for _, d := range []string{"accounts", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write bankist.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "bankist.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the seed accounts fixture.
	reg := registry.NewService(registry.DefaultAccounts())
	if err := reg.Save(filepath.Join(dir, cfg.Seed.AccountsFile)); err != nil {
		return fmt.Errorf("writing seed accounts: %w", err)
	}

	// Write .gitignore.
	gitignore := "logs/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if noGit || !cfg.Git.AutoCommit {
		fmt.Printf("Initialized Bankist workspace at %s\n", dir)
		return nil
	}

	// Initialize git and create initial commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized Bankist workspace at %s (%s)\n", dir, hash)
	return nil
}
