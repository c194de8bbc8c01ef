package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/config"
	"github.com/cleared-dev/ledger/internal/gitops"
	"github.com/cleared-dev/ledger/internal/ledger"
)

func newInitCommand(opts *globalOptions) *cobra.Command {
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a ledger with sample data and a config file",
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

			return runInit(cmd, opts, absDir, useGit)
		},
	}

	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and commit every change")

	return cmd
}

func runInit(cmd *cobra.Command, opts *globalOptions, dir string, useGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	cfg := config.Default()
	cfg.Git.AutoCommit = useGit
	cfg.Ledger.Activity = "activity.csv"
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ledgerPath := filepath.Join(dir, cfg.Ledger.File)
	store, err := ledger.Open(ledgerPath, ledger.WithClock(opts.clock))
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}

	if useGit {
		if !gitops.IsRepo(dir) {
			if err := gitops.Init(dir); err != nil {
				return err
			}
		}
		hash, err := gitops.CommitPaths(dir, "init: create ledger", cfg.Git.AuthorName, cfg.Git.AuthorEmail,
			config.FileName, cfg.Ledger.File)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledger at %s with %d transactions (%s)\n", store.Path(), store.Len(), hash)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledger at %s with %d transactions\n", store.Path(), store.Len())
	return nil
}
