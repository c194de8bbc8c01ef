package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/activity"
	"github.com/cleared-dev/ledger/internal/buildinfo"
	"github.com/cleared-dev/ledger/internal/clock"
	"github.com/cleared-dev/ledger/internal/config"
	"github.com/cleared-dev/ledger/internal/gitops"
	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/model"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(clock.System{})
}

type globalOptions struct {
	configPath string
	file       string
	verbose    bool
	clock      clock.Clock
}

func newRootCommand(c clock.Clock) *cobra.Command {
	opts := &globalOptions{clock: c}

	rootCmd := &cobra.Command{
		Use:     "ledger",
		Short:   "Personal bookkeeping ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("loading .env: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "ledger file (overrides config and "+config.EnvLedgerFile+")")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newAddCommand(opts, true))
	rootCmd.AddCommand(newAddCommand(opts, false))
	rootCmd.AddCommand(newLedgerCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newImportCommand(opts))
	rootCmd.AddCommand(newActivityCommand(opts))

	return rootCmd
}

// session is what a subcommand works with once config and store are loaded.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *ledger.Store
	clock  clock.Clock
}

func (o *globalOptions) open(cmd *cobra.Command) (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	store, err := ledger.Open(cfg.Ledger.File, ledger.WithClock(o.clock), ledger.WithLogger(logger))
	if err != nil {
		// The store is still readable (and empty); writes will report their own failure.
		logger.Error("ledger unavailable", "path", cfg.Ledger.File, "err", err)
	}

	return &session{cfg: cfg, logger: logger, store: store, clock: o.clock}, nil
}

// loadConfig layers defaults, the config file, the environment and --file.
// A missing config file is not an error.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()
	case err != nil:
		return nil, err
	default:
		dir := filepath.Dir(o.configPath)
		if !filepath.IsAbs(cfg.Ledger.File) {
			cfg.Ledger.File = filepath.Join(dir, cfg.Ledger.File)
		}
		if cfg.Ledger.Activity != "" && !filepath.IsAbs(cfg.Ledger.Activity) {
			cfg.Ledger.Activity = filepath.Join(dir, cfg.Ledger.Activity)
		}
	}

	cfg.ApplyEnv(os.Getenv)
	if o.file != "" {
		cfg.Ledger.File = o.file
	}
	return cfg, nil
}

// commit records the ledger file in git when auto_commit is on and returns
// the short hash, or "" when nothing was committed.
// Failures are logged, never returned: the ledger write already succeeded.
func (s *session) commit(message string) string {
	if !s.cfg.Git.AutoCommit {
		return ""
	}

	path, err := filepath.Abs(s.store.Path())
	if err != nil {
		s.logger.Warn("resolving ledger path", "err", err)
		return ""
	}
	root, ok := gitops.FindRepo(filepath.Dir(path))
	if !ok {
		s.logger.Warn("auto_commit is on but the ledger is not in a git repository", "path", path)
		return ""
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		s.logger.Warn("resolving ledger path", "err", err)
		return ""
	}

	hash, err := gitops.CommitPaths(root, message, s.cfg.Git.AuthorName, s.cfg.Git.AuthorEmail, rel)
	if err != nil {
		s.logger.Warn("git commit failed", "err", err)
		return ""
	}
	s.logger.Debug("committed ledger", "commit", hash)
	return hash
}

// record appends an entry to the activity log when one is configured.
// Like commit, failures are only logged.
func (s *session) record(action, details string, txns []model.Transaction, commit string) {
	if s.cfg.Ledger.Activity == "" {
		return
	}

	net := decimal.Zero
	for _, t := range txns {
		net = net.Add(t.Amount)
	}
	entry := activity.Entry{
		Timestamp:  s.clock.Now(),
		Action:     action,
		Details:    details,
		Amount:     net,
		Count:      len(txns),
		CommitHash: commit,
	}
	if err := activity.Append(s.cfg.Ledger.Activity, []activity.Entry{entry}); err != nil {
		s.logger.Warn("activity log write failed", "path", s.cfg.Ledger.Activity, "err", err)
	}
}
