package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Ledger.File = "books/2024.csv"
	cfg.Ledger.Activity = "books/activity.csv"
	cfg.Git.AutoCommit = true

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "transactions.csv", cfg.Ledger.File)
	assert.Empty(t, cfg.Ledger.Activity, "activity log is off unless configured")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Ledger", cfg.Git.AuthorName)
	assert.Equal(t, "ledger@localhost", cfg.Git.AuthorEmail)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("ledger:\n  file: other.csv\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.csv", cfg.Ledger.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Ledger", cfg.Git.AuthorName)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("ledger: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "file: transactions.csv")
	assert.Contains(t, contents, "level: info")
	assert.Contains(t, contents, "auto_commit: false")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvLedgerFile: "/tmp/other.csv", EnvLogLevel: "debug"}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "/tmp/other.csv", cfg.Ledger.File)
	assert.Equal(t, "debug", cfg.Log.Level)

	cfg = Default()
	cfg.ApplyEnv(func(string) string { return "" })
	assert.Equal(t, Default(), cfg, "empty variables change nothing")
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Log.Level = tt.in
		got, err := cfg.SlogLevel()
		require.NoError(t, err, "level %q", tt.in)
		assert.Equal(t, tt.want, got)
	}

	cfg := Default()
	cfg.Log.Level = "loud"
	_, err := cfg.SlogLevel()
	assert.Error(t, err)
}
