package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"restaurant/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnvironment(t *testing.T) {
	t.Setenv("DB_USER", "waiter")
	t.Setenv("DB_NAME", "restaurant")
	t.Setenv("CASH_SESSION_MAX_OPEN", "12h")

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "0 */15 * * * *", cfg.CashSessionWatchSchedule)
	assert.Equal(t, 12*time.Hour, cfg.CashSessionMaxOpen)
	assert.Equal(t, "host=localhost port=5432 user=waiter password= dbname=restaurant sslmode=disable", cfg.DSN())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadConfig_ReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_USER=file_user\nDB_NAME=file_db\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("DB_USER", "env_user")
	t.Cleanup(func() {
		_ = os.Unsetenv("DB_NAME")
		_ = os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "env_user", cfg.DBUser, "the environment wins over the file")
	assert.Equal(t, "file_db", cfg.DBName)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadConfig_RequiresDatabaseCredentials(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")
	require.NoError(t, os.Unsetenv("DB_USER"))
	require.NoError(t, os.Unsetenv("DB_NAME"))

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
}
