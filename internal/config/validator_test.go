package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "pass")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "db")
	t.Setenv("ITEM_CONFIG_PATH", "")
	require.NoError(t, os.Unsetenv("ITEM_CONFIG_PATH"))
}

func TestValidateEnv(t *testing.T) {
	t.Run("passes when all required variables are set", func(t *testing.T) {
		setRequiredEnv(t)
		assert.NoError(t, ValidateEnv())
	})

	t.Run("fails when schema version missing", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ENV_SCHEMA_VERSION", "")
		require.NoError(t, os.Unsetenv("ENV_SCHEMA_VERSION"))

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION")
	})

	t.Run("fails on schema version mismatch", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatch")
	})

	t.Run("reports all missing variables", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DB_USER", "")
		require.NoError(t, os.Unsetenv("DB_USER"))
		t.Setenv("DB_NAME", "")
		require.NoError(t, os.Unsetenv("DB_NAME"))

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_USER")
		assert.Contains(t, err.Error(), "DB_NAME")
	})
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Run("warns about example password", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DB_PASSWORD", "change_this_secure_password")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "DB_PASSWORD")
	})

	t.Run("warns about unreadable item config path", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ITEM_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.json"))

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "ITEM_CONFIG_PATH")
	})

	t.Run("no warning when item config path exists", func(t *testing.T) {
		setRequiredEnv(t)
		path := filepath.Join(t.TempDir(), "items.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
		t.Setenv("ITEM_CONFIG_PATH", path)

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("no warnings for proper values", func(t *testing.T) {
		setRequiredEnv(t)

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})
}
