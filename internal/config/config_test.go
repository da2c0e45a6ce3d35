package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazar_api/internal/database"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "/api", cfg.BasePath)
	assert.False(t, cfg.Development())
	assert.Empty(t, cfg.SelfPingURL)
	assert.Equal(t, database.DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.Encrypt)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
}

func TestLoad_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("BASE_PATH", "v1/")
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", "bazar.db")
	t.Setenv("DB_ENCRYPT", "false")
	t.Setenv("SELF_PING_URL", "https://bazar.example/api/status")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, "/v1", cfg.BasePath)
	assert.True(t, cfg.Development())
	assert.Equal(t, "https://bazar.example/api/status", cfg.SelfPingURL)
	assert.Equal(t, database.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "bazar.db", cfg.DB.Name)
	assert.False(t, cfg.DB.Encrypt)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bazar.env")
	content := "DB_USER=bazar\nDB_PASSWORD=secret\nDB_SERVER=db.internal:5432\nDB_NAME=vendas\nPORT=4000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// the environment overrides the file
	t.Setenv("PORT", "5000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "bazar", cfg.DB.User)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Equal(t, "db.internal:5432", cfg.DB.Host)
	assert.Equal(t, "vendas", cfg.DB.Name)
}

func TestLoad_DotEnvInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BASE_PATH=/bazar\n"), 0o600))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/bazar", cfg.BasePath)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
