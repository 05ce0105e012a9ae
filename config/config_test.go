package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points secrets at an empty directory and clears CI detection
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("CONFIG_FILE", "")
	return dir
}

func TestLoadConfig(t *testing.T) {
	isolate(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "chef")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "recipes")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, http://frontend:5173")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Env)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "chef", cfg.DBUser)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.Equal(t, "recipes", cfg.DBName)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, []string{"http://localhost:5173", "http://frontend:5173"}, cfg.CORSOrigins)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolate(t)
	for _, key := range []string{"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "SERVER_PORT", "CORS_ORIGINS", "MAX_LIST_LIMIT", "SUBMIT_REDIRECT_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "taste_namibia", cfg.DBName)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 100, cfg.MaxListLimit)
	assert.Equal(t, "/submit.html", cfg.SubmitRedirectPath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadConfigSecretsOverrideEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("DB_PASSWORD", "from-env")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("from-secret\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.DBPassword)
}

func TestLoadConfigFromFile(t *testing.T) {
	isolate(t)
	t.Setenv("DB_DRIVER", "")
	os.Unsetenv("DB_DRIVER")
	t.Setenv("DB_PATH", "")
	os.Unsetenv("DB_PATH")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_driver: sqlite\ndb_path: /tmp/recipes.db\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/recipes.db", cfg.DBPath)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Env:                Development,
			ServerPort:         "8080",
			DBDriver:           DriverSQLite,
			DBPath:             "recipes.db",
			MaxListLimit:       100,
			SubmitRedirectPath: "/submit.html",
		}
	}

	assert.NoError(t, ValidateConfig(valid()))

	cfg := valid()
	cfg.DBDriver = "oracle"
	assert.ErrorContains(t, ValidateConfig(cfg), "DB_DRIVER")

	cfg = valid()
	cfg.ServerPort = "http"
	assert.ErrorContains(t, ValidateConfig(cfg), "SERVER_PORT")

	cfg = valid()
	cfg.MaxListLimit = 0
	assert.ErrorContains(t, ValidateConfig(cfg), "MAX_LIST_LIMIT")

	cfg = valid()
	cfg.Env = Production
	cfg.DBDriver = DriverMySQL
	cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBName = "db", "3306", "root", "taste_namibia"
	err := ValidateConfig(cfg)
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "DB_PASSWORD", errs[0].Field)
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Production, ParseEnvironment("PROD"))
	assert.Equal(t, Test, ParseEnvironment("test"))
	assert.Equal(t, Development, ParseEnvironment(""))
	assert.True(t, CI.IsTest())
	assert.False(t, Development.IsProduction())
}
