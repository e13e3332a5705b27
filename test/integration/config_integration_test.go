//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurely/sales-service/internal/platform/config"
)

// chdirWithConfigs creates a working directory holding the given config
// files and switches into it for the duration of the test.
func chdirWithConfigs(t *testing.T, files map[string]string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))

	for name, content := range files {
		path := filepath.Join(dir, "configs", name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.Chdir(dir))
}

// TestConfig_LoadsDefaults_Integration verifies that loading with no config
// files on disk produces a valid configuration from defaults alone.
func TestConfig_LoadsDefaults_Integration(t *testing.T) {
	chdirWithConfigs(t, nil)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "sales-service", cfg.App.Name)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
}

// TestConfig_ProfileOverridesBase_Integration verifies file precedence:
// the profile file wins over base, base wins over defaults.
func TestConfig_ProfileOverridesBase_Integration(t *testing.T) {
	chdirWithConfigs(t, map[string]string{
		"base.yaml": `
log:
  level: warn
storage:
  driver: sqlite
  dsn: ./base.db
`,
		"prod.yaml": `
app:
  environment: prod
storage:
  driver: postgres
  dsn: host=db user=sales dbname=sales
`,
	})

	cfg, err := config.Load("prod")
	require.NoError(t, err)

	// From the profile file
	assert.Equal(t, "prod", cfg.App.Environment)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "host=db user=sales dbname=sales", cfg.Storage.DSN)

	// From the base file
	assert.Equal(t, "warn", cfg.Log.Level)

	// From defaults
	assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
}

// TestConfig_EnvOverridesFiles_Integration verifies that environment
// variables take precedence over every file layer.
func TestConfig_EnvOverridesFiles_Integration(t *testing.T) {
	chdirWithConfigs(t, map[string]string{
		"base.yaml": `
server:
  port: 9000
storage:
  dsn: ./file.db
`,
	})

	t.Setenv("APP_SERVER_PORT", "9999")
	t.Setenv("APP_STORAGE_DSN", ":memory:")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)
}

// TestConfig_InvalidProfileFile_Integration verifies that a malformed
// profile file surfaces a load error rather than silently falling back.
func TestConfig_InvalidProfileFile_Integration(t *testing.T) {
	chdirWithConfigs(t, map[string]string{
		"broken.yaml": "storage: [not a mapping",
	})

	_, err := config.Load("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

// TestConfig_ValidationRejectsBadStorage_Integration verifies that an
// unsupported driver fails validation with a field-scoped message.
func TestConfig_ValidationRejectsBadStorage_Integration(t *testing.T) {
	chdirWithConfigs(t, map[string]string{
		"base.yaml": `
storage:
  driver: mysql
  dsn: whatever
`,
	})

	cfg, err := config.Load("")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.driver")
}
