//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailyquote/internal/platform/config"
)

// writeConfigs creates configs/<name>.yaml files under a temp dir and
// changes into it.
func writeConfigs(t *testing.T, files map[string]string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o750))

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", name+".yaml"), []byte(content), 0o600))
	}

	t.Chdir(dir)
}

// TestConfig_DefaultsAreValid verifies the service starts with no files at all.
func TestConfig_DefaultsAreValid(t *testing.T) {
	writeConfigs(t, nil)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.DefaultFeedBaseURL, cfg.Feed.BaseURL)
	assert.Equal(t, config.DefaultQuotesRange, cfg.Feed.QuotesRange)
	assert.Equal(t, config.DefaultDatabasePath, cfg.Storage.Path)
	assert.True(t, cfg.Sync.Enabled)
	assert.Less(t, cfg.Server.StreamMaxDuration, cfg.Server.WriteTimeout)
}

// TestConfig_Precedence verifies env beats profile beats base beats defaults.
func TestConfig_Precedence(t *testing.T) {
	writeConfigs(t, map[string]string{
		"base": `
feed:
  source_id: base-sheet
  quotes_range: "Base!A2:F"
storage:
  path: /tmp/base.db
sync:
  interval: 2h
`,
		"staging": `
feed:
  source_id: staging-sheet
sync:
  interval: 30m
rotation:
  timezone: Europe/Madrid
`,
	})

	t.Setenv("APP_FEED__SOURCE_ID", "env-sheet")
	t.Setenv("APP_SYNC__FORCE_ON_START", "true")

	cfg, err := config.Load("staging")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "env-sheet", cfg.Feed.SourceID)
	assert.Equal(t, "Base!A2:F", cfg.Feed.QuotesRange)
	assert.Equal(t, "/tmp/base.db", cfg.Storage.Path)
	assert.Equal(t, 30*time.Minute, cfg.Sync.Interval)
	assert.True(t, cfg.Sync.ForceOnStart)
	assert.Equal(t, "Europe/Madrid", cfg.Rotation.Timezone)
}

// TestConfig_InvalidValues verifies Validate rejects what would break startup.
func TestConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown time zone",
			yaml: "rotation:\n  timezone: Mars/Olympus\n",
		},
		{
			name: "interval too short",
			yaml: "sync:\n  interval: 5s\n",
		},
		{
			name: "feed url is not a url",
			yaml: "feed:\n  base_url: not a url\n",
		},
		{
			name: "log level unknown",
			yaml: "log:\n  level: loud\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfigs(t, map[string]string{"base": tt.yaml})

			cfg, err := config.Load("")
			require.NoError(t, err)
			assert.Error(t, cfg.Validate())
		})
	}
}

// TestConfig_MalformedFile verifies parse errors surface from Load.
func TestConfig_MalformedFile(t *testing.T) {
	writeConfigs(t, map[string]string{"local": "feed: [unterminated"})

	_, err := config.Load("local")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local")
}
