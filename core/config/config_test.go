package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "data/prompt_library.json", cfg.Library.Path)
	assert.InDelta(t, 0.2, cfg.Library.RewriteThreshold, 1e-9)
	assert.False(t, cfg.Library.CleanupOnStart)
	assert.Equal(t, 150, cfg.Thumbnail.Width)
	assert.Equal(t, 70, cfg.Thumbnail.Quality)
	assert.Equal(t, uint(3), cfg.Backup.Attempts)
	assert.Equal(t, "backups/", cfg.Storage.Prefix)
	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.Storage.Enabled())
}

func TestLoadConfig_Sources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("library:\n  path: from-file.json\nserver:\n  port: \"9000\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("SERVER_PORT", "9100")
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-file.json", cfg.Library.Path)
	assert.Equal(t, "9100", cfg.Server.Port, "environment wins over file")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("library: [unclosed"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	require.NoError(t, WriteDefault(path, false))
	assert.Error(t, WriteDefault(path, false), "refuses to overwrite")
	assert.NoError(t, WriteDefault(path, true))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("library:\n  rewrite_threshold: 0.3\n"), 0o644))

	changes := make(chan *Config, 4)
	require.NoError(t, Watch(dir, func(c *Config) { changes <- c }, nil))

	require.NoError(t, os.WriteFile(path, []byte("library:\n  rewrite_threshold: 0.6\n"), 0o644))

	select {
	case cfg := <-changes:
		assert.InDelta(t, 0.6, cfg.Library.RewriteThreshold, 1e-9)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatch_NoFile(t *testing.T) {
	assert.Error(t, Watch(t.TempDir(), func(*Config) {}, nil))
}

func TestNewViper_ReportsConfigFile(t *testing.T) {
	tests := []struct {
		name  string
		write bool
		want  bool
	}{
		{name: "config file present", write: true, want: true},
		{name: "config file missing", write: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.write {
				require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("log:\n  level: debug\n"), 0o644))
			}

			_, found, err := newViper(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, found)
		})
	}
}
