package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"prompt-library/core/persistence"
	"prompt-library/core/promptdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLibrary writes a library holding one unrated prompt created in 2020 and
// a config.yaml pointing at it. It returns the config dir and the prompt id.
func seedLibrary(t *testing.T, cleanupOnStart bool) (string, int64) {
	t.Helper()
	dir := t.TempDir()
	libPath := filepath.Join(dir, "library.json")

	old := promptdb.ClockFunc(func() time.Time {
		return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	store, err := promptdb.Open(persistence.NewFileGateway(libPath), promptdb.WithClock(old))
	require.NoError(t, err)
	id, err := store.AddPrompt(promptdb.NewPrompt{Text: "a forgotten sketch"})
	require.NoError(t, err)

	yaml := fmt.Sprintf("log:\n  level: error\nlibrary:\n  path: %q\n  export_dir: %q\n  cleanup_on_start: %t\n",
		libPath, filepath.Join(dir, "exports"), cleanupOnStart)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	return dir, id
}

func useConfigDir(t *testing.T, dir string) {
	t.Helper()
	prev := configDir
	configDir = dir
	t.Cleanup(func() { configDir = prev })
}

func TestOpenApp_KeepsOldUnratedPrompts(t *testing.T) {
	dir, id := seedLibrary(t, true)
	useConfigDir(t, dir)

	a, err := openApp()
	require.NoError(t, err)
	defer a.close()

	_, err = a.library.Get(id)
	assert.NoError(t, err, "opening the library must not run cleanup")
}

func TestStartupCleanup(t *testing.T) {
	tests := []struct {
		name           string
		cleanupOnStart bool
		wantRemoved    int
	}{
		{name: "enabled removes old unrated", cleanupOnStart: true, wantRemoved: 1},
		{name: "disabled keeps everything", cleanupOnStart: false, wantRemoved: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, id := seedLibrary(t, tt.cleanupOnStart)
			useConfigDir(t, dir)

			a, err := openApp()
			require.NoError(t, err)
			defer a.close()

			assert.Equal(t, tt.wantRemoved, a.startupCleanup())

			_, err = a.library.Get(id)
			if tt.wantRemoved > 0 {
				assert.ErrorIs(t, err, promptdb.ErrNotFound)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
