package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckStructure(t *testing.T) {
	root := t.TempDir()
	present := filepath.Join(root, "data")
	absent := filepath.Join(root, "data", "exports")
	require.NoError(t, os.Mkdir(present, 0o755))

	t.Run("Reports Missing", func(t *testing.T) {
		missing, err := CheckStructure([]string{present, absent})
		require.NoError(t, err)
		assert.Equal(t, []string{absent}, missing)
	})

	t.Run("File In The Way", func(t *testing.T) {
		file := filepath.Join(root, "plain")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		_, err := CheckStructure([]string{file})
		assert.ErrorContains(t, err, "not a directory")
	})

	t.Run("Fix", func(t *testing.T) {
		require.NoError(t, FixStructure(zap.NewNop(), []string{absent}))
		missing, err := CheckStructure([]string{present, absent})
		require.NoError(t, err)
		assert.Empty(t, missing)
	})
}
