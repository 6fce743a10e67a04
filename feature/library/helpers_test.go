package library

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"prompt-library/core/imaging"
	"prompt-library/core/promptdb"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := promptdb.New(nil, nil, promptdb.WithEncoder(imaging.NewEncoder(0, 0, 0)))
	return NewService(store, Options{ExportDir: t.TempDir()}, zap.NewNop())
}

// writePNG writes a w x h image to a temporary file and returns its path.
func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "render.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}
