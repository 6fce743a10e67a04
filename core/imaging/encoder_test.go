package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "source.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func decodeThumb(t *testing.T, uri string) image.Image {
	t.Helper()
	raw, err := Decode(uri)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestEncoder_Encode(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{name: "landscape", w: 600, h: 300, wantW: 150, wantH: 75},
		{name: "portrait", w: 200, h: 800, wantW: 37, wantH: 150},
		{name: "small image is not enlarged", w: 40, h: 20, wantW: 40, wantH: 20},
	}

	enc := NewEncoder(0, 0, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := enc.Encode(writePNG(t, tt.w, tt.h, color.NRGBA{R: 200, A: 255}))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(uri, dataURIPrefix))

			b := decodeThumb(t, uri).Bounds()
			assert.Equal(t, tt.wantW, b.Dx())
			assert.Equal(t, tt.wantH, b.Dy())
		})
	}
}

func TestEncoder_FlattensAlphaOntoWhite(t *testing.T) {
	uri, err := NewEncoder(10, 10, 95).Encode(writePNG(t, 10, 10, color.NRGBA{}))
	require.NoError(t, err)

	r, g, b, _ := decodeThumb(t, uri).At(5, 5).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestEncoder_Errors(t *testing.T) {
	enc := NewEncoder(0, 0, 0)

	_, err := enc.Encode(filepath.Join(t.TempDir(), "missing.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = enc.Encode(garbage)
	assert.Error(t, err)
}

func TestDecodeToFile(t *testing.T) {
	uri, err := NewEncoder(0, 0, 0).Encode(writePNG(t, 20, 20, color.NRGBA{G: 255, A: 255}))
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "out", "thumb.jpg")
	require.NoError(t, DecodeToFile(uri, dest))

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()
	_, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)

	assert.True(t, errors.Is(DecodeToFile("plain text", dest), ErrNotDataURI))
	assert.Error(t, DecodeToFile("data:image/jpeg;base64,!!!", dest))
}

func TestSwappable(t *testing.T) {
	src := writePNG(t, 300, 300, color.NRGBA{B: 255, A: 255})
	s := NewSwappable(nil)
	assert.Equal(t, DefaultSize, s.Current().Width)

	s.Set(Config{Width: 30, Height: 30, Quality: 50}.NewEncoder())
	uri, err := s.Encode(src)
	require.NoError(t, err)
	assert.Equal(t, 30, decodeThumb(t, uri).Bounds().Dx())
}
