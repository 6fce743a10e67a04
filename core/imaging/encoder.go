package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultSize is the bounding box edge of a thumbnail.
	DefaultSize = 150
	// DefaultQuality is the JPEG quality of a thumbnail.
	DefaultQuality = 70

	dataURIPrefix = "data:image/jpeg;base64,"
)

// Encoder produces thumbnail data URIs.
type Encoder struct {
	Width   int
	Height  int
	Quality int
}

// NewEncoder returns an encoder with the given box and quality. Non-positive
// values fall back to the defaults.
func NewEncoder(width, height, quality int) *Encoder {
	if width <= 0 {
		width = DefaultSize
	}
	if height <= 0 {
		height = DefaultSize
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Encoder{Width: width, Height: height, Quality: quality}
}

// Encode reads the image at path and returns its thumbnail as a data URI.
func (e *Encoder) Encode(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image %s: %w", path, err)
	}

	thumb := e.scale(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: e.Quality}); err != nil {
		return "", fmt.Errorf("encode %s thumbnail: %w", format, err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// scale fits src inside the encoder box over a white background. Images
// already inside the box are not enlarged.
func (e *Encoder) scale(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := fit(b.Dx(), b.Dy(), e.Width, e.Height)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// fit returns the largest size within maxW x maxH with the aspect ratio of
// w x h, never larger than w x h itself.
func fit(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	if w*maxH > h*maxW {
		nh := h * maxW / w
		return maxW, max(nh, 1)
	}
	nw := w * maxH / h
	return max(nw, 1), maxH
}
