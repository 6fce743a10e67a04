// Package imaging turns generated images into the small JPEG previews kept in a
// prompt's thumbnail pool, and writes stored previews back to disk.
//
// # Encoding
//
// Encoder decodes PNG, JPEG, GIF, BMP or WebP input, flattens any alpha channel
// onto white, scales the image to fit the configured box (150x150 by default)
// preserving aspect ratio, and returns a data URI holding a JPEG at the
// configured quality.
//
// # Decoding
//
// DecodeToFile reverses the data URI and writes the raw bytes to a path.
package imaging
