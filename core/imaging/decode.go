package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDataURI is returned for payloads without a base64 data URI header.
var ErrNotDataURI = errors.New("payload is not a base64 data URI")

// Decode returns the raw bytes of a data URI payload.
func Decode(blob string) ([]byte, error) {
	header, payload, ok := strings.Cut(blob, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, ErrNotDataURI
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode base64 payload: %w", err)
	}
	return raw, nil
}

// DecodeToFile writes the bytes of a data URI payload to dest, creating parent
// directories as needed.
func DecodeToFile(blob, dest string) error {
	raw, err := Decode(blob)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(dest, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}
