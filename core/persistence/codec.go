package persistence

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"prompt-library/core/promptdb"

	"github.com/goccy/go-json"
)

// ExportPrefix starts every export file name.
const ExportPrefix = "prompt_database_"

// ExportName returns the timestamped export file name for t.
func ExportName(t time.Time) string {
	return ExportPrefix + t.Format("20060102_150405") + ".json"
}

// Decode validates raw and decodes it into a document. Fields missing from raw
// keep the defaults of a fresh document, except next_id which stays zero when
// absent so that opening a store derives it from the highest id.
func Decode(raw []byte) (*promptdb.Document, error) {
	if err := Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", promptdb.ErrMalformed, err)
	}
	doc := promptdb.NewDocument(time.Now())
	doc.NextID = 0
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", promptdb.ErrMalformed, err)
	}
	return doc, nil
}

// Encode renders doc as indented JSON.
func Encode(doc *promptdb.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadDocument decodes a document from r, typically a merge source.
func ReadDocument(r io.Reader) (*promptdb.Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read document: %w", promptdb.ErrIO, err)
	}
	return Decode(raw)
}

// LoadFile decodes the document stored at path.
func LoadFile(path string) (*promptdb.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(raw)
}

// Export writes doc to path through the same atomic write as Save.
func Export(path string, doc *promptdb.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	return writeAtomic(path, data, os.Rename)
}

// ExportToDir writes doc into dir under ExportName(now) and returns the path.
func ExportToDir(dir string, doc *promptdb.Document, now time.Time) (string, error) {
	path := filepath.Join(dir, ExportName(now))
	if err := Export(path, doc); err != nil {
		return "", err
	}
	return path, nil
}
