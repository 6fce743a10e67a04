package persistence

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"prompt-library/core/promptdb"
)

// FileGateway persists a document as one JSON file.
type FileGateway struct {
	// Path is the library file.
	Path string

	rename func(oldpath, newpath string) error
	now    func() time.Time
}

// NewFileGateway returns a gateway for the file at path.
func NewFileGateway(path string) *FileGateway {
	return &FileGateway{
		Path:   path,
		rename: os.Rename,
		now:    time.Now,
	}
}

// Load reads and validates the library file. A missing file returns an error
// wrapping fs.ErrNotExist.
func (g *FileGateway) Load() (*promptdb.Document, error) {
	return LoadFile(g.Path)
}

// Save writes doc atomically.
func (g *FileGateway) Save(doc *promptdb.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	return writeAtomic(g.Path, data, g.rename)
}

// KeepMalformed copies the current library file next to itself with a
// timestamped suffix and returns the copy's path.
func (g *FileGateway) KeepMalformed() (string, error) {
	src, err := os.Open(g.Path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", g.Path, err)
	}
	defer src.Close()

	dest := g.Path + ".malformed-" + g.now().Format("20060102_150405")
	dst, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dest)
		return "", fmt.Errorf("copy to %s: %w", dest, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", dest, err)
	}
	return dest, nil
}

// writeAtomic writes data to a temporary sibling of path and renames it over
// path. The temporary file is removed on every failure.
func writeAtomic(path string, data []byte, rename func(string, string) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

var (
	_ promptdb.Gateway         = (*FileGateway)(nil)
	_ promptdb.MalformedKeeper = (*FileGateway)(nil)
)
