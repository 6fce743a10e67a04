package integrity

import (
	"context"
	"errors"
	"path/filepath"

	"prompt-library/core/persistence"
	"prompt-library/core/storage"
	"prompt-library/feature/integrity/checks"

	"go.uber.org/zap"
)

// ErrStorageDisabled is returned by storage checks when no client is configured.
var ErrStorageDisabled = errors.New("storage is not configured")

// Options locates what the checks inspect.
type Options struct {
	LibraryPath string
	ExportDir   string
	Bucket      string
	Prefix      string
	Region      string
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	opts   Options
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil.
func NewService(client storage.Client, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		opts:   opts,
		logger: logger,
	}
}

// RequiredDirs lists the directories the library writes into.
func (s *Service) RequiredDirs() []string {
	return []string{filepath.Dir(s.opts.LibraryPath), s.opts.ExportDir}
}

// CheckStructure returns a list of missing directories.
func (s *Service) CheckStructure() ([]string, error) {
	return checks.CheckStructure(s.RequiredDirs())
}

// FixStructure creates the missing directories.
func (s *Service) FixStructure(missing []string) error {
	return checks.FixStructure(s.logger, missing)
}

// CheckDocument validates the library file at path, or the configured library
// when path is empty.
func (s *Service) CheckDocument(path string) ([]checks.Issue, error) {
	if path == "" {
		path = s.opts.LibraryPath
	}
	doc, err := persistence.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return checks.CheckDocument(doc), nil
}

// CheckStorage inspects the snapshot bucket.
func (s *Service) CheckStorage(ctx context.Context) (checks.StorageReport, error) {
	if s.client == nil {
		return checks.StorageReport{}, ErrStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.opts.Bucket, s.opts.Prefix)
}

// FixStorage creates the snapshot bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStorage(ctx, s.client, s.opts.Bucket, s.opts.Region)
}
