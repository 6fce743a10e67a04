package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"prompt-library/core/persistence"
	"prompt-library/core/promptdb"
	"prompt-library/core/storage"
	"prompt-library/feature/library"

	"github.com/avast/retry-go/v4"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNoSnapshot is returned when a named snapshot is not in the bucket.
var ErrNoSnapshot = errors.New("snapshot not found")

// Options configures where snapshots live and how transfers are retried.
type Options struct {
	Bucket   string
	Prefix   string
	Region   string
	Keep     int
	Attempts uint
	Delay    time.Duration
}

// Snapshot describes one stored library snapshot.
type Snapshot struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service handles snapshot operations.
type Service struct {
	client  storage.Client
	library *library.Service
	opts    Options
	logger  *zap.Logger
	pulls   singleflight.Group
	now     func() time.Time
}

// NewService creates a new backup service.
func NewService(client storage.Client, lib *library.Service, opts Options, logger *zap.Logger) *Service {
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		library: lib,
		opts:    opts,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) retryOpts(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(s.opts.Attempts),
		retry.Delay(s.opts.Delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Warn("Storage request failed, retrying", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	}
}

// objectName returns the full key of a snapshot, accepting bare names.
func (s *Service) objectName(name string) string {
	if strings.HasPrefix(name, s.opts.Prefix) {
		return name
	}
	return s.opts.Prefix + name
}

// Push uploads the current library and prunes old snapshots.
func (s *Service) Push(ctx context.Context) (Snapshot, error) {
	var buf bytes.Buffer
	if err := s.library.ExportTo(&buf); err != nil {
		return Snapshot{}, fmt.Errorf("export library: %w", err)
	}
	data := buf.Bytes()

	if err := storage.EnsureBucket(ctx, s.client, s.opts.Bucket, s.opts.Region); err != nil {
		return Snapshot{}, err
	}

	now := s.now()
	name := s.objectName(persistence.ExportName(now))
	err := retry.Do(func() error {
		_, err := s.client.PutObject(ctx, s.opts.Bucket, name, bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: "application/json"})
		return err
	}, s.retryOpts(ctx)...)
	if err != nil {
		return Snapshot{}, fmt.Errorf("upload %s: %w", name, err)
	}
	s.logger.Info("Pushed library snapshot", zap.String("object", name), zap.Int("bytes", len(data)))

	if _, err := s.Prune(ctx); err != nil {
		s.logger.Warn("Snapshot pruning failed", zap.Error(err))
	}
	return Snapshot{Name: name, Size: int64(len(data)), LastModified: now}, nil
}

// List returns the stored snapshots, newest first.
func (s *Service) List(ctx context.Context) ([]Snapshot, error) {
	var out []Snapshot
	for obj := range s.client.ListObjects(ctx, s.opts.Bucket, minio.ListObjectsOptions{Prefix: s.opts.Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list snapshots: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		out = append(out, Snapshot{Name: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}
	// Names embed the export timestamp.
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

// Prune removes snapshots beyond the configured Keep count. Keep <= 0 keeps all.
func (s *Service) Prune(ctx context.Context) (int, error) {
	if s.opts.Keep <= 0 {
		return 0, nil
	}
	snaps, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, snap := range snaps[min(s.opts.Keep, len(snaps)):] {
		if err := s.client.RemoveObject(ctx, s.opts.Bucket, snap.Name, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("remove %s: %w", snap.Name, err)
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("Pruned old snapshots", zap.Int("removed", removed), zap.Int("keep", s.opts.Keep))
	}
	return removed, nil
}

// Fetch downloads and decodes a snapshot. Concurrent fetches of the same
// snapshot share one download; every caller gets its own copy.
func (s *Service) Fetch(ctx context.Context, name string) (*promptdb.Document, error) {
	key := s.objectName(name)
	v, err, shared := s.pulls.Do(key, func() (any, error) {
		raw, err := s.download(ctx, key)
		if err != nil {
			return nil, err
		}
		return persistence.Decode(raw)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Shared snapshot download", zap.String("object", key))
	}
	return v.(*promptdb.Document).Clone(), nil
}

func (s *Service) download(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := retry.Do(func() error {
		obj, err := s.client.GetObject(ctx, s.opts.Bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return classify(err)
		}
		defer obj.Close()
		raw, err = io.ReadAll(obj)
		return classify(err)
	}, append(s.retryOpts(ctx), retry.RetryIf(func(err error) bool {
		return !errors.Is(err, ErrNoSnapshot)
	}))...)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", key, err)
	}
	return raw, nil
}

// classify maps a missing object onto ErrNoSnapshot.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %w", ErrNoSnapshot, err)
	}
	return err
}

// Restore merges a snapshot into the library.
func (s *Service) Restore(ctx context.Context, name string, dryRun bool) (library.MergeOutcome, error) {
	doc, err := s.Fetch(ctx, name)
	if err != nil {
		return library.MergeOutcome{}, err
	}
	s.logger.Info("Restoring snapshot", zap.String("object", s.objectName(name)), zap.Int("prompts", len(doc.Prompts)))
	return s.library.Merge(ctx, doc, dryRun)
}
