// Package storage provides the object storage client behind library backups.
//
// It wraps the MinIO Go client so that snapshots can be pushed to AWS S3 or a
// self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket before the first push.
//   - PutObject: uploads a snapshot.
//   - GetObject: retrieves a snapshot as a stream.
//   - ListObjects: lists snapshots under the configured prefix.
//   - RemoveObject: prunes old snapshots.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
