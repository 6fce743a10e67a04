package checks

import (
	"context"
	"fmt"
	"strings"

	"prompt-library/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageReport describes the snapshot bucket.
type StorageReport struct {
	Bucket       string `json:"bucket"`
	BucketExists bool   `json:"bucket_exists"`
	Snapshots    int    `json:"snapshots"`
	Foreign      int    `json:"foreign_objects"`
}

// CheckStorage reports whether the bucket exists and counts the snapshots
// under prefix. Objects that are not JSON snapshots count as foreign.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string) (StorageReport, error) {
	report := StorageReport{Bucket: bucket}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return report, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		return report, nil
	}

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return report, fmt.Errorf("failed to list %s: %w", bucket, obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			report.Snapshots++
		} else {
			report.Foreign++
		}
	}
	return report, nil
}

// FixStorage creates the bucket when it is missing.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string) error {
	return storage.EnsureBucket(ctx, client, bucket, region)
}
