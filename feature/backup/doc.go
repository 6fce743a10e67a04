// Package backup pushes library snapshots to object storage and merges them
// back.
//
// A snapshot is the exported library document stored under the configured
// prefix with the same timestamped name a local export gets. Restoring a
// snapshot never replaces the library: it is merged through the library
// service, so records that exist on both sides are combined.
//
// # Reliability
//
// Uploads and downloads are retried with retry-go. Concurrent restores of the
// same snapshot share one download through a singleflight group. After each
// push, snapshots beyond the configured Keep count are removed, oldest first.
package backup
