// Package integrity provides health checks for a prompt library installation.
//
// # Checks Provided
//
//   - Structure: the directories holding the library file and exports exist.
//   - Document: the stored library file parses, validates and has no duplicate
//     ids, duplicate or stale hashes, out-of-range ratings, oversized thumbnail
//     pools, unregistered categories or a next_id behind the highest id.
//   - Storage: the snapshot bucket exists; counts snapshots under the prefix.
//
// Opening a library repairs ids and the id counter in memory, so the document
// check reads the file directly.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/document : Runs document check.
//   - GET /integrity/storage : Runs storage check (supports ?fix=true).
package integrity
