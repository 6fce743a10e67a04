// Package persistence stores a prompt library as a single JSON document.
//
// # Atomic Writes
//
// Save never writes the target file in place. The document is encoded into a
// temporary file in the same directory, synced, closed and renamed over the
// target, so a reader sees either the previous or the new document. Any failure
// removes the temporary file and leaves the previous document untouched.
//
// # Validation
//
// Every document read through this package, whether the library itself or a
// merge source, is checked against an embedded JSON schema before decoding.
// Parse and schema failures wrap promptdb.ErrMalformed.
//
// # Usage
//
//	gw := persistence.NewFileGateway("data/prompt_library.json")
//	store, err := promptdb.Open(gw, promptdb.WithLogger(log))
package persistence
