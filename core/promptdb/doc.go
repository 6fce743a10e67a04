// Package promptdb holds the prompt record store.
//
// A Store keeps every PromptRecord of one library document in memory and writes
// the whole document through a Gateway after each mutation. Records are
// deduplicated by ContentHash on insert; identifiers come from a monotonically
// increasing counter persisted with the document and are never reused.
//
// # Thumbnails
//
// Each record owns a ThumbnailPool: a bounded list of encoded images where
// locked slots survive automatic replacement. AddOrReplace always makes room
// for a new capture; when every slot is locked and the pool is full, the
// oldest locked slot is evicted.
//
// # Concurrency
//
// A Store is not safe for concurrent use. Hosts that serve concurrent
// requests must hold one lock across each call, including its flush
// (see feature/library.Service).
//
// # Usage
//
//	store, err := promptdb.Open(persistence.NewFileGateway(path),
//	    promptdb.WithEncoder(imaging.NewEncoder(imaging.DefaultOptions())),
//	    promptdb.WithLogger(log),
//	)
//	id, err := store.AddPrompt(promptdb.NewPrompt{Text: "a cat", Category: "animals"})
//	results := store.Search(promptdb.SearchQuery{Text: "cat", MinRating: 3})
package promptdb
