package reconcile

import (
	"time"

	"prompt-library/core/promptdb"
)

// Target is the library a merge writes into. *promptdb.Store implements it.
type Target interface {
	// FindByHash returns the record with the given content hash.
	FindByHash(hash string) (promptdb.PromptRecord, bool)

	// Insert stores rec under a freshly allocated identifier and returns it.
	// It must not persist.
	Insert(rec promptdb.PromptRecord) int64

	// Replace overwrites the record with rec.ID. It must not persist.
	Replace(rec promptdb.PromptRecord) error

	// RegisterVocabulary unions names into the target's known vocabulary.
	RegisterVocabulary(categories, tags, models []string)

	// MaxThumbnails returns the thumbnail pool bound of the target.
	MaxThumbnails() int

	// Now returns the current time.
	Now() time.Time

	// Flush persists the target.
	Flush() error
}

var _ Target = (*promptdb.Store)(nil)
