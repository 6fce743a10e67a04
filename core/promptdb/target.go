package promptdb

import (
	"io"
	"time"

	"github.com/goccy/go-json"
)

// The methods in this file let the reconcile engine drive a Store without a
// write per record. Callers commit with Flush.

// FindByHash returns a copy of the record with the given content hash.
func (s *Store) FindByHash(hash string) (PromptRecord, bool) {
	rec := s.findByHash(hash)
	if rec == nil {
		return PromptRecord{}, false
	}
	return rec.Clone(), true
}

// Insert stores a copy of rec under a freshly allocated identifier and returns
// it. The identifier carried by rec is ignored.
func (s *Store) Insert(rec PromptRecord) int64 {
	c := rec.Clone()
	c.ID = s.allocateID()
	normalizeRecord(&c)
	s.insert(&c)
	return c.ID
}

// Replace overwrites the stored record with the same identifier.
func (s *Store) Replace(rec PromptRecord) error {
	existing, ok := s.byID[rec.ID]
	if !ok {
		return ErrNotFound
	}
	*existing = rec.Clone()
	normalizeRecord(existing)
	s.registerRecord(existing)
	return nil
}

// RegisterVocabulary unions names into the known categories, tags and models.
func (s *Store) RegisterVocabulary(categories, tags, models []string) {
	for _, c := range categories {
		if n := NormalizeCategory(c); n != nil {
			s.doc.Categories = appendUnique(s.doc.Categories, *n)
		}
	}
	s.doc.Tags = appendUnique(s.doc.Tags, NormalizeTags(tags)...)
	s.doc.Models = appendUnique(s.doc.Models, models...)
}

// MaxThumbnails returns the configured pool bound.
func (s *Store) MaxThumbnails() int {
	return slotLimit(s.doc.Settings.MaxThumbnails)
}

// Now returns the current time from the store clock.
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// ExportTo writes the document as indented JSON.
func (s *Store) ExportTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.doc)
}
