package promptdb

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Search returns copies of the records matching q.
//
// The whole match set is ordered by rating, then used count (both descending),
// then identifier, and only then truncated to q.MaxResults.
func (s *Store) Search(q SearchQuery) []PromptRecord {
	needle := fold.String(strings.TrimSpace(q.Text))
	wantTags := NormalizeTags(q.Tags)
	limit := q.MaxResults
	if limit <= 0 {
		limit = DefaultMaxResults
	}

	var matches []*PromptRecord
	for _, p := range s.doc.Prompts {
		if needle != "" &&
			!strings.Contains(fold.String(p.Text), needle) &&
			!strings.Contains(fold.String(p.Notes), needle) {
			continue
		}
		if q.Category != "" && p.CategoryName() != q.Category {
			continue
		}
		if !hasAnyTag(p.Tags, wantTags) {
			continue
		}
		if p.Rating < q.MinRating {
			continue
		}
		matches = append(matches, p)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.UsedCount != b.UsedCount {
			return a.UsedCount > b.UsedCount
		}
		return a.ID < b.ID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]PromptRecord, len(matches))
	for i, p := range matches {
		out[i] = p.Clone()
	}
	return out
}

// hasAnyTag reports whether have shares a tag with want. An empty want matches.
func hasAnyTag(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// LatestByCategory returns the record of category with the greatest updatedAt.
// Ties keep the earliest stored record.
func (s *Store) LatestByCategory(category string) (PromptRecord, bool) {
	var latest *PromptRecord
	for _, p := range s.doc.Prompts {
		if p.CategoryName() != category || category == "" {
			continue
		}
		if latest == nil || p.UpdatedAt > latest.UpdatedAt {
			latest = p
		}
	}
	if latest == nil {
		return PromptRecord{}, false
	}
	return latest.Clone(), true
}
