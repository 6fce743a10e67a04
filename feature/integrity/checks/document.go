package checks

import (
	"fmt"

	"prompt-library/core/promptdb"
)

// Issue kinds reported by CheckDocument.
const (
	KindDuplicateID     = "duplicate_id"
	KindDuplicateHash   = "duplicate_hash"
	KindHashMismatch    = "hash_mismatch"
	KindMissingID       = "missing_id"
	KindRatingRange     = "rating_out_of_range"
	KindPoolOverflow    = "thumbnail_overflow"
	KindNextID          = "next_id_behind"
	KindUnknownCategory = "unregistered_category"
)

// Issue is one problem found in a library document.
type Issue struct {
	Kind     string `json:"kind"`
	PromptID int64  `json:"prompt_id,omitempty"`
	Detail   string `json:"detail"`
}

// CheckDocument inspects a decoded document as it is stored on disk, before
// any normalisation applied when a library is opened.
func CheckDocument(doc *promptdb.Document) []Issue {
	issues := []Issue{}
	ids := make(map[int64]struct{}, len(doc.Prompts))
	hashes := make(map[string]int64, len(doc.Prompts))
	categories := make(map[string]struct{}, len(doc.Categories))
	for _, c := range doc.Categories {
		categories[c] = struct{}{}
	}

	maxSlots := doc.Settings.MaxThumbnails
	if maxSlots <= 0 {
		maxSlots = promptdb.DefaultMaxThumbnails
	}

	var maxID int64
	for i, p := range doc.Prompts {
		if p == nil {
			continue
		}
		if p.ID <= 0 {
			issues = append(issues, Issue{Kind: KindMissingID, Detail: fmt.Sprintf("entry %d has no id", i)})
		} else if _, dup := ids[p.ID]; dup {
			issues = append(issues, Issue{Kind: KindDuplicateID, PromptID: p.ID, Detail: fmt.Sprintf("entry %d reuses id %d", i, p.ID)})
		}
		ids[p.ID] = struct{}{}
		maxID = max(maxID, p.ID)

		hash := promptdb.ContentHash(p.Text)
		if p.Hash != "" && p.Hash != hash {
			issues = append(issues, Issue{Kind: KindHashMismatch, PromptID: p.ID, Detail: "stored hash does not match text"})
		}
		if first, dup := hashes[hash]; dup {
			issues = append(issues, Issue{Kind: KindDuplicateHash, PromptID: p.ID, Detail: fmt.Sprintf("same text as prompt %d", first)})
		} else {
			hashes[hash] = p.ID
		}

		if p.Rating < 0 || p.Rating > promptdb.MaxRating {
			issues = append(issues, Issue{Kind: KindRatingRange, PromptID: p.ID, Detail: fmt.Sprintf("rating %d", p.Rating)})
		}
		if n := len(p.Thumbnails); n > maxSlots && p.Thumbnails.Locked() < n {
			issues = append(issues, Issue{Kind: KindPoolOverflow, PromptID: p.ID, Detail: fmt.Sprintf("%d thumbnails, limit %d", n, maxSlots)})
		}
		if c := p.CategoryName(); c != "" {
			if _, ok := categories[c]; !ok {
				issues = append(issues, Issue{Kind: KindUnknownCategory, PromptID: p.ID, Detail: c})
			}
		}
	}

	if doc.NextID != 0 && doc.NextID <= maxID {
		issues = append(issues, Issue{Kind: KindNextID, Detail: fmt.Sprintf("next_id %d, highest id %d", doc.NextID, maxID)})
	}
	return issues
}
