package reconcile

import (
	"prompt-library/core/promptdb"

	"github.com/goccy/go-json"
)

// MergeRecords combines two records describing the same content.
//
// The result keeps the identifier, text, tags and notes of existing, and its
// category when set.
// Ratings resolve to the higher one, used counts are summed, the earliest
// non-empty creation time wins, thumbnails are merged under maxThumbnails and
// history is the concatenation existing then incoming. updatedAt is set to now.
func MergeRecords(existing, incoming promptdb.PromptRecord, maxThumbnails int, now string) promptdb.PromptRecord {
	out := existing.Clone()

	out.Rating = promptdb.ClampRating(max(existing.Rating, incoming.Rating))
	out.UsedCount = max(existing.UsedCount, 0) + max(incoming.UsedCount, 0)
	out.CreatedAt = earliest(existing.CreatedAt, incoming.CreatedAt)
	out.Thumbnails = promptdb.MergePools(existing.Thumbnails, incoming.Thumbnails, maxThumbnails)

	history := make([]promptdb.HistoryEntry, 0, len(existing.History)+len(incoming.History))
	history = append(history, out.History...)
	for _, h := range incoming.History {
		if h.Snapshot != nil {
			h.Snapshot = append(json.RawMessage(nil), h.Snapshot...)
		}
		history = append(history, h)
	}
	out.History = history

	if out.Category == nil && incoming.Category != nil {
		out.Category = promptdb.NormalizeCategory(*incoming.Category)
	}
	out.UpdatedAt = now
	return out
}

// earliest returns the smaller timestamp, ignoring empty values.
func earliest(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	case b < a:
		return b
	default:
		return a
	}
}
