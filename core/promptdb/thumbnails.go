package promptdb

import (
	"fmt"
	"sort"
)

// ThumbnailPool is the ordered, bounded list of thumbnails of one record.
type ThumbnailPool []Thumbnail

// AddOrReplace returns a new pool containing t.
//
// The first unlocked slot is overwritten in place. With every slot locked, t is
// appended while the pool is below maxSlots; at maxSlots the oldest locked
// thumbnail is evicted. t is always stored unlocked. The receiver is not modified.
func (p ThumbnailPool) AddOrReplace(t Thumbnail, maxSlots int) ThumbnailPool {
	maxSlots = slotLimit(maxSlots)
	t.Locked = false

	if len(p) == 0 {
		return ThumbnailPool{t}
	}

	out := append(ThumbnailPool{}, p...)
	for i := range out {
		if !out[i].Locked {
			out[i] = t
			return out
		}
	}

	if len(out) < maxSlots {
		return append(out, t)
	}

	sortNewestFirst(out)
	out = out[:maxSlots-1]
	return append(out, t)
}

// SetLocked sets the locked flag of the slot at index.
func (p ThumbnailPool) SetLocked(index int, locked bool) error {
	if index < 0 || index >= len(p) {
		return fmt.Errorf("%w: %d (pool has %d)", ErrInvalidIndex, index, len(p))
	}
	p[index].Locked = locked
	return nil
}

// Locked returns the number of locked slots.
func (p ThumbnailPool) Locked() int {
	n := 0
	for _, t := range p {
		if t.Locked {
			n++
		}
	}
	return n
}

// MergePools combines two pools into one of at most maxSlots entries.
//
// Locked thumbnails from both pools are kept first, de-duplicated by payload.
// If they exceed maxSlots only the newest survive, and the rest lose their lock.
// Remaining slots are filled with the newest unlocked thumbnails of either pool.
func MergePools(a, b ThumbnailPool, maxSlots int) ThumbnailPool {
	maxSlots = slotLimit(maxSlots)
	seen := make(map[string]struct{})
	kept := ThumbnailPool{}

	for _, pool := range []ThumbnailPool{a, b} {
		for _, t := range pool {
			if !t.Locked {
				continue
			}
			if _, dup := seen[t.Data]; dup {
				continue
			}
			seen[t.Data] = struct{}{}
			kept = append(kept, t)
		}
	}

	if len(kept) > maxSlots {
		sortNewestFirst(kept)
		return kept[:maxSlots]
	}

	var unlocked ThumbnailPool
	for _, pool := range []ThumbnailPool{a, b} {
		for _, t := range pool {
			if !t.Locked {
				unlocked = append(unlocked, t)
			}
		}
	}
	sortNewestFirst(unlocked)

	for _, t := range unlocked {
		if len(kept) >= maxSlots {
			break
		}
		if _, dup := seen[t.Data]; dup {
			continue
		}
		seen[t.Data] = struct{}{}
		kept = append(kept, t)
	}

	return kept
}

// sortNewestFirst orders by timestamp descending. ISO-8601 strings sort
// lexicographically.
func sortNewestFirst(p ThumbnailPool) {
	sort.SliceStable(p, func(i, j int) bool {
		return p[i].Timestamp > p[j].Timestamp
	})
}

func slotLimit(maxSlots int) int {
	if maxSlots <= 0 {
		return DefaultMaxThumbnails
	}
	return maxSlots
}
