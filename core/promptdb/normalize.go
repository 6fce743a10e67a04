package promptdb

import (
	"strings"
)

// NormalizeCategory maps the absent spellings ("" and "none") to nil.
func NormalizeCategory(category string) *string {
	c := strings.TrimSpace(category)
	if c == "" || strings.EqualFold(c, "none") {
		return nil
	}
	return &c
}

// NormalizeTags lowercases and trims tags, dropping blanks and repeats while
// keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ClampRating bounds a rating to [0, MaxRating].
func ClampRating(rating int) int {
	if rating < 0 {
		return 0
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

// normalizePath stores paths with forward slashes regardless of platform.
func normalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// appendUnique appends values missing from list, preserving order.
func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		if v == "" {
			continue
		}
		found := false
		for _, existing := range list {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			list = append(list, v)
		}
	}
	return list
}
