// Package similarity decides whether an edited prompt is a rewrite (a new
// prompt) or a revision of the previous one.
package similarity

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultRewriteThreshold is the ratio below which a change counts as a rewrite.
const DefaultRewriteThreshold = 0.2

// Ratio returns the character-level similarity of a and b in [0, 1], computed
// as 2*M/T where M is the number of matching characters and T the total.
// Two empty strings are identical.
func Ratio(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

// Classifier separates rewrites from edits.
type Classifier struct {
	Threshold float64
}

// NewClassifier returns a classifier; a threshold outside (0, 1] uses the default.
func NewClassifier(threshold float64) Classifier {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultRewriteThreshold
	}
	return Classifier{Threshold: threshold}
}

// IsRewrite reports whether current should be stored as a new prompt rather
// than as an update of previous. Without a previous text every prompt is new.
func (c Classifier) IsRewrite(previous, current string) bool {
	if previous == "" {
		return true
	}
	return Ratio(previous, current) < c.Threshold
}
