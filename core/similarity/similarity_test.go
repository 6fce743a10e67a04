package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "a red fox", b: "a red fox", want: 1},
		{name: "both empty", a: "", b: "", want: 1},
		{name: "one empty", a: "abc", b: "", want: 0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
		{name: "half", a: "abcd", b: "abxy", want: 0.5},
		{name: "multibyte runes", a: "große", b: "große", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestClassifier_IsRewrite(t *testing.T) {
	c := NewClassifier(0)
	assert.Equal(t, DefaultRewriteThreshold, c.Threshold)

	tests := []struct {
		name     string
		previous string
		current  string
		want     bool
	}{
		{name: "no previous text", previous: "", current: "anything", want: true},
		{name: "small edit", previous: "a castle at dusk, oil painting", current: "a castle at dawn, oil painting", want: false},
		{name: "complete rewrite", previous: "aaaaaaaaaa", current: "zzzzzzzzzz", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsRewrite(tt.previous, tt.current))
		})
	}
}
