package promptdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHash(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "empty", text: "", want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{name: "ascii", text: "abc", want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentHash(tt.text))
		})
	}
}

func TestContentHash_SensitiveToWhitespaceAndCase(t *testing.T) {
	base := ContentHash("a cat")
	assert.NotEqual(t, base, ContentHash("a cat "))
	assert.NotEqual(t, base, ContentHash("A cat"))
	assert.Equal(t, base, ContentHash("a cat"))
}

func TestShortHash(t *testing.T) {
	assert.Len(t, ShortHash("abc"), shortHashLen)
	assert.Equal(t, "ba7816bf8f01cfea", ShortHash("abc"))
}
