package library

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	tr := NewTracker()

	_, ok := tr.Last("node-1")
	assert.False(t, ok)

	tr.Remember("node-1", 4, "a castle")
	tr.Remember("", 9, "ignored")

	s, ok := tr.Last("node-1")
	assert.True(t, ok)
	assert.Equal(t, Session{ID: 4, Text: "a castle"}, s)
	assert.Equal(t, 1, tr.Len())

	assert.True(t, tr.Forget("node-1"))
	assert.False(t, tr.Forget("node-1"))
	assert.Zero(t, tr.Len())
}

func TestTracker_Concurrent(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tr.Remember("shared", int64(i), "text")
			tr.Last("shared")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, tr.Len())
}
