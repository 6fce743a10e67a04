package promptdb

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thumb(data, ts string, locked bool) Thumbnail {
	return Thumbnail{Data: data, Timestamp: ts, Locked: locked}
}

func payloads(p ThumbnailPool) []string {
	out := make([]string, len(p))
	for i, t := range p {
		out[i] = t.Data
	}
	return out
}

func TestThumbnailPool_AddOrReplace(t *testing.T) {
	tests := []struct {
		name string
		pool ThumbnailPool
		max  int
		want []string
	}{
		{
			name: "empty pool",
			pool: nil,
			max:  3,
			want: []string{"new"},
		},
		{
			name: "single unlocked slot is replaced",
			pool: ThumbnailPool{thumb("a", "2024-01-01T00:00:00.000000", false)},
			max:  3,
			want: []string{"new"},
		},
		{
			name: "first unlocked slot in pool order",
			pool: ThumbnailPool{
				thumb("a", "2024-01-01T00:00:00.000000", true),
				thumb("b", "2024-01-02T00:00:00.000000", false),
				thumb("c", "2024-01-03T00:00:00.000000", false),
			},
			max:  3,
			want: []string{"a", "new", "c"},
		},
		{
			name: "all locked below capacity appends",
			pool: ThumbnailPool{
				thumb("a", "2024-01-01T00:00:00.000000", true),
			},
			max:  3,
			want: []string{"a", "new"},
		},
		{
			name: "all locked at capacity keeps newest two",
			pool: ThumbnailPool{
				thumb("t1", "2024-01-01T00:00:00.000000", true),
				thumb("t2", "2024-01-02T00:00:00.000000", true),
				thumb("t3", "2024-01-03T00:00:00.000000", true),
			},
			max:  3,
			want: []string{"t3", "t2", "new"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := slices.Clone(tt.pool)
			got := tt.pool.AddOrReplace(thumb("new", "2024-02-01T00:00:00.000000", true), tt.max)

			assert.Equal(t, tt.want, payloads(got))
			assert.LessOrEqual(t, len(got), tt.max)
			for _, th := range got {
				if th.Data == "new" {
					assert.False(t, th.Locked, "new thumbnails start unlocked")
				}
			}
			assert.Equal(t, before, tt.pool, "receiver must not change")
		})
	}
}

func TestThumbnailPool_AddOrReplace_DefaultLimit(t *testing.T) {
	pool := ThumbnailPool{
		thumb("a", "2024-01-01T00:00:00.000000", true),
		thumb("b", "2024-01-02T00:00:00.000000", true),
		thumb("c", "2024-01-03T00:00:00.000000", true),
	}
	got := pool.AddOrReplace(thumb("d", "2024-01-04T00:00:00.000000", false), 0)
	assert.Len(t, got, DefaultMaxThumbnails)
}

func TestThumbnailPool_SetLocked(t *testing.T) {
	pool := ThumbnailPool{thumb("a", "", false), thumb("b", "", false)}

	require.NoError(t, pool.SetLocked(1, true))
	assert.True(t, pool[1].Locked)
	assert.Equal(t, 1, pool.Locked())

	for _, idx := range []int{-1, 2} {
		err := pool.SetLocked(idx, true)
		assert.True(t, errors.Is(err, ErrInvalidIndex), "index %d", idx)
	}
	assert.Equal(t, 1, pool.Locked())

	require.NoError(t, pool.SetLocked(1, false))
	assert.Zero(t, pool.Locked())
}

func TestMergePools(t *testing.T) {
	tests := []struct {
		name string
		a, b ThumbnailPool
		want []string
	}{
		{
			name: "locked first then newest unlocked",
			a:    ThumbnailPool{thumb("a1", "2024-01-01T00:00:00.000000", true), thumb("a2", "2024-01-05T00:00:00.000000", false)},
			b:    ThumbnailPool{thumb("b1", "2024-01-03T00:00:00.000000", false), thumb("b2", "2024-01-09T00:00:00.000000", false)},
			want: []string{"a1", "b2", "a2"},
		},
		{
			name: "duplicate payloads collapse",
			a:    ThumbnailPool{thumb("x", "2024-01-01T00:00:00.000000", true)},
			b:    ThumbnailPool{thumb("x", "2024-01-01T00:00:00.000000", true), thumb("x", "2024-01-02T00:00:00.000000", false)},
			want: []string{"x"},
		},
		{
			name: "too many locked keeps newest",
			a: ThumbnailPool{
				thumb("a1", "2024-01-01T00:00:00.000000", true),
				thumb("a2", "2024-01-02T00:00:00.000000", true),
			},
			b: ThumbnailPool{
				thumb("b1", "2024-01-03T00:00:00.000000", true),
				thumb("b2", "2024-01-04T00:00:00.000000", true),
			},
			want: []string{"b2", "b1", "a2"},
		},
		{
			name: "both empty",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergePools(tt.a, tt.b, 3)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, payloads(got))
		})
	}
}
