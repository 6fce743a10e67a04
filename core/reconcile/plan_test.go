package reconcile

import (
	"context"
	"testing"
	"time"

	"prompt-library/core/promptdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGateway struct {
	saves int
}

func (g *countingGateway) Load() (*promptdb.Document, error) { return nil, nil }

func (g *countingGateway) Save(*promptdb.Document) error {
	g.saves++
	return nil
}

func fixedClock() promptdb.Clock {
	return promptdb.ClockFunc(func() time.Time {
		return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	})
}

func newTarget(t *testing.T, records ...*promptdb.PromptRecord) (*promptdb.Store, *countingGateway) {
	t.Helper()
	doc := promptdb.NewDocument(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	doc.Prompts = records
	gw := &countingGateway{}
	return promptdb.New(doc, gw, promptdb.WithClock(fixedClock())), gw
}

func incomingDoc(records ...*promptdb.PromptRecord) *promptdb.Document {
	doc := promptdb.NewDocument(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	doc.Prompts = records
	doc.Categories = []string{"landscapes"}
	doc.Tags = []string{"Misty"}
	return doc
}

func TestPlan(t *testing.T) {
	target, _ := newTarget(t, &promptdb.PromptRecord{ID: 1, Text: "shared"})
	incoming := incomingDoc(
		&promptdb.PromptRecord{ID: 1, Text: "brand new"},
		&promptdb.PromptRecord{ID: 2, Text: "shared", Hash: "stale"},
		&promptdb.PromptRecord{ID: 3, Text: "brand new"},
		&promptdb.PromptRecord{ID: 4},
		nil,
		&promptdb.PromptRecord{ID: 5, Hash: promptdb.ContentHash("shared")},
	)

	plan := Plan(target, incoming)
	require.Len(t, plan.Actions, 6)

	var types []ActionType
	for _, a := range plan.Actions {
		types = append(types, a.Type)
	}
	assert.Equal(t, []ActionType{ActionAdd, ActionMerge, ActionMerge, ActionSkip, ActionSkip, ActionMerge}, types)
	assert.Equal(t, int64(1), plan.Actions[1].TargetID)
	assert.Zero(t, plan.Actions[2].TargetID)
	assert.Equal(t, PlanSummary{Total: 6, Added: 1, Merged: 3, Skipped: 2}, plan.Summary)
	assert.Equal(t, 1, target.Len(), "planning does not mutate")
}

func TestApply_MergeFieldResolution(t *testing.T) {
	target, gw := newTarget(t, &promptdb.PromptRecord{
		ID: 1, Text: "P", Rating: 2, UsedCount: 5, CreatedAt: "2024-01-01T00:00:00.000000",
	})
	incoming := incomingDoc(&promptdb.PromptRecord{
		ID: 1, Text: "P", Rating: 4, UsedCount: 3, CreatedAt: "2024-02-01T00:00:00.000000",
	})

	_, applied, err := MergeStores(context.Background(), target, incoming, Options{})
	require.NoError(t, err)
	assert.Equal(t, PlanSummary{Total: 1, Merged: 1}, applied)
	assert.Equal(t, 1, gw.saves, "one flush per merge")

	rec, err := target.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Rating)
	assert.Equal(t, 8, rec.UsedCount)
	assert.Equal(t, "2024-01-01T00:00:00.000000", rec.CreatedAt)
	assert.Equal(t, "2024-06-01T00:00:00.000000", rec.UpdatedAt)
	assert.Equal(t, 1, target.Len())
	assert.Contains(t, target.Categories(), "landscapes")
	assert.Contains(t, target.Tags(), "misty")
}

func TestApply_IdentifierSafety(t *testing.T) {
	target, _ := newTarget(t,
		&promptdb.PromptRecord{ID: 1, Text: "one"},
		&promptdb.PromptRecord{ID: 2, Text: "two"},
	)
	incoming := incomingDoc(&promptdb.PromptRecord{ID: 1, Text: "foreign"})

	_, applied, err := MergeStores(context.Background(), target, incoming, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, applied.Added)

	one, err := target.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "one", one.Text, "existing record untouched")

	found, ok := target.FindByHash(promptdb.ContentHash("foreign"))
	require.True(t, ok)
	assert.Equal(t, int64(3), found.ID)
}

func TestApply_DuplicatesInsideIncoming(t *testing.T) {
	target, _ := newTarget(t)
	incoming := incomingDoc(
		&promptdb.PromptRecord{ID: 10, Text: "twice", Rating: 1, UsedCount: 1},
		&promptdb.PromptRecord{ID: 11, Text: "twice", Rating: 3, UsedCount: 2},
	)

	_, applied, err := MergeStores(context.Background(), target, incoming, Options{})
	require.NoError(t, err)
	assert.Equal(t, PlanSummary{Total: 2, Added: 1, Merged: 1}, applied)
	require.Equal(t, 1, target.Len())

	rec, ok := target.FindByHash(promptdb.ContentHash("twice"))
	require.True(t, ok)
	assert.Equal(t, 3, rec.Rating)
	assert.Equal(t, 3, rec.UsedCount)
}

func TestApply_DryRun(t *testing.T) {
	target, gw := newTarget(t, &promptdb.PromptRecord{ID: 1, Text: "kept"})
	incoming := incomingDoc(&promptdb.PromptRecord{Text: "new"}, &promptdb.PromptRecord{Text: "kept", Rating: 5})

	plan, applied, err := MergeStores(context.Background(), target, incoming, Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, plan.Summary, applied)
	assert.Equal(t, 1, target.Len())
	assert.Zero(t, gw.saves)

	rec, _ := target.Get(1)
	assert.Zero(t, rec.Rating)
}

func TestApply_Cancelled(t *testing.T) {
	target, gw := newTarget(t)
	incoming := incomingDoc(&promptdb.PromptRecord{Text: "a"}, &promptdb.PromptRecord{Text: "b"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, applied, err := MergeStores(ctx, target, incoming, Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, applied.Total)
	assert.Zero(t, target.Len())
	assert.Zero(t, gw.saves)
}

// cancelAfterReplace cancels the merge context once the first record has
// been merged.
type cancelAfterReplace struct {
	*promptdb.Store
	cancel context.CancelFunc
}

func (c *cancelAfterReplace) Replace(rec promptdb.PromptRecord) error {
	defer c.cancel()
	return c.Store.Replace(rec)
}

func TestApply_CancelledMidwayKeepsProcessedVocabulary(t *testing.T) {
	store, gw := newTarget(t, &promptdb.PromptRecord{ID: 1, Text: "shared"})
	category := "seascapes"
	incoming := incomingDoc(
		&promptdb.PromptRecord{
			Text:     "shared",
			Category: &category,
			Tags:     []string{"fog"},
			History:  []promptdb.HistoryEntry{{Model: "sdxl"}},
		},
		&promptdb.PromptRecord{Text: "later", Tags: []string{"dusk"}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	target := &cancelAfterReplace{Store: store, cancel: cancel}

	_, applied, err := MergeStores(ctx, target, incoming, Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, applied.Merged)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, gw.saves)

	assert.Contains(t, store.Tags(), "fog")
	assert.Contains(t, store.Categories(), "seascapes")
	assert.Contains(t, store.Models(), "sdxl")
	assert.NotContains(t, store.Tags(), "dusk")
	assert.NotContains(t, store.Categories(), "landscapes")
}

func TestApply_ThumbnailMerge(t *testing.T) {
	target, _ := newTarget(t, &promptdb.PromptRecord{
		ID: 1, Text: "pic",
		Thumbnails: promptdb.ThumbnailPool{{Data: "a", Locked: true, Timestamp: "2024-01-01T00:00:00.000000"}},
	})
	incoming := incomingDoc(&promptdb.PromptRecord{
		Text: "pic",
		Thumbnails: promptdb.ThumbnailPool{
			{Data: "b", Timestamp: "2024-01-02T00:00:00.000000"},
			{Data: "c", Timestamp: "2024-01-03T00:00:00.000000"},
			{Data: "d", Timestamp: "2024-01-04T00:00:00.000000"},
		},
	})

	_, _, err := MergeStores(context.Background(), target, incoming, Options{})
	require.NoError(t, err)

	rec, _ := target.Get(1)
	require.Len(t, rec.Thumbnails, 3)
	assert.Equal(t, "a", rec.Thumbnails[0].Data)
	assert.Equal(t, "d", rec.Thumbnails[1].Data)
	assert.Equal(t, "c", rec.Thumbnails[2].Data)
}
