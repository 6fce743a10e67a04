// Package reconcile merges one prompt library into another.
//
// Records are matched by content hash, never by identifier: two copies of a
// library maintained independently allocate identifiers on their own, so an
// incoming identifier carries no meaning in the target.
//
// # Plan and Apply
//
// Merging is split in two steps. Plan inspects both libraries and returns one
// Action per incoming record without mutating anything:
//
//   - add: no target record has the hash; the record is inserted under a
//     freshly allocated identifier.
//   - merge: a target record (or an earlier incoming record) has the hash; the
//     two are combined with MergeRecords.
//   - skip: the record has neither text nor hash.
//
// Apply executes a plan against the target and commits with a single flush.
// With DryRun set it only reports the plan summary.
//
// # Field Resolution
//
// MergeRecords keeps the higher rating, sums used counts, keeps the earliest
// non-empty creation time, merges thumbnail pools with promptdb.MergePools and
// concatenates generation history. Tags and notes of the target win, as does
// its category unless it has none.
//
// # Cancellation
//
// Apply checks the context between records. A cancelled run keeps the records
// already merged, flushes them and returns the context error.
//
// # Usage Example
//
//	plan := reconcile.Plan(store, incoming)
//	summary, err := reconcile.Apply(ctx, store, incoming, plan, reconcile.Options{})
package reconcile
