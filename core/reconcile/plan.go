package reconcile

import (
	"context"
	"fmt"

	"prompt-library/core/promptdb"
)

// Plan decides how each record of incoming is merged into target.
// It does NOT mutate target; use Apply for that.
func Plan(target Target, incoming *promptdb.Document) *MergePlan {
	plan := &MergePlan{Actions: []Action{}}
	if incoming == nil {
		return plan
	}

	planned := make(map[string]int64)
	for i, rec := range incoming.Prompts {
		plan.Summary.Total++
		action := Action{Index: i}
		if rec == nil {
			action.Type = ActionSkip
			action.Reason = "empty entry"
			plan.add(action)
			continue
		}
		action.IncomingID = rec.ID
		action.Hash = matchHash(rec)

		switch existing, found := target.FindByHash(action.Hash); {
		case action.Hash == "":
			action.Type = ActionSkip
			action.Reason = "record has neither text nor hash"
		case found:
			action.Type = ActionMerge
			action.TargetID = existing.ID
			action.Reason = fmt.Sprintf("same content as record %d", existing.ID)
		default:
			if first, dup := planned[action.Hash]; dup {
				action.Type = ActionMerge
				action.Reason = fmt.Sprintf("duplicate of incoming record %d", first)
			} else {
				action.Type = ActionAdd
				action.Reason = "new content"
				planned[action.Hash] = rec.ID
			}
		}
		plan.add(action)
	}

	return plan
}

func (p *MergePlan) add(a Action) {
	p.Actions = append(p.Actions, a)
	switch a.Type {
	case ActionAdd:
		p.Summary.Added++
	case ActionMerge:
		p.Summary.Merged++
	case ActionSkip:
		p.Summary.Skipped++
	}
}

// matchHash recomputes the hash from text. The stored hash is used only when
// the record carries no text.
func matchHash(rec *promptdb.PromptRecord) string {
	if rec.Text != "" {
		return promptdb.ContentHash(rec.Text)
	}
	return rec.Hash
}

// Apply executes plan against target and returns what was applied.
// With opts.DryRun the plan summary is returned and nothing changes.
func Apply(
	ctx context.Context,
	target Target,
	incoming *promptdb.Document,
	plan *MergePlan,
	opts Options,
) (PlanSummary, error) {
	if opts.DryRun || incoming == nil || plan == nil {
		if plan == nil {
			return PlanSummary{}, nil
		}
		return plan.Summary, nil
	}

	var (
		applied PlanSummary
		runErr  error
		now     = promptdb.FormatTime(target.Now())
		maxPool = target.MaxThumbnails()
	)

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			runErr = fmt.Errorf("merge interrupted after %d records: %w", applied.Total, err)
			break
		}
		applied.Total++

		if action.Type == ActionSkip || action.Index < 0 || action.Index >= len(incoming.Prompts) {
			applied.Skipped++
			continue
		}
		rec := incoming.Prompts[action.Index]
		if rec == nil {
			applied.Skipped++
			continue
		}

		existing, found := target.FindByHash(action.Hash)
		if !found {
			// Covers ActionAdd and a merge whose counterpart vanished since planning.
			add := rec.Clone()
			add.Hash = action.Hash
			target.Insert(add)
			applied.Added++
			continue
		}

		merged := MergeRecords(existing, *rec, maxPool, now)
		if err := target.Replace(merged); err != nil {
			runErr = fmt.Errorf("merge into record %d: %w", existing.ID, err)
			break
		}
		registerRecordVocabulary(target, rec)
		applied.Merged++
	}

	// Document-level names only count once every record went in. The
	// vocabulary of processed records is registered as they are applied.
	if runErr == nil {
		target.RegisterVocabulary(incoming.Categories, incoming.Tags, incoming.Models)
	}

	if applied.Added+applied.Merged > 0 || runErr == nil {
		if err := target.Flush(); err != nil {
			if runErr != nil {
				return applied, fmt.Errorf("%w (flush also failed: %v)", runErr, err)
			}
			return applied, err
		}
	}

	return applied, runErr
}

// registerRecordVocabulary unions the category, tags and models of an incoming
// record into target. Merged records keep the target's own fields, so their
// incoming names would otherwise be lost.
func registerRecordVocabulary(target Target, rec *promptdb.PromptRecord) {
	var categories, models []string
	if c := rec.CategoryName(); c != "" {
		categories = []string{c}
	}
	for _, h := range rec.History {
		if h.Model != "" {
			models = append(models, h.Model)
		}
	}
	target.RegisterVocabulary(categories, rec.Tags, models)
}

// MergeStores plans and applies a merge in one call.
func MergeStores(ctx context.Context, target Target, incoming *promptdb.Document, opts Options) (*MergePlan, PlanSummary, error) {
	plan := Plan(target, incoming)
	applied, err := Apply(ctx, target, incoming, plan, opts)
	return plan, applied, err
}
