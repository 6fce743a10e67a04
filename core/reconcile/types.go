package reconcile

// ActionType is the decision taken for one incoming record.
type ActionType string

const (
	// ActionAdd inserts the incoming record under a new identifier.
	ActionAdd ActionType = "add"
	// ActionMerge combines the incoming record with the record sharing its hash.
	ActionMerge ActionType = "merge"
	// ActionSkip ignores the incoming record.
	ActionSkip ActionType = "skip"
)

// Action is the planned handling of one incoming record.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Index is the position of the record in the incoming document.
	Index int `json:"index"`

	// IncomingID is the identifier the record had in the incoming document.
	IncomingID int64 `json:"incoming_id"`

	// TargetID is the target record merged into. It is zero for adds and for
	// merges into a record added earlier in the same plan.
	TargetID int64 `json:"target_id,omitempty"`

	// Hash is the content hash the record is matched by.
	Hash string `json:"hash"`

	// Reason explains the decision.
	Reason string `json:"reason"`
}

// MergePlan contains the planned actions of a merge.
type MergePlan struct {
	// Actions holds one action per incoming record, in document order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate counts for a plan or an applied merge.
type PlanSummary struct {
	// Total is the number of incoming records.
	Total int `json:"total"`

	// Added counts records inserted as new.
	Added int `json:"added"`

	// Merged counts records combined with an existing one.
	Merged int `json:"merged"`

	// Skipped counts records ignored.
	Skipped int `json:"skipped"`
}

// Options controls Apply.
type Options struct {
	// DryRun prevents any mutation of the target.
	DryRun bool
}
