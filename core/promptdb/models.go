package promptdb

import (
	"time"

	"github.com/goccy/go-json"
)

// DocumentVersion is written into every new document.
const DocumentVersion = "1.0"

const (
	// DefaultMaxThumbnails is the thumbnail pool bound when settings leave it unset.
	DefaultMaxThumbnails = 3
	// DefaultCleanupDays is the retention window for unrated prompts.
	DefaultCleanupDays = 30
	// DefaultMaxResults caps Search when the query does not.
	DefaultMaxResults = 100
	// MaxRating is the highest rating; 0 means unrated.
	MaxRating = 5
)

// PromptRecord is one stored prompt with its metadata.
type PromptRecord struct {
	ID         int64          `json:"id"`
	Text       string         `json:"text"`
	Category   *string        `json:"category"`
	Tags       []string       `json:"tags"`
	Rating     int            `json:"rating"`
	Notes      string         `json:"notes"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
	UsedCount  int            `json:"used_count"`
	Hash       string         `json:"hash"`
	Thumbnails ThumbnailPool  `json:"thumbnails"`
	History    []HistoryEntry `json:"generation_history"`
}

// CategoryName returns the category or "" when the record is uncategorized.
func (r *PromptRecord) CategoryName() string {
	if r.Category == nil {
		return ""
	}
	return *r.Category
}

// Clone returns a deep copy of the record.
func (r *PromptRecord) Clone() PromptRecord {
	out := *r
	if r.Category != nil {
		c := *r.Category
		out.Category = &c
	}
	out.Tags = append([]string{}, r.Tags...)
	out.Thumbnails = append(ThumbnailPool{}, r.Thumbnails...)
	out.History = make([]HistoryEntry, len(r.History))
	for i, h := range r.History {
		if h.Snapshot != nil {
			h.Snapshot = append(json.RawMessage(nil), h.Snapshot...)
		}
		out.History[i] = h
	}
	return out
}

// Thumbnail is one encoded preview image owned by a record.
type Thumbnail struct {
	// Data is a self-describing data URI (data:image/jpeg;base64,...).
	Data      string `json:"data"`
	Locked    bool   `json:"locked"`
	Timestamp string `json:"timestamp"`
	// SourceImage is the base name of the image the thumbnail was made from.
	SourceImage string `json:"source_image"`
}

// HistoryEntry records one generation run that used the prompt.
type HistoryEntry struct {
	Timestamp   string          `json:"timestamp"`
	FullPrompt  string          `json:"full_prompt"`
	OutputImage string          `json:"output_image"`
	Model       string          `json:"model,omitempty"`
	Snapshot    json.RawMessage `json:"workflow_snapshot"`
}

// Settings are the per-document store settings.
type Settings struct {
	AutoCleanupEnabled bool `json:"auto_cleanup_enabled"`
	AutoCleanupDays    int  `json:"auto_cleanup_days"`
	MaxThumbnails      int  `json:"max_thumbnails"`
}

// DefaultSettings returns the settings of a fresh library.
func DefaultSettings() Settings {
	return Settings{
		AutoCleanupEnabled: true,
		AutoCleanupDays:    DefaultCleanupDays,
		MaxThumbnails:      DefaultMaxThumbnails,
	}
}

// Document is the persisted form of a library.
type Document struct {
	Version     string          `json:"version"`
	Created     string          `json:"created"`
	LastUpdated string          `json:"last_updated"`
	Settings    Settings        `json:"settings"`
	Categories  []string        `json:"categories"`
	Tags        []string        `json:"tags"`
	Models      []string        `json:"models,omitempty"`
	NextID      int64           `json:"next_id,omitempty"`
	Prompts     []*PromptRecord `json:"prompts"`
}

// NewDocument returns an empty document stamped with now.
// Decoders unmarshal into it so that missing fields keep their defaults.
func NewDocument(now time.Time) *Document {
	ts := FormatTime(now)
	return &Document{
		Version:     DocumentVersion,
		Created:     ts,
		LastUpdated: ts,
		Settings:    DefaultSettings(),
		Categories:  []string{},
		Tags:        []string{},
		NextID:      1,
		Prompts:     []*PromptRecord{},
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := *d
	out.Categories = append([]string{}, d.Categories...)
	out.Tags = append([]string{}, d.Tags...)
	if d.Models != nil {
		out.Models = append([]string{}, d.Models...)
	}
	out.Prompts = make([]*PromptRecord, 0, len(d.Prompts))
	for _, p := range d.Prompts {
		if p == nil {
			continue
		}
		c := p.Clone()
		out.Prompts = append(out.Prompts, &c)
	}
	return &out
}

// NewPrompt is the input of AddPrompt.
type NewPrompt struct {
	Text     string
	Category string
	Tags     []string
	Rating   int
	Notes    string
	// SourceImage is an optional image path turned into the first thumbnail.
	SourceImage string
}

// PromptUpdate carries the fields UpdatePrompt overwrites. Nil fields are left
// untouched; a non-nil pointer to an empty value clears the field.
type PromptUpdate struct {
	Text     *string
	Category *string
	Tags     *[]string
	Rating   *int
	Notes    *string
}

// HistoryInput is the input of AddGenerationHistoryEntry.
type HistoryInput struct {
	FullPrompt  string
	OutputImage string
	Model       string
	Snapshot    json.RawMessage
}

// SearchQuery filters Search. Zero values disable a filter.
type SearchQuery struct {
	Text       string
	Category   string
	Tags       []string
	MinRating  int
	MaxResults int
}

// SettingsUpdate carries the settings UpdateSettings overwrites.
type SettingsUpdate struct {
	AutoCleanupEnabled *bool
	AutoCleanupDays    *int
	MaxThumbnails      *int
}

// Stats summarises a library.
type Stats struct {
	TotalPrompts          int `json:"total_prompts"`
	TotalCategories       int `json:"total_categories"`
	TotalTags             int `json:"total_tags"`
	TotalModels           int `json:"total_models"`
	RatedPrompts          int `json:"rated_prompts"`
	UnratedPrompts        int `json:"unrated_prompts"`
	PromptsWithThumbnails int `json:"prompts_with_thumbnails"`
	TotalGenerations      int `json:"total_generations"`
}
