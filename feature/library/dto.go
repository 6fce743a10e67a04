package library

import (
	"github.com/goccy/go-json"

	"prompt-library/core/promptdb"
)

// CreatePromptRequest is the body of POST /prompts.
type CreatePromptRequest struct {
	Text        string   `json:"text"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Rating      int      `json:"rating"`
	Notes       string   `json:"notes"`
	SourceImage string   `json:"source_image"`
}

func (r CreatePromptRequest) toNewPrompt() promptdb.NewPrompt {
	return promptdb.NewPrompt{
		Text:        r.Text,
		Category:    r.Category,
		Tags:        r.Tags,
		Rating:      r.Rating,
		Notes:       r.Notes,
		SourceImage: r.SourceImage,
	}
}

// SavePromptRequest is the body of POST /prompts/save.
type SavePromptRequest struct {
	Token string `json:"token"`
	CreatePromptRequest
}

// UpdatePromptRequest is the body of PATCH /prompts/:id. Absent fields are kept.
type UpdatePromptRequest struct {
	Text     *string   `json:"text"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
	Rating   *int      `json:"rating"`
	Notes    *string   `json:"notes"`
}

func (r UpdatePromptRequest) toUpdate() promptdb.PromptUpdate {
	return promptdb.PromptUpdate{
		Text:     r.Text,
		Category: r.Category,
		Tags:     r.Tags,
		Rating:   r.Rating,
		Notes:    r.Notes,
	}
}

// HistoryRequest is the body of POST /prompts/:id/history.
type HistoryRequest struct {
	FullPrompt  string          `json:"full_prompt"`
	OutputImage string          `json:"output_image"`
	Model       string          `json:"model"`
	Snapshot    json.RawMessage `json:"workflow_snapshot" swaggertype:"object"`
}

// ThumbnailRequest is the body of POST /prompts/:id/thumbnails.
type ThumbnailRequest struct {
	ImagePath string `json:"image_path"`
}

// CleanupRequest is the optional body of POST /cleanup.
type CleanupRequest struct {
	Days int `json:"days"`
}

// SettingsRequest is the body of PATCH /settings.
type SettingsRequest struct {
	AutoCleanupEnabled *bool `json:"auto_cleanup_enabled"`
	AutoCleanupDays    *int  `json:"auto_cleanup_days"`
	MaxThumbnails      *int  `json:"max_thumbnails"`
}

// VocabularyResponse lists the known categories, tags and models.
type VocabularyResponse struct {
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
	Models     []string `json:"models"`
}
