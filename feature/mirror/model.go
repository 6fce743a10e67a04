package mirror

import (
	"strings"
	"time"

	"prompt-library/core/promptdb"
)

// TableName is the name of the mirror table.
const TableName = "prompt_mirror"

// PromptRow is one mirrored prompt.
type PromptRow struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	Hash        string    `gorm:"column:hash;size:64;index"`
	Text        string    `gorm:"column:text;type:text"`
	Category    string    `gorm:"column:category;size:255;index"`
	Tags        string    `gorm:"column:tags;type:text"` // comma separated
	Rating      int       `gorm:"column:rating"`
	Notes       string    `gorm:"column:notes;type:text"`
	UsedCount   int       `gorm:"column:used_count"`
	Thumbnails  int       `gorm:"column:thumbnails"`
	Generations int       `gorm:"column:generations"`
	CreatedAt   string    `gorm:"column:created_at;size:32"`
	UpdatedAt   string    `gorm:"column:updated_at;size:32"`
	SyncedAt    time.Time `gorm:"column:synced_at"`
}

// TableName implements gorm's tabler.
func (PromptRow) TableName() string {
	return TableName
}

// Columns lists the columns a healthy mirror table has.
var Columns = []string{
	"id", "hash", "text", "category", "tags", "rating", "notes",
	"used_count", "thumbnails", "generations", "created_at", "updated_at", "synced_at",
}

func rowFrom(rec *promptdb.PromptRecord, syncedAt time.Time) PromptRow {
	return PromptRow{
		ID:          rec.ID,
		Hash:        rec.Hash,
		Text:        rec.Text,
		Category:    rec.CategoryName(),
		Tags:        strings.Join(rec.Tags, ","),
		Rating:      rec.Rating,
		Notes:       rec.Notes,
		UsedCount:   rec.UsedCount,
		Thumbnails:  len(rec.Thumbnails),
		Generations: len(rec.History),
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		SyncedAt:    syncedAt,
	}
}
