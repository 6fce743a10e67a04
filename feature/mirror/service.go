package mirror

import (
	"context"
	"fmt"
	"time"

	"prompt-library/core/database"
	"prompt-library/feature/library"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 200

// SyncReport is the result of a sync.
type SyncReport struct {
	Upserted int   `json:"upserted"`
	Deleted  int64 `json:"deleted"`
}

// CheckReport describes the state of the mirror table.
type CheckReport struct {
	Table          string   `json:"table"`
	Exists         bool     `json:"exists"`
	MissingColumns []string `json:"missing_columns"`
	Rows           int64    `json:"rows"`
	Prompts        int      `json:"prompts"`
	InSync         bool     `json:"in_sync"`
}

// Service handles mirror operations.
type Service struct {
	db      *gorm.DB
	library *library.Service
	logger  *zap.Logger
}

// NewService creates a new mirror service.
func NewService(db *gorm.DB, lib *library.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, library: lib, logger: logger}
}

// Sync writes the current library into the mirror table.
func (s *Service) Sync(ctx context.Context) (SyncReport, error) {
	doc := s.library.Document()
	now := time.Now().UTC()

	rows := make([]PromptRow, 0, len(doc.Prompts))
	ids := make([]int64, 0, len(doc.Prompts))
	for _, rec := range doc.Prompts {
		rows = append(rows, rowFrom(rec, now))
		ids = append(ids, rec.ID)
	}

	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(&PromptRow{}); err != nil {
		return SyncReport{}, fmt.Errorf("migrate %s: %w", TableName, err)
	}

	var report SyncReport
	err := db.Transaction(func(tx *gorm.DB) error {
		if len(rows) > 0 {
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).CreateInBatches(rows, batchSize)
			if res.Error != nil {
				return fmt.Errorf("upsert prompts: %w", res.Error)
			}
			report.Upserted = len(rows)
		}

		stale := tx.Model(&PromptRow{})
		if len(ids) > 0 {
			stale = stale.Where("id NOT IN ?", ids)
		} else {
			stale = stale.Where("1 = 1")
		}
		res := stale.Delete(&PromptRow{})
		if res.Error != nil {
			return fmt.Errorf("delete stale rows: %w", res.Error)
		}
		report.Deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return SyncReport{}, err
	}

	s.logger.Info("Mirror synced", zap.Int("upserted", report.Upserted), zap.Int64("deleted", report.Deleted))
	return report, nil
}

// Check inspects the mirror table without changing it.
func (s *Service) Check(ctx context.Context) (CheckReport, error) {
	db := s.db.WithContext(ctx)
	report := CheckReport{
		Table:   TableName,
		Prompts: len(s.library.Document().Prompts),
	}

	missing, err := database.MissingColumns(db, TableName, Columns)
	if err != nil {
		return report, err
	}
	report.Exists = db.Migrator().HasTable(TableName)
	report.MissingColumns = missing
	if !report.Exists {
		return report, nil
	}

	if err := db.Model(&PromptRow{}).Count(&report.Rows).Error; err != nil {
		return report, fmt.Errorf("count %s: %w", TableName, err)
	}
	report.InSync = len(missing) == 0 && report.Rows == int64(report.Prompts)
	return report, nil
}
