package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"prompt-library/core/imaging"
	"prompt-library/core/persistence"
	"prompt-library/core/promptdb"
	"prompt-library/core/reconcile"
	"prompt-library/core/similarity"

	"go.uber.org/zap"
)

// Options tunes the service.
type Options struct {
	// ExportDir receives timestamped exports.
	ExportDir string
	// RewriteThreshold is handed to the similarity classifier.
	RewriteThreshold float64
}

// Service serialises access to one prompt store.
type Service struct {
	mu         sync.Mutex
	store      *promptdb.Store
	tracker    *Tracker
	classifier similarity.Classifier
	exportDir  string
	logger     *zap.Logger
}

// NewService wraps store. The service takes ownership: nothing else may use
// store afterwards.
func NewService(store *promptdb.Store, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:      store,
		tracker:    NewTracker(),
		classifier: similarity.NewClassifier(opts.RewriteThreshold),
		exportDir:  opts.ExportDir,
		logger:     logger,
	}
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

// SetRewriteThreshold retunes the classifier used by Save.
func (s *Service) SetRewriteThreshold(threshold float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classifier = similarity.NewClassifier(threshold)
	s.logger.Info("Rewrite threshold changed", zap.Float64("threshold", s.classifier.Threshold))
}

// Add stores a prompt. Duplicate text reports the existing id with Created unset.
func (s *Service) Add(in promptdb.NewPrompt) (SaveResult, error) {
	if strings.TrimSpace(in.Text) == "" {
		return SaveResult{}, fmt.Errorf("%w: empty prompt text", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(in)
}

func (s *Service) add(in promptdb.NewPrompt) (SaveResult, error) {
	before := s.store.Len()
	id, err := s.store.AddPrompt(in)
	if err != nil {
		return SaveResult{}, err
	}
	return SaveResult{ID: id, Created: s.store.Len() > before}, nil
}

// Get returns one prompt.
func (s *Service) Get(id int64) (promptdb.PromptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(id)
}

// Update changes the fields set in u and returns the updated prompt.
func (s *Service) Update(id int64, u promptdb.PromptUpdate) (promptdb.PromptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.UpdatePrompt(id, u); err != nil {
		return promptdb.PromptRecord{}, err
	}
	return s.store.Get(id)
}

// Delete removes a prompt.
func (s *Service) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.DeletePrompt(id)
}

// Search filters prompts.
func (s *Service) Search(q promptdb.SearchQuery) []promptdb.PromptRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Search(q)
}

// AddHistory records a generation run.
func (s *Service) AddHistory(id int64, in promptdb.HistoryInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.AddGenerationHistoryEntry(id, in)
}

// AddThumbnail encodes imagePath into the prompt's pool.
func (s *Service) AddThumbnail(id int64, imagePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.AddThumbnail(id, imagePath)
}

// SetThumbnailLock locks or unlocks a thumbnail slot.
func (s *Service) SetThumbnailLock(id int64, index int, locked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if locked {
		return s.store.LockThumbnail(id, index)
	}
	return s.store.UnlockThumbnail(id, index)
}

// Thumbnail returns one thumbnail.
func (s *Service) Thumbnail(id int64, index int) (promptdb.Thumbnail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Thumbnail(id, index)
}

// ExtractThumbnail writes a thumbnail as a JPEG file to dest.
func (s *Service) ExtractThumbnail(id int64, index int, dest string) error {
	thumb, err := s.Thumbnail(id, index)
	if err != nil {
		return err
	}
	return imaging.DecodeToFile(thumb.Data, dest)
}

// Latest returns the newest prompt of category and remembers it for token.
func (s *Service) Latest(token, category string) (promptdb.PromptRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.store.LatestByCategory(category)
	if ok {
		s.tracker.Remember(token, rec.ID, rec.Text)
	}
	return rec, ok
}

// Forget drops the tracked prompt of token.
func (s *Service) Forget(token string) bool {
	return s.tracker.Forget(token)
}

// SaveRequest is the input of Save.
type SaveRequest struct {
	Token       string
	Text        string
	Category    string
	Tags        []string
	Rating      int
	Notes       string
	SourceImage string
}

// SaveResult reports what Save did.
type SaveResult struct {
	ID      int64 `json:"id"`
	Created bool  `json:"created"`
}

// Save adds or updates a prompt depending on how much the text changed since
// the caller's previous save.
func (s *Service) Save(req SaveRequest) (SaveResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return SaveResult{}, fmt.Errorf("%w: empty prompt text", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, tracked := s.tracker.Last(req.Token)
	if !tracked || s.classifier.IsRewrite(prev.Text, req.Text) {
		return s.saveNew(req)
	}

	targetID := prev.ID
	if _, err := s.store.Get(targetID); err != nil {
		latest, ok := s.store.LatestByCategory(req.Category)
		if !ok {
			return s.saveNew(req)
		}
		s.logger.Debug("Tracked prompt is gone, updating latest in category",
			zap.Int64("missing", targetID), zap.Int64("id", latest.ID))
		targetID = latest.ID
	}

	tags := append([]string{}, req.Tags...)
	update := promptdb.PromptUpdate{
		Text:     &req.Text,
		Category: &req.Category,
		Tags:     &tags,
		Rating:   &req.Rating,
		Notes:    &req.Notes,
	}
	if err := s.store.UpdatePrompt(targetID, update); err != nil {
		return SaveResult{}, err
	}
	if req.SourceImage != "" {
		if err := s.store.AddThumbnail(targetID, req.SourceImage); err != nil {
			s.logger.Warn("Thumbnail not added", zap.Int64("id", targetID), zap.Error(err))
		}
	}

	s.tracker.Remember(req.Token, targetID, req.Text)
	s.logger.Info("Updated prompt from editor",
		zap.Int64("id", targetID), zap.String("hash", promptdb.ShortHash(req.Text)))
	return SaveResult{ID: targetID}, nil
}

func (s *Service) saveNew(req SaveRequest) (SaveResult, error) {
	res, err := s.add(promptdb.NewPrompt{
		Text:        req.Text,
		Category:    req.Category,
		Tags:        req.Tags,
		Rating:      req.Rating,
		Notes:       req.Notes,
		SourceImage: req.SourceImage,
	})
	if err != nil {
		return SaveResult{}, err
	}
	s.tracker.Remember(req.Token, res.ID, req.Text)
	return res, nil
}

// StatsReport is the statistics view of the library.
type StatsReport struct {
	promptdb.Stats
	Categories map[string]int `json:"categories"`
}

// Statistics summarises the library.
func (s *Service) Statistics() StatsReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatsReport{
		Stats:      s.store.Statistics(),
		Categories: s.store.CategoryCounts(),
	}
}

// Vocabulary returns the known categories, tags and models.
func (s *Service) Vocabulary() (categories, tags, models []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Categories(), s.store.Tags(), s.store.Models()
}

// Document returns a snapshot of the whole library.
func (s *Service) Document() *promptdb.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Document()
}

// ExportTo writes the library as JSON to w.
func (s *Service) ExportTo(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ExportTo(w)
}

// Export writes a timestamped copy into the export directory.
func (s *Service) Export() (string, error) {
	doc := s.Document()
	path, err := persistence.ExportToDir(s.exportDir, doc, time.Now())
	if err != nil {
		return "", fmt.Errorf("export library: %w", err)
	}
	s.logger.Info("Exported library", zap.String("path", path), zap.Int("prompts", len(doc.Prompts)))
	return path, nil
}

// MergeOutcome is the result of a merge.
type MergeOutcome struct {
	Plan    *reconcile.MergePlan  `json:"plan"`
	Applied reconcile.PlanSummary `json:"applied"`
	DryRun  bool                  `json:"dry_run"`
}

// Merge folds incoming into the library.
func (s *Service) Merge(ctx context.Context, incoming *promptdb.Document, dryRun bool) (MergeOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, applied, err := reconcile.MergeStores(ctx, s.store, incoming, reconcile.Options{DryRun: dryRun})
	out := MergeOutcome{Plan: plan, Applied: applied, DryRun: dryRun}
	if err != nil {
		return out, err
	}
	s.logger.Info("Merged library",
		zap.Bool("dry_run", dryRun),
		zap.Int("added", applied.Added),
		zap.Int("merged", applied.Merged),
		zap.Int("skipped", applied.Skipped))
	return out, nil
}

// MergeReader decodes a document from r and merges it.
func (s *Service) MergeReader(ctx context.Context, r io.Reader, dryRun bool) (MergeOutcome, error) {
	incoming, err := persistence.ReadDocument(r)
	if err != nil {
		return MergeOutcome{}, err
	}
	return s.Merge(ctx, incoming, dryRun)
}

// MergeFile merges the library stored at path.
func (s *Service) MergeFile(ctx context.Context, path string, dryRun bool) (MergeOutcome, error) {
	incoming, err := persistence.LoadFile(path)
	if err != nil {
		return MergeOutcome{}, err
	}
	return s.Merge(ctx, incoming, dryRun)
}

// Cleanup removes old unrated prompts.
func (s *Service) Cleanup(days int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CleanupOldUnrated(days)
}

// Settings returns the library settings.
func (s *Service) Settings() promptdb.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Settings()
}

// UpdateSettings changes the library settings.
func (s *Service) UpdateSettings(u promptdb.SettingsUpdate) (promptdb.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.UpdateSettings(u)
}

// ErrInvalidInput marks requests rejected before reaching the store.
var ErrInvalidInput = errors.New("invalid input")
