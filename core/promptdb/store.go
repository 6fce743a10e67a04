package promptdb

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

// Gateway loads and saves the library document.
// Load returns an error wrapping fs.ErrNotExist when nothing is persisted yet
// and one wrapping ErrMalformed when the persisted bytes cannot be used.
type Gateway interface {
	Load() (*Document, error)
	Save(doc *Document) error
}

// MalformedKeeper is implemented by gateways able to copy an unreadable
// document aside before the first write-through replaces it.
type MalformedKeeper interface {
	KeepMalformed() (string, error)
}

// Encoder produces a bounded thumbnail payload from a source image.
type Encoder interface {
	Encode(path string) (string, error)
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithEncoder sets the thumbnail encoder used for image paths.
func WithEncoder(e Encoder) Option {
	return func(s *Store) { s.encoder = e }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Store is the in-memory prompt library with write-through persistence.
type Store struct {
	doc     *Document
	byID    map[int64]*PromptRecord
	gateway Gateway
	clock   Clock
	encoder Encoder
	logger  *zap.Logger
}

// Open loads the document behind gw. A missing document yields an empty
// library; a malformed one is logged, kept aside when the gateway supports it,
// and replaced by an empty library.
func Open(gw Gateway, opts ...Option) (*Store, error) {
	s := newStore(gw, opts)

	doc, err := gw.Load()
	switch {
	case err == nil:
		s.logger.Info("Loaded prompt library", zap.Int("prompts", len(doc.Prompts)))
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Info("No prompt library found, starting empty")
		doc = NewDocument(s.clock.Now())
	case errors.Is(err, ErrMalformed):
		s.logger.Error("Prompt library is malformed, starting empty", zap.Error(err))
		if keeper, ok := gw.(MalformedKeeper); ok {
			if kept, kerr := keeper.KeepMalformed(); kerr != nil {
				s.logger.Warn("Failed to keep malformed library aside", zap.Error(kerr))
			} else {
				s.logger.Warn("Malformed library kept for manual recovery", zap.String("path", kept))
			}
		}
		doc = NewDocument(s.clock.Now())
	default:
		return nil, fmt.Errorf("%w: load: %w", ErrIO, err)
	}

	s.attach(doc)
	return s, nil
}

// New wraps an existing document. A nil gateway keeps the store in memory only.
func New(doc *Document, gw Gateway, opts ...Option) *Store {
	s := newStore(gw, opts)
	if doc == nil {
		doc = NewDocument(s.clock.Now())
	}
	s.attach(doc)
	return s
}

func newStore(gw Gateway, opts []Option) *Store {
	s := &Store{
		gateway: gw,
		clock:   systemClock{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// attach normalises doc and indexes its records.
func (s *Store) attach(doc *Document) {
	if doc.Settings.MaxThumbnails <= 0 {
		doc.Settings.MaxThumbnails = DefaultMaxThumbnails
	}
	if doc.Settings.AutoCleanupDays <= 0 {
		doc.Settings.AutoCleanupDays = DefaultCleanupDays
	}
	doc.Categories = appendUnique([]string{}, doc.Categories...)
	doc.Tags = NormalizeTags(doc.Tags)
	if len(doc.Models) > 0 {
		doc.Models = appendUnique([]string{}, doc.Models...)
	}

	var maxID int64
	for _, p := range doc.Prompts {
		if p != nil && p.ID > maxID {
			maxID = p.ID
		}
	}
	if doc.NextID <= maxID {
		doc.NextID = maxID + 1
	}

	s.doc = doc
	s.byID = make(map[int64]*PromptRecord, len(doc.Prompts))
	prompts := make([]*PromptRecord, 0, len(doc.Prompts))
	for _, p := range doc.Prompts {
		if p == nil {
			continue
		}
		if _, dup := s.byID[p.ID]; dup || p.ID <= 0 {
			p.ID = s.allocateID()
		}
		normalizeRecord(p)
		s.byID[p.ID] = p
		prompts = append(prompts, p)
	}
	doc.Prompts = prompts
}

func normalizeRecord(p *PromptRecord) {
	if p.Hash == "" {
		p.Hash = ContentHash(p.Text)
	}
	if p.Category != nil {
		p.Category = NormalizeCategory(*p.Category)
	}
	p.Tags = NormalizeTags(p.Tags)
	p.Rating = ClampRating(p.Rating)
	if p.UsedCount < 0 {
		p.UsedCount = 0
	}
	if p.Thumbnails == nil {
		p.Thumbnails = ThumbnailPool{}
	}
	if p.History == nil {
		p.History = []HistoryEntry{}
	}
}

func (s *Store) allocateID() int64 {
	id := s.doc.NextID
	s.doc.NextID++
	return id
}

func (s *Store) now() string {
	return FormatTime(s.clock.Now())
}

// flush writes the document through the gateway.
func (s *Store) flush() error {
	s.doc.LastUpdated = s.now()
	if s.gateway == nil {
		return nil
	}
	if err := s.gateway.Save(s.doc); err != nil {
		s.logger.Error("Failed to save prompt library", zap.Error(err))
		return fmt.Errorf("%w: save: %w", ErrIO, err)
	}
	return nil
}

// Flush writes the document. Callers of Insert and Replace use it to commit.
func (s *Store) Flush() error {
	return s.flush()
}

func (s *Store) findByHash(hash string) *PromptRecord {
	for _, p := range s.doc.Prompts {
		if p.Hash == hash {
			return p
		}
	}
	return nil
}

func (s *Store) insert(rec *PromptRecord) {
	s.doc.Prompts = append(s.doc.Prompts, rec)
	s.byID[rec.ID] = rec
	s.registerRecord(rec)
}

func (s *Store) registerRecord(rec *PromptRecord) {
	if rec.Category != nil {
		s.doc.Categories = appendUnique(s.doc.Categories, *rec.Category)
	}
	s.doc.Tags = appendUnique(s.doc.Tags, rec.Tags...)
	for _, h := range rec.History {
		if h.Model != "" {
			s.doc.Models = appendUnique(s.doc.Models, h.Model)
		}
	}
}

func (s *Store) encodeThumbnail(path, timestamp string) (Thumbnail, error) {
	if s.encoder == nil {
		return Thumbnail{}, errors.New("no thumbnail encoder configured")
	}
	data, err := s.encoder.Encode(path)
	if err != nil {
		return Thumbnail{}, err
	}
	return Thumbnail{
		Data:        data,
		Timestamp:   timestamp,
		SourceImage: filepath.Base(normalizePath(path)),
	}, nil
}

// AddPrompt stores a new prompt and returns its identifier. If a record with
// the same content hash exists, its identifier is returned and nothing changes.
func (s *Store) AddPrompt(in NewPrompt) (int64, error) {
	hash := ContentHash(in.Text)
	if existing := s.findByHash(hash); existing != nil {
		s.logger.Debug("Prompt already exists", zap.Int64("id", existing.ID))
		return existing.ID, nil
	}

	now := s.now()
	rec := &PromptRecord{
		ID:         s.allocateID(),
		Text:       in.Text,
		Category:   NormalizeCategory(in.Category),
		Tags:       NormalizeTags(in.Tags),
		Rating:     ClampRating(in.Rating),
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
		UsedCount:  1,
		Hash:       hash,
		Thumbnails: ThumbnailPool{},
		History:    []HistoryEntry{},
	}

	if in.SourceImage != "" {
		thumb, err := s.encodeThumbnail(in.SourceImage, now)
		if err != nil {
			s.logger.Warn("Thumbnail encoding failed, saving prompt without it",
				zap.String("image", in.SourceImage), zap.Error(err))
		} else {
			rec.Thumbnails = ThumbnailPool{thumb}
		}
	}

	s.insert(rec)
	s.logger.Info("Added prompt", zap.Int64("id", rec.ID), zap.String("hash", hash[:shortHashLen]))
	return rec.ID, s.flush()
}

// UpdatePrompt overwrites the fields set in u. A text change recomputes the
// hash without re-checking for duplicates.
func (s *Store) UpdatePrompt(id int64, u PromptUpdate) error {
	rec, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	if u.Text != nil {
		rec.Text = *u.Text
		rec.Hash = ContentHash(rec.Text)
	}
	if u.Category != nil {
		rec.Category = NormalizeCategory(*u.Category)
	}
	if u.Tags != nil {
		rec.Tags = NormalizeTags(*u.Tags)
	}
	if u.Rating != nil {
		rec.Rating = ClampRating(*u.Rating)
	}
	if u.Notes != nil {
		rec.Notes = *u.Notes
	}
	rec.UpdatedAt = s.now()
	s.registerRecord(rec)

	s.logger.Info("Updated prompt", zap.Int64("id", id))
	return s.flush()
}

// DeletePrompt removes a record. It reports false when id is absent.
func (s *Store) DeletePrompt(id int64) (bool, error) {
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	for i, p := range s.doc.Prompts {
		if p.ID == id {
			s.doc.Prompts = append(s.doc.Prompts[:i], s.doc.Prompts[i+1:]...)
			break
		}
	}

	s.logger.Info("Deleted prompt", zap.Int64("id", id))
	return true, s.flush()
}

// AddGenerationHistoryEntry appends a generation run and counts one use.
func (s *Store) AddGenerationHistoryEntry(id int64, in HistoryInput) error {
	rec, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	now := s.now()
	rec.History = append(rec.History, HistoryEntry{
		Timestamp:   now,
		FullPrompt:  in.FullPrompt,
		OutputImage: normalizePath(in.OutputImage),
		Model:       in.Model,
		Snapshot:    in.Snapshot,
	})
	rec.UsedCount++
	rec.UpdatedAt = now
	if in.Model != "" {
		s.doc.Models = appendUnique(s.doc.Models, in.Model)
	}

	return s.flush()
}

// AddThumbnail encodes imagePath and places it in the record's pool.
func (s *Store) AddThumbnail(id int64, imagePath string) error {
	rec, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	now := s.now()
	thumb, err := s.encodeThumbnail(imagePath, now)
	if err != nil {
		return fmt.Errorf("encode thumbnail %s: %w", imagePath, err)
	}

	rec.Thumbnails = rec.Thumbnails.AddOrReplace(thumb, s.doc.Settings.MaxThumbnails)
	rec.UpdatedAt = now
	return s.flush()
}

// LockThumbnail protects a slot from automatic replacement.
func (s *Store) LockThumbnail(id int64, index int) error {
	return s.setThumbnailLock(id, index, true)
}

// UnlockThumbnail makes a slot eligible for replacement again.
func (s *Store) UnlockThumbnail(id int64, index int) error {
	return s.setThumbnailLock(id, index, false)
}

func (s *Store) setThumbnailLock(id int64, index int, locked bool) error {
	rec, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err := rec.Thumbnails.SetLocked(index, locked); err != nil {
		return err
	}
	return s.flush()
}

// Thumbnail returns the thumbnail in slot index of a record.
func (s *Store) Thumbnail(id int64, index int) (Thumbnail, error) {
	rec, ok := s.byID[id]
	if !ok {
		return Thumbnail{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if index < 0 || index >= len(rec.Thumbnails) {
		return Thumbnail{}, fmt.Errorf("%w: %d (pool has %d)", ErrInvalidIndex, index, len(rec.Thumbnails))
	}
	return rec.Thumbnails[index], nil
}

// CleanupOldUnrated removes unrated records created more than retentionDays
// ago. Rated records are never removed. A non-positive retentionDays uses the
// document setting. Nothing happens while auto-cleanup is disabled.
func (s *Store) CleanupOldUnrated(retentionDays int) (int, error) {
	if !s.doc.Settings.AutoCleanupEnabled {
		return 0, nil
	}
	if retentionDays <= 0 {
		retentionDays = s.doc.Settings.AutoCleanupDays
	}
	cutoff := FormatTime(s.clock.Now().AddDate(0, 0, -retentionDays))

	kept := make([]*PromptRecord, 0, len(s.doc.Prompts))
	for _, p := range s.doc.Prompts {
		if p.Rating == 0 && p.CreatedAt < cutoff {
			delete(s.byID, p.ID)
			continue
		}
		kept = append(kept, p)
	}

	removed := len(s.doc.Prompts) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	s.doc.Prompts = kept

	s.logger.Info("Cleaned up old unrated prompts", zap.Int("removed", removed), zap.Int("days", retentionDays))
	return removed, s.flush()
}

// Settings returns the document settings.
func (s *Store) Settings() Settings {
	return s.doc.Settings
}

// UpdateSettings overwrites the settings set in u.
func (s *Store) UpdateSettings(u SettingsUpdate) (Settings, error) {
	if u.AutoCleanupEnabled != nil {
		s.doc.Settings.AutoCleanupEnabled = *u.AutoCleanupEnabled
	}
	if u.AutoCleanupDays != nil && *u.AutoCleanupDays > 0 {
		s.doc.Settings.AutoCleanupDays = *u.AutoCleanupDays
	}
	if u.MaxThumbnails != nil && *u.MaxThumbnails > 0 {
		s.doc.Settings.MaxThumbnails = *u.MaxThumbnails
	}
	return s.doc.Settings, s.flush()
}

// Get returns a copy of the record with id.
func (s *Store) Get(id int64) (PromptRecord, error) {
	rec, ok := s.byID[id]
	if !ok {
		return PromptRecord{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return rec.Clone(), nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.doc.Prompts)
}

// Document returns a deep copy of the whole library.
func (s *Store) Document() *Document {
	return s.doc.Clone()
}

// Categories returns the known categories.
func (s *Store) Categories() []string {
	return append([]string{}, s.doc.Categories...)
}

// Tags returns the known tags.
func (s *Store) Tags() []string {
	return append([]string{}, s.doc.Tags...)
}

// Models returns the known model names.
func (s *Store) Models() []string {
	return append([]string{}, s.doc.Models...)
}

// Statistics summarises the library.
func (s *Store) Statistics() Stats {
	st := Stats{
		TotalPrompts:    len(s.doc.Prompts),
		TotalCategories: len(s.doc.Categories),
		TotalTags:       len(s.doc.Tags),
		TotalModels:     len(s.doc.Models),
	}
	for _, p := range s.doc.Prompts {
		if p.Rating > 0 {
			st.RatedPrompts++
		} else {
			st.UnratedPrompts++
		}
		if len(p.Thumbnails) > 0 {
			st.PromptsWithThumbnails++
		}
		st.TotalGenerations += p.UsedCount
	}
	return st
}

// CategoryCounts returns the number of records per category.
func (s *Store) CategoryCounts() map[string]int {
	counts := make(map[string]int, len(s.doc.Categories))
	for _, p := range s.doc.Prompts {
		if p.Category != nil {
			counts[*p.Category]++
		}
	}
	return counts
}
