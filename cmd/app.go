package cmd

import (
	"fmt"
	"os"
	"time"

	"prompt-library/core/config"
	"prompt-library/core/database"
	"prompt-library/core/imaging"
	"prompt-library/core/logger"
	"prompt-library/core/persistence"
	"prompt-library/core/promptdb"
	"prompt-library/core/storage"
	"prompt-library/feature/backup"
	"prompt-library/feature/integrity"
	"prompt-library/feature/library"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	library *library.Service
	encoder *imaging.Swappable
}

// openApp loads the configuration, builds the logger and opens the library.
func openApp() (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	lib, enc, err := openLibrary(cfg, logg)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logg, library: lib, encoder: enc}, nil
}

// openLibrary opens the library document and wraps it in a service.
func openLibrary(cfg *config.Config, logg *zap.Logger) (*library.Service, *imaging.Swappable, error) {
	enc := imaging.NewSwappable(cfg.Thumbnail.NewEncoder())
	store, err := promptdb.Open(
		persistence.NewFileGateway(cfg.Library.Path),
		promptdb.WithEncoder(enc),
		promptdb.WithLogger(logger.WithLibrary(logg, cfg.Library.Path)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open library: %w", err)
	}

	svc := library.NewService(store, library.Options{
		ExportDir:        cfg.Library.ExportDir,
		RewriteThreshold: cfg.Library.RewriteThreshold,
	}, logg)
	return svc, enc, nil
}

// startupCleanup removes old unrated prompts when the server starts with
// cleanup_on_start set. Other commands never clean up implicitly.
func (a *app) startupCleanup() int {
	if !a.cfg.Library.CleanupOnStart {
		return 0
	}
	removed, err := a.library.Cleanup(0)
	if err != nil {
		a.logger.Warn("Startup cleanup failed", zap.Error(err))
	}
	return removed
}

// close flushes the logger.
func (a *app) close() {
	_ = a.logger.Sync()
}

// storageClient returns the backup store client, or nil when none is configured.
func (a *app) storageClient() (storage.Client, error) {
	if !a.cfg.Storage.Enabled() {
		return nil, nil
	}
	return storage.NewClient(a.cfg.Storage)
}

// backupService builds the backup service or fails when storage is not configured.
func (a *app) backupService() (*backup.Service, error) {
	client, err := a.storageClient()
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("storage endpoint is not configured")
	}
	return backup.NewService(client, a.library, a.backupOptions(), a.logger), nil
}

func (a *app) backupOptions() backup.Options {
	return backup.Options{
		Bucket:   a.cfg.Storage.Bucket,
		Prefix:   a.cfg.Storage.Prefix,
		Region:   a.cfg.Storage.Region,
		Keep:     a.cfg.Backup.Keep,
		Attempts: a.cfg.Backup.Attempts,
		Delay:    time.Duration(a.cfg.Backup.DelayMillis) * time.Millisecond,
	}
}

func (a *app) integrityOptions() integrity.Options {
	return integrity.Options{
		LibraryPath: a.cfg.Library.Path,
		ExportDir:   a.cfg.Library.ExportDir,
		Bucket:      a.cfg.Storage.Bucket,
		Prefix:      a.cfg.Storage.Prefix,
		Region:      a.cfg.Storage.Region,
	}
}

// database connects the mirror database, or returns nil when none is configured.
func (a *app) database() (*gorm.DB, error) {
	if !a.cfg.Database.Enabled() {
		return nil, nil
	}
	return database.Connect(a.cfg.Database)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
