package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"prompt-library/core/config"
	"prompt-library/core/loader"
	"prompt-library/core/logger"
	"prompt-library/core/middleware/auth"
	"prompt-library/core/middleware/rayid"
	"prompt-library/feature/backup"
	"prompt-library/feature/integrity"
	"prompt-library/feature/library"
	"prompt-library/feature/mirror"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "prompt-library/docs/swagger"
)

// @title Prompt Library API
// @version 1.0
// @description API for storing, searching and merging image-generation prompts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the prompt library server",
	Long:  `Opens the library, starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()
		logg := a.logger
		cfg := a.cfg
		zap.ReplaceGlobals(logg)

		if removed := a.startupCleanup(); removed > 0 {
			logg.Info("Startup cleanup finished", zap.Int("removed", removed))
		}

		// Storage and database are optional; their features stay disabled without them.
		client, err := a.storageClient()
		if err != nil {
			logg.Warn("Storage client unavailable, backups disabled", zap.Error(err))
		}
		db, err := a.database()
		if err != nil {
			logg.Warn("Optional database connection failed, mirror disabled", zap.Error(err))
		} else if db != nil {
			logg.Info("Connected to mirror database", zap.String("driver", cfg.Database.Driver))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			BodyLimit:             cfg.Server.BodyLimit(),
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(library.NewFeature(a.library))
		mgr.Register(backup.NewFeature(client, a.library, a.backupOptions(), logg))
		mgr.Register(mirror.NewFeature(db, a.library, logg))
		mgr.Register(integrity.NewFeature(client, a.integrityOptions(), logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation is public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// Thumbnail size and rewrite threshold follow config.yaml without a restart.
		if err := config.Watch(configDir, func(next *config.Config) {
			a.encoder.Set(next.Thumbnail.NewEncoder())
			a.library.SetRewriteThreshold(next.Library.RewriteThreshold)
			logg.Info("Configuration reloaded")
		}, func(err error) {
			logg.Warn("Configuration reload failed", zap.Error(err))
		}); err != nil {
			logg.Debug("Configuration hot reload disabled", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("library", cfg.Library.Path))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
