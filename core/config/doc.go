// Package config provides configuration management for the prompt library.
//
// It utilizes Viper for loading configuration from environment variables, a
// .env file and an optional config.yaml, in that order of precedence.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key and body limit
//   - Log: logging level and format
//   - Library: document path, export directory, rewrite threshold
//   - Thumbnail: preview box and JPEG quality
//   - Storage / Backup: S3/MinIO snapshot target, retention and retries
//   - Database: optional MySQL or SQLite mirror
//
// Defaults live in struct tags and are registered with Viper by reflection, so
// every key is also reachable from the environment (LIBRARY_PATH -> library.path).
//
// # Hot Reload
//
// Watch re-reads config.yaml through fsnotify and hands the new settings to a
// callback; the start command uses it to retune the rewrite classifier and the
// thumbnail encoder without a restart.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Library.Path)
package config
