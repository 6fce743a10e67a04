package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"prompt-library/core/database"
	"prompt-library/core/imaging"
	"prompt-library/core/logger"
	"prompt-library/core/server"
	"prompt-library/core/storage"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the optional configuration file read next to the .env file.
const FileName = "config.yaml"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server" yaml:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log" yaml:"log"`
	// Library holds the location of the prompt library and host behaviour.
	Library LibraryConfig `mapstructure:"library" yaml:"library"`
	// Thumbnail holds the thumbnail encoder settings.
	Thumbnail imaging.Config `mapstructure:"thumbnail" yaml:"thumbnail"`
	// Storage holds configuration for the backup object store (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage" yaml:"storage"`
	// Backup holds snapshot retention and retry settings.
	Backup BackupConfig `mapstructure:"backup" yaml:"backup"`
	// Database holds configuration for the optional mirror database.
	Database database.Config `mapstructure:"database" yaml:"database"`
}

// LibraryConfig locates the library document and tunes the host layer.
type LibraryConfig struct {
	// Path is the library JSON document.
	Path string `mapstructure:"path" yaml:"path" default:"data/prompt_library.json"`
	// ExportDir receives timestamped exports.
	ExportDir string `mapstructure:"export_dir" yaml:"export_dir" default:"data/exports"`
	// RewriteThreshold is the similarity below which a saved edit becomes a new prompt.
	RewriteThreshold float64 `mapstructure:"rewrite_threshold" yaml:"rewrite_threshold" default:"0.2"`
	// CleanupOnStart runs the unrated-prompt cleanup when the server starts.
	CleanupOnStart bool `mapstructure:"cleanup_on_start" yaml:"cleanup_on_start" default:"false"`
}

// BackupConfig controls library snapshots.
type BackupConfig struct {
	// Keep is the number of snapshots retained after a push. Zero keeps all.
	Keep int `mapstructure:"keep" yaml:"keep" default:"10"`
	// Attempts is the number of tries for each upload or download.
	Attempts uint `mapstructure:"attempts" yaml:"attempts" default:"3"`
	// DelayMillis is the initial backoff between attempts.
	DelayMillis int `mapstructure:"delay_millis" yaml:"delay_millis" default:"500"`
}

// LoadConfig loads configuration from environment variables, the .env file and
// an optional config.yaml, all looked up in path.
func LoadConfig(path string) (*Config, error) {
	v, _, err := newViper(path)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Default returns the configuration built from struct-tag defaults only.
func Default() (*Config, error) {
	v := viper.New()
	bindValues(v, Config{}, "")
	return decode(v)
}

// Watch reloads the config file in path on every change and hands the result
// to onChange. Decode failures go to onError and keep the previous settings.
func Watch(path string, onChange func(*Config), onError func(error)) error {
	v, found, err := newViper(path)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no %s in %s to watch", FileName, path)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}

// WriteDefault writes the default configuration as YAML to path. An existing
// file is only replaced when overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}

	cfg, err := Default()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// newViper builds a viper instance for path and reports whether config.yaml
// was read.
func newViper(path string) (*viper.Viper, bool, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	found := true
	v.SetConfigFile(filepath.Join(path, FileName))
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, false, fmt.Errorf("read %s: %w", FileName, err)
			}
		}
		found = false
	}

	// Map environment variables to nested keys (e.g. LIBRARY_PATH -> library.path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, found, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
