package storage

// Config holds configuration for the backup object store.
type Config struct {
	// Endpoint is the URL of the storage service. Empty disables backups.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" yaml:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" yaml:"use_ssl" default:"false"`
	// Bucket holds the library snapshots.
	Bucket string `mapstructure:"bucket" yaml:"bucket" default:"prompt-library"`
	// Prefix is prepended to every snapshot object name.
	Prefix string `mapstructure:"prefix" yaml:"prefix" default:"backups/"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" yaml:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds" default:"30"`
}

// Enabled reports whether an endpoint is configured.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}
