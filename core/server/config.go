package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" yaml:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" yaml:"api_key" default:""`
	// BodyLimitMB bounds request bodies, which carry whole libraries on merge.
	BodyLimitMB int `mapstructure:"body_limit_mb" yaml:"body_limit_mb" default:"64"`
}

// DefaultBodyLimitMB is used when BodyLimitMB is not positive.
const DefaultBodyLimitMB = 64

// Address returns the listen address.
func (c Config) Address() string {
	return ":" + c.Port
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = DefaultBodyLimitMB
	}
	return mb * 1024 * 1024
}
