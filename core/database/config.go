package database

// Config holds configuration for the optional mirror database connection.
type Config struct {
	// Driver is the database driver (mysql, sqlite). Empty disables the mirror.
	Driver string `mapstructure:"driver" yaml:"driver" default:""`
	// Host is the database host.
	Host string `mapstructure:"host" yaml:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" yaml:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" yaml:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" yaml:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" yaml:"name" default:"prompt_library"`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds" default:"30"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Enabled reports whether a driver is configured.
func (c Config) Enabled() bool {
	return c.Driver != ""
}
