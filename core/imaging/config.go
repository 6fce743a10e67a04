package imaging

// Config holds the thumbnail box and JPEG quality.
type Config struct {
	Width   int `mapstructure:"width" yaml:"width" default:"150"`
	Height  int `mapstructure:"height" yaml:"height" default:"150"`
	Quality int `mapstructure:"quality" yaml:"quality" default:"70"`
}

// NewEncoder returns an encoder for the configured box and quality.
func (c Config) NewEncoder() *Encoder {
	return NewEncoder(c.Width, c.Height, c.Quality)
}
