package walker

// Config defines which files are cleaned.
type Config struct {
	// Extension is the file name suffix of the files to clean.
	Extension string `json:"extension,omitempty" jsonschema:"title=Extension,minLength=1"`
}

// NewConfig returns a [Config] holding the defaults.
func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes empty fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
}

// Options converts the config into [Opt]s for [New].
func (c *Config) Options() []Opt {
	c.EnsureDefaults()

	return []Opt{WithExtension(c.Extension)}
}
