package config

import (
	"bytes"
	"fmt"

	"github.com/macropower/mdclean/pkg/yaml"
)

// Validator validates configuration data against a schema.
type Validator interface {
	Validate(data any) error
}

// ConfigLoader loads and validates configuration files.
type ConfigLoader struct {
	validator Validator
	yamlError *yaml.ErrorWrapper
	data      []byte
}

// NewConfigLoaderFromBytes creates a [ConfigLoader] from byte data.
func NewConfigLoaderFromBytes(data []byte) *ConfigLoader {
	return &ConfigLoader{
		data:      data,
		validator: DefaultValidator,
		yamlError: yaml.NewErrorWrapper(yaml.WithSource(data)),
	}
}

// NewConfigLoaderFromFile creates a [ConfigLoader] from a file path. A
// missing file yields an error wrapping [io/fs.ErrNotExist].
func NewConfigLoaderFromFile(path string) (*ConfigLoader, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return NewConfigLoaderFromBytes(data), nil
}

// Validate validates the configuration data against the schema.
func (cl *ConfigLoader) Validate() error {
	var anyConfig any

	dec := yaml.NewLooseDecoder(bytes.NewReader(cl.data))

	err := dec.Decode(&anyConfig)
	if err != nil {
		return cl.yamlError.Wrap(err)
	}

	err = cl.validator.Validate(anyConfig)
	if err != nil {
		return cl.yamlError.Wrap(err)
	}

	return nil
}

// Load parses and returns the [Config], with defaults filled in.
func (cl *ConfigLoader) Load() (*Config, error) {
	c := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(cl.data))

	err := dec.Decode(c)
	if err != nil {
		return nil, cl.yamlError.Wrap(err)
	}

	c.EnsureDefaults()

	return c, nil
}
