package config

import (
	"fmt"

	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/macropower/mdclean/pkg/pipeline"
	"github.com/macropower/mdclean/pkg/walker"
	"github.com/macropower/mdclean/pkg/yaml"
)

//go:generate go run ../../internal/schemagen -o config.v1beta1.json

const (
	// APIVersion is the current configuration API version.
	APIVersion = "mdclean.macropower.github.io/v1beta1"
	// Kind is the kind of the configuration document.
	Kind = "Configuration"

	schemaURL = "/config.v1beta1.json"
)

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	//go:embed config.v1beta1.json
	schemaJSON []byte

	ValidAPIVersions = []string{APIVersion}
	ValidKinds       = []string{Kind}

	// DefaultValidator validates configuration against the JSON schema.
	DefaultValidator = yaml.MustNewValidator(schemaURL, schemaJSON)
)

//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	// Files selects the files to clean.
	Files *walker.Config `json:"files,omitempty" jsonschema:"title=Files"`
	// Rules configures the cleaning rules.
	Rules *pipeline.Config `json:"rules,omitempty" jsonschema:"title=Rules"`
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind"`
}

// NewConfig creates a new [Config] with default values.
func NewConfig() *Config {
	c := &Config{
		APIVersion: APIVersion,
		Kind:       Kind,
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.Files == nil {
		c.Files = walker.NewConfig()
	} else {
		c.Files.EnsureDefaults()
	}

	if c.Rules == nil {
		c.Rules = pipeline.NewConfig()
	} else {
		c.Rules.EnsureDefaults()
	}
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	extendSchemaWithEnum(jss, "apiVersion", "API Version", ValidAPIVersions)
	extendSchemaWithEnum(jss, "kind", "Kind", ValidKinds)
}

func extendSchemaWithEnum(jss *jsonschema.Schema, property, title string, values []string) {
	prop, ok := jss.Properties.Get(property)
	if !ok {
		panic(fmt.Sprintf("%s property not found in schema", property))
	}

	for _, v := range values {
		prop.OneOf = append(prop.OneOf, &jsonschema.Schema{
			Type:  "string",
			Const: v,
			Title: title,
		})
	}

	_, _ = jss.Properties.Set(property, prop)
}

// MarshalYAML serializes the config to YAML.
func (c *Config) MarshalYAML() ([]byte, error) {
	type alias Config

	return yaml.Marshal((*alias)(c)) //nolint:wrapcheck // Already wrapped.
}
