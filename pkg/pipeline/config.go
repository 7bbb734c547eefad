package pipeline

import (
	"slices"

	"github.com/macropower/mdclean/pkg/rule"
)

// Config defines the anchors used by the cleaning rules. The order in which
// rules run is fixed and cannot be configured.
type Config struct {
	// DateToTitle configures the date-to-title preamble rule.
	DateToTitle *DateToTitleConfig `json:"dateToTitle,omitempty" jsonschema:"title=Date To Title"`
	// Attribution configures the trailing attribution rule.
	Attribution *AttributionConfig `json:"attribution,omitempty" jsonschema:"title=Attribution"`
	// Phrases lists promotional phrases removed case-insensitively.
	Phrases []string `json:"phrases,omitempty" jsonschema:"title=Phrases"`
}

// DateToTitleConfig configures [rule.NewDateToTitle].
type DateToTitleConfig struct {
	// Marker is the phrase that ends the preamble. It is removed as well.
	Marker string `json:"marker" jsonschema:"title=Marker,minLength=1"`
}

// AttributionConfig configures [rule.NewAttribution].
type AttributionConfig struct {
	// Author is the emphasized author mark where the attribution starts.
	Author string `json:"author" jsonschema:"title=Author,minLength=1"`
}

// NewConfig returns a [Config] holding the default anchors.
func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.DateToTitle == nil {
		c.DateToTitle = &DateToTitleConfig{}
	}
	if c.DateToTitle.Marker == "" {
		c.DateToTitle.Marker = rule.DefaultMarker
	}

	if c.Attribution == nil {
		c.Attribution = &AttributionConfig{}
	}
	if c.Attribution.Author == "" {
		c.Attribution.Author = rule.DefaultAuthor
	}

	if c.Phrases == nil {
		c.Phrases = slices.Clone(rule.DefaultPhrases)
	}
}

// Options converts the config into [Opt]s for [New].
func (c *Config) Options() []Opt {
	c.EnsureDefaults()

	return []Opt{
		WithMarker(c.DateToTitle.Marker),
		WithAuthor(c.Attribution.Author),
		WithPhrases(c.Phrases...),
	}
}
