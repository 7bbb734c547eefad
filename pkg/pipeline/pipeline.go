package pipeline

import (
	"log/slog"

	"github.com/macropower/mdclean/pkg/rule"
)

// Pipeline applies a fixed sequence of rules to document text.
type Pipeline struct {
	logger  *slog.Logger
	marker  string
	author  string
	phrases []string
	rules   []*rule.Rule
}

// Opt configures a [Pipeline].
type Opt func(p *Pipeline)

// WithLogger sets the logger used to report each stage.
func WithLogger(logger *slog.Logger) Opt {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithMarker sets the phrase that terminates the date-to-title preamble.
func WithMarker(marker string) Opt {
	return func(p *Pipeline) {
		p.marker = marker
	}
}

// WithAuthor sets the author mark that starts the trailing attribution.
func WithAuthor(author string) Opt {
	return func(p *Pipeline) {
		p.author = author
	}
}

// WithPhrases replaces the set of promotional phrases to remove.
func WithPhrases(phrases ...string) Opt {
	return func(p *Pipeline) {
		p.phrases = phrases
	}
}

// New creates a new [Pipeline]. Without options it uses [rule.DefaultMarker],
// [rule.DefaultAuthor] and [rule.DefaultPhrases].
func New(opts ...Opt) *Pipeline {
	p := &Pipeline{
		logger:  slog.Default(),
		marker:  rule.DefaultMarker,
		author:  rule.DefaultAuthor,
		phrases: rule.DefaultPhrases,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.rules = []*rule.Rule{
		rule.NewImageLinks(),
		rule.NewDateToTitle(p.marker),
		rule.NewAttribution(p.author),
		rule.NewPhrases(p.phrases...),
	}

	return p
}

// Rules returns the rules in the order they are applied.
func (p *Pipeline) Rules() []*rule.Rule {
	return p.rules
}

// Clean applies every rule in order, each one consuming the output of the
// previous, and returns the fully cleaned text.
func (p *Pipeline) Clean(text string) string {
	for _, r := range p.rules {
		p.logger.Debug("apply rule", slog.String("rule", r.Name))

		before := len(text)
		text = r.Apply(text)

		if removed := before - len(text); removed > 0 {
			p.logger.Debug("rule removed content",
				slog.String("rule", r.Name),
				slog.Int("bytes", removed),
			)
		}
	}

	return text
}
