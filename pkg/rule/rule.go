package rule

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// NameImageLinks is the name of the rule created by [NewImageLinks].
	NameImageLinks = "image-links"
	// NameDateToTitle is the name of the rule created by [NewDateToTitle].
	NameDateToTitle = "date-to-title"
	// NameAttribution is the name of the rule created by [NewAttribution].
	NameAttribution = "attribution"
	// NamePhrases is the name of the rule created by [NewPhrases].
	NamePhrases = "phrases"

	// DefaultMarker terminates the date-to-title preamble.
	DefaultMarker = "Ahoy, Digital Writers!"
	// DefaultAuthor is the emphasized author mark that starts the trailing
	// attribution block.
	DefaultAuthor = "_Nicolas Cole_"
)

// DefaultPhrases are the promotional phrases removed by default.
var DefaultPhrases = []string{"ship 30 for 30", "typeshare"}

const (
	// A link-wrapped image [![alt](src)](href), or a bare image with
	// optional surrounding brackets. The src and href never contain ")" and
	// the wrapped alt only holds balanced brackets, so a match always ends at
	// the first image and never reaches a later one on the same line.
	imageLinksPattern = `\[!\[(?:[^\[\]\n]|\[[^\[\]\n]*\])*\]\([^)\n]*\)\](?:\([^)\n]*\))?` +
		`|\[?!\[.*?\]\([^)\n]*\)\]?`

	// A bold date stamp such as **Jan 5, 2022**, followed by anything
	// (including newlines) up to the first marker.
	dateStampPattern = `(?s)\*\*[A-Za-z]{3} \d{1,2}, \d{4}\*\*.*?`

	// From the author mark, through the first line starting with a
	// horizontal rule, to the end of the text.
	attributionSuffixPattern = `.*?\n(\* \* \*).*`
)

// Rule removes every match of its pattern from a text.
type Rule struct {
	re *regexp.Regexp

	// Name identifies the rule in logs.
	Name string
}

// New creates a new rule with the given name and regular expression.
func New(name, pattern string) (*Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("rule %q: compile pattern: %w", name, err)
	}

	return &Rule{Name: name, re: re}, nil
}

// MustNew creates a new rule and panics if there's an error.
func MustNew(name, pattern string) *Rule {
	r, err := New(name, pattern)
	if err != nil {
		panic(err)
	}

	return r
}

// NewImageLinks creates a rule removing Markdown images, both bare
// `![alt](src)` and link-wrapped `[![alt](src)](href)`.
func NewImageLinks() *Rule {
	return MustNew(NameImageLinks, imageLinksPattern)
}

// NewDateToTitle creates a rule removing a bold date stamp and everything
// after it up to and including the first occurrence of marker.
// If marker is empty, [DefaultMarker] is used.
func NewDateToTitle(marker string) *Rule {
	if marker == "" {
		marker = DefaultMarker
	}

	return MustNew(NameDateToTitle, dateStampPattern+regexp.QuoteMeta(marker))
}

// NewAttribution creates a rule removing everything from the author mark to
// the end of the text, provided a horizontal rule (`* * *`) starts a line
// somewhere after the mark. If author is empty, [DefaultAuthor] is used.
func NewAttribution(author string) *Rule {
	if author == "" {
		author = DefaultAuthor
	}

	return MustNew(NameAttribution, "(?s)"+regexp.QuoteMeta(author)+attributionSuffixPattern)
}

// NewPhrases creates a rule removing every case-insensitive occurrence of
// the given phrases. Phrases are matched literally. Empty phrases are
// ignored; with no phrases left the rule is a no-op.
func NewPhrases(phrases ...string) *Rule {
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p == "" {
			continue
		}

		quoted = append(quoted, regexp.QuoteMeta(p))
	}

	if len(quoted) == 0 {
		return &Rule{Name: NamePhrases}
	}

	return MustNew(NamePhrases, "(?i)"+strings.Join(quoted, "|"))
}

// Apply returns text with every match of the rule removed.
func (r *Rule) Apply(text string) string {
	if r.re == nil {
		return text
	}

	return r.re.ReplaceAllLiteralString(text, "")
}

// Matches reports whether the rule would change text.
func (r *Rule) Matches(text string) bool {
	if r.re == nil {
		return false
	}

	return r.re.MatchString(text)
}

// Pattern returns the rule's regular expression source, or an empty string
// for a no-op rule.
func (r *Rule) Pattern() string {
	if r.re == nil {
		return ""
	}

	return r.re.String()
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s: %s", r.Name, r.Pattern())
}
