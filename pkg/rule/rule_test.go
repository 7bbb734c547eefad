package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/mdclean/pkg/rule"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{
			name:    "valid pattern",
			pattern: `foo|bar`,
			wantErr: false,
		},
		{
			name:    "invalid pattern",
			pattern: `(foo`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := rule.New("test", tt.pattern)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, r)
				assert.Contains(t, err.Error(), `rule "test"`)
			} else {
				require.NoError(t, err)
				require.NotNil(t, r)
				assert.Equal(t, "test", r.Name)
				assert.Equal(t, tt.pattern, r.Pattern())
			}
		})
	}
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	t.Run("valid rule", func(t *testing.T) {
		t.Parallel()

		r := rule.MustNew("x", `x+`)
		require.NotNil(t, r)
		assert.Empty(t, r.Apply("xxx"))
	})

	t.Run("invalid rule panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			rule.MustNew("x", `[`)
		})
	})
}

func TestImageLinks(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"bare image": {
			input: "before ![alt](http://x/y.png) after",
			want:  "before  after",
		},
		"wrapped image": {
			input: "before [![alt](http://x/y.png)](http://link) after",
			want:  "before  after",
		},
		"wrapped image without href": {
			input: "a [![alt](http://x/y.png)] b",
			want:  "a  b",
		},
		"two images on one line": {
			input: "![a](1.png) keep ![b](2.png)",
			want:  " keep ",
		},
		"unclosed wrapper does not reach a later image": {
			input: "[![a](b) keep ![c](d)] end",
			want:  " keep  end",
		},
		"unclosed wrapper keeps parenthesized text": {
			input: "[![a](b) see (note)] end",
			want:  " see (note)] end",
		},
		"stray closing bracket": {
			input: "![a](b)] end",
			want:  " end",
		},
		"wrapped image with brackets in alt": {
			input: "[![a [b] c](x)](y) z",
			want:  " z",
		},
		"bare image keeps following parentheses": {
			input: "![a](b)(c)",
			want:  "(c)",
		},
		"empty alt": {
			input: "x![](y.png)z",
			want:  "xz",
		},
		"plain link is kept": {
			input: "see [docs](http://docs) here",
			want:  "see [docs](http://docs) here",
		},
		"does not span lines": {
			input: "![alt\n](x.png)",
			want:  "![alt\n](x.png)",
		},
		"no images": {
			input: "# Title\n\nJust text.\n",
			want:  "# Title\n\nJust text.\n",
		},
	}

	r := rule.NewImageLinks()
	assert.Equal(t, rule.NameImageLinks, r.Name)

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, r.Apply(tc.input))
		})
	}
}

func TestDateToTitle(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		marker string
		input  string
		want   string
	}{
		"single line": {
			input: "keep **Jan 5, 2022**some preamble text## Ahoy, Digital Writers! rest",
			want:  "keep  rest",
		},
		"spans lines": {
			input: "head\n**Dec 25, 2021**\n\n# Title\n\nintro\n\n## Ahoy, Digital Writers!\n\nbody",
			want:  "head\n\n\nbody",
		},
		"marker never follows": {
			input: "**Jan 5, 2022** no marker here",
			want:  "**Jan 5, 2022** no marker here",
		},
		"marker before date": {
			input: "## Ahoy, Digital Writers! **Jan 5, 2022**",
			want:  "## Ahoy, Digital Writers! **Jan 5, 2022**",
		},
		"not a date stamp": {
			input: "**January 5, 2022** Ahoy, Digital Writers!",
			want:  "**January 5, 2022** Ahoy, Digital Writers!",
		},
		"stops at first marker": {
			input: "**Feb 1, 2023** a Ahoy, Digital Writers! b Ahoy, Digital Writers!",
			want:  " b Ahoy, Digital Writers!",
		},
		"custom marker": {
			marker: "## Hello (friends)",
			input:  "**Mar 10, 2020** intro ## Hello (friends) text",
			want:   " text",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := rule.NewDateToTitle(tc.marker)
			assert.Equal(t, rule.NameDateToTitle, r.Name)
			assert.Equal(t, tc.want, r.Apply(tc.input))
		})
	}
}

func TestAttribution(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		author string
		input  string
		want   string
	}{
		"removes to end of text": {
			input: "body\n\n_Nicolas Cole_\n\nbio\n* * *\n\nfooter\nmore",
			want:  "body\n\n",
		},
		"horizontal rule is not a stop": {
			input: "a _Nicolas Cole_ b\n* * *\nafter rule",
			want:  "a ",
		},
		"no horizontal rule": {
			input: "a _Nicolas Cole_ b\nfooter",
			want:  "a _Nicolas Cole_ b\nfooter",
		},
		"rule not at line start": {
			input: "a _Nicolas Cole_ b * * * c",
			want:  "a _Nicolas Cole_ b * * * c",
		},
		"no author": {
			input: "body\n* * *\nfooter",
			want:  "body\n* * *\nfooter",
		},
		"custom author": {
			author: "*Jane Doe*",
			input:  "text *Jane Doe*\n* * *\nend",
			want:   "text ",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := rule.NewAttribution(tc.author)
			assert.Equal(t, rule.NameAttribution, r.Name)
			assert.Equal(t, tc.want, r.Apply(tc.input))
		})
	}
}

func TestPhrases(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		phrases []string
		input   string
		want    string
	}{
		"mixed case": {
			phrases: rule.DefaultPhrases,
			input:   "Try TypeShare or typeshare or TYPESHARE.",
			want:    "Try  or  or .",
		},
		"ship 30 for 30": {
			phrases: rule.DefaultPhrases,
			input:   "Join Ship 30 for 30 today",
			want:    "Join  today",
		},
		"metacharacters are literal": {
			phrases: []string{"a.b", "(c)"},
			input:   "a.b axb (c) c",
			want:    " axb  c",
		},
		"empty phrases ignored": {
			phrases: []string{"", "foo"},
			input:   "foo bar",
			want:    " bar",
		},
		"no phrases": {
			phrases: nil,
			input:   "typeshare",
			want:    "typeshare",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := rule.NewPhrases(tc.phrases...)
			assert.Equal(t, rule.NamePhrases, r.Name)
			assert.Equal(t, tc.want, r.Apply(tc.input))
		})
	}
}

func TestRule_Matches(t *testing.T) {
	t.Parallel()

	r := rule.NewPhrases("typeshare")
	assert.True(t, r.Matches("TypeShare"))
	assert.False(t, r.Matches("type share"))

	noop := rule.NewPhrases()
	assert.False(t, noop.Matches("anything"))
	assert.Empty(t, noop.Pattern())
	assert.Equal(t, "phrases: ", noop.String())
}
