package pipeline_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/mdclean/pkg/pipeline"
	"github.com/macropower/mdclean/pkg/rule"
)

const fullDocument = `# How To Write Online

**Jan 5, 2022**

Welcome back to the newsletter, brought to you by Typeshare.

## Ahoy, Digital Writers!

Today we talk about headlines.

[![banner](https://cdn.example.com/banner.png)](https://example.com)

Headlines matter. Ship 30 for 30 teaches this.

![chart](https://cdn.example.com/chart.png)

That's it for today.

_Nicolas Cole_

Founder of things.

* * *

Unsubscribe here.
`

const cleanedDocument = `# How To Write Online



Today we talk about headlines.



Headlines matter.  teaches this.



That's it for today.

`

func TestPipeline_Rules(t *testing.T) {
	t.Parallel()

	p := pipeline.New()

	names := []string{}
	for _, r := range p.Rules() {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{
		rule.NameImageLinks,
		rule.NameDateToTitle,
		rule.NameAttribution,
		rule.NamePhrases,
	}, names)
}

func TestPipeline_Clean(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
		opts  []pipeline.Opt
	}{
		"identity on clean text": {
			input: "# Title\n\nSome *text* with a [link](http://x).\n\n---\n",
			want:  "# Title\n\nSome *text* with a [link](http://x).\n\n---\n",
		},
		"bare image": {
			input: "a ![alt](http://x/y.png) b",
			want:  "a  b",
		},
		"wrapped image": {
			input: "a [![alt](http://x/y.png)](http://link) b",
			want:  "a  b",
		},
		"date to title": {
			input: "before **Jan 5, 2022**some preamble text## Ahoy, Digital Writers! after",
			want:  "before  after",
		},
		"attribution": {
			input: "before _Nicolas Cole_ bio\n* * *\ntrailing content",
			want:  "before ",
		},
		"phrase in mixed case": {
			input: "by tYpEsHaRe",
			want:  "by ",
		},
		"full document": {
			input: fullDocument,
			want:  cleanedDocument,
		},
		"phrases run after anchors are consumed": {
			opts:  []pipeline.Opt{pipeline.WithPhrases("digital")},
			input: "**Jan 5, 2022** intro ## Ahoy, Digital Writers! body digital",
			want:  " body ",
		},
		"custom anchors": {
			opts: []pipeline.Opt{
				pipeline.WithMarker("START"),
				pipeline.WithAuthor("_Jane_"),
			},
			input: "**Apr 2, 2024** x START keep _Jane_\n* * *\ngone",
			want:  " keep ",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := pipeline.New(tc.opts...)
			assert.Equal(t, tc.want, p.Clean(tc.input))
		})
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	t.Parallel()

	p := pipeline.New()

	once := p.Clean(fullDocument)
	twice := p.Clean(once)

	assert.Equal(t, once, twice)
}

func TestPipeline_Logger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := pipeline.New(pipeline.WithLogger(logger))
	out := p.Clean("hello typeshare")
	require.Equal(t, "hello ", out)

	logs := buf.String()
	for _, name := range []string{
		rule.NameImageLinks,
		rule.NameDateToTitle,
		rule.NameAttribution,
		rule.NamePhrases,
	} {
		assert.Contains(t, logs, "rule="+name)
	}
	assert.Contains(t, logs, "bytes=9")
}
