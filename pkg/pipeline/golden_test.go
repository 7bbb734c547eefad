package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/mdclean/pkg/mdtest"
	"github.com/macropower/mdclean/pkg/pipeline"
)

func TestPipeline_CleanFixtures(t *testing.T) {
	t.Parallel()

	names := mdtest.Fixtures(t)
	require.NotEmpty(t, names)

	p := pipeline.New()

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := p.Clean(mdtest.ReadInput(t, name))
			mdtest.AssertGolden(t, name, got)

			// Cleaning is idempotent.
			assert.Equal(t, got, p.Clean(got))
		})
	}
}
