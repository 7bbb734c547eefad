package mdtest

import (
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const inputExt = ".md"

var updateGolden = flag.Bool("update-golden", false, "update golden files")

// Fixtures returns the names of all inputs in testdata/input, sorted.
func Fixtures(t *testing.T) []string {
	t.Helper()

	entries, err := os.ReadDir(filepath.Join("testdata", "input"))
	require.NoError(t, err)

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), inputExt) {
			continue
		}

		names = append(names, strings.TrimSuffix(e.Name(), inputExt))
	}

	slices.Sort(names)

	return names
}

// ReadInput returns the content of the named input fixture.
func ReadInput(t *testing.T, name string) string {
	t.Helper()

	b, err := os.ReadFile(InputPath(name)) //nolint:gosec // Path constructed from test name.
	require.NoError(t, err)

	return string(b)
}

// AssertGolden compares got against the named golden file.
// Use -update-golden flag to regenerate golden files.
func AssertGolden(t *testing.T, name, got string) {
	t.Helper()

	goldenPath := GoldenPath(name)

	if *updateGolden {
		err := os.MkdirAll(filepath.Dir(goldenPath), 0o700)
		require.NoError(t, err)

		err = os.WriteFile(goldenPath, []byte(got), 0o600)
		require.NoError(t, err)

		return
	}

	want, err := os.ReadFile(goldenPath) //nolint:gosec // Path constructed from test name.
	require.NoError(t, err, "golden file not found, run with -update-golden to create")
	require.Equal(t, string(want), got)
}

// InputPath returns the path to an input fixture.
func InputPath(name string) string {
	return filepath.Join("testdata", "input", name+inputExt)
}

// GoldenPath returns the path to a golden file.
func GoldenPath(name string) string {
	return filepath.Join("testdata", "golden", name+".golden")
}
