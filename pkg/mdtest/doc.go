// Package mdtest provides fixture helpers for testing Markdown cleaning.
//
// Fixtures live in a testdata directory next to the test: inputs under
// testdata/input/<name>.md and expected output under
// testdata/golden/<name>.golden.
//
//	func TestCleanFixtures(t *testing.T) {
//	    t.Parallel()
//
//	    for _, name := range mdtest.Fixtures(t) {
//	        t.Run(name, func(t *testing.T) {
//	            t.Parallel()
//
//	            got := cleaner.Clean(mdtest.ReadInput(t, name))
//	            mdtest.AssertGolden(t, name, got)
//	        })
//	    }
//	}
//
// Run the tests with -update-golden to regenerate the golden files.
package mdtest
