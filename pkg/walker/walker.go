package walker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aymanbagabas/go-udiff"
)

// DefaultExtension is the extension of files cleaned by default.
const DefaultExtension = ".md"

var (
	// ErrNotDirectory is returned when the target path is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrInvalidUTF8 is returned when a file is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// Cleaner transforms document text.
type Cleaner interface {
	Clean(text string) string
}

// Result describes what happened to a single file.
type Result struct {
	// Path is the file path, joined with the walker's directory.
	Path string
	// Diff is a unified diff of the change. It is only set in dry-run mode.
	Diff string
	// Before and After are the content sizes in bytes.
	Before  int
	After   int
	Changed bool
	// Written reports whether the file was rewritten.
	Written bool
}

// Removed returns the number of bytes removed from the file.
func (r Result) Removed() int {
	return r.Before - r.After
}

// Walker cleans the files of one directory.
type Walker struct {
	cleaner Cleaner
	logger  *slog.Logger
	dir     string
	ext     string
	dryRun  bool
}

// Opt configures a [Walker].
type Opt func(w *Walker)

// WithExtension sets the file name suffix to match. Matching is
// case-sensitive.
func WithExtension(ext string) Opt {
	return func(w *Walker) {
		if ext != "" {
			w.ext = ext
		}
	}
}

// WithDryRun disables writing and records a diff for each changed file.
func WithDryRun(dryRun bool) Opt {
	return func(w *Walker) {
		w.dryRun = dryRun
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Opt {
	return func(w *Walker) {
		w.logger = logger
	}
}

// New creates a new [Walker] for dir.
func New(dir string, cleaner Cleaner, opts ...Opt) *Walker {
	w := &Walker{
		cleaner: cleaner,
		logger:  slog.Default(),
		dir:     dir,
		ext:     DefaultExtension,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Dir returns the directory being cleaned.
func (w *Walker) Dir() string {
	return w.dir
}

// Run cleans every matching file and returns one [Result] per file, in name
// order. It stops at the first error, returning the results gathered so far.
// The context is checked between files.
func (w *Walker) Run(ctx context.Context) ([]Result, error) {
	root, err := w.openRoot()
	if err != nil {
		return nil, err
	}
	defer root.Close() //nolint:errcheck // Read-only handle.

	names, err := w.list(root)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("found files",
		slog.String("dir", w.dir),
		slog.Int("count", len(names)),
	)

	results := make([]Result, 0, len(names))

	for _, name := range names {
		err := ctx.Err()
		if err != nil {
			return results, fmt.Errorf("clean %s: %w", w.dir, err)
		}

		res, err := w.cleanFile(root, name, true)
		if err != nil {
			return results, err
		}

		results = append(results, res)
	}

	return results, nil
}

// openRoot opens the directory as an [os.Root], so that file names can never
// resolve outside of it.
func (w *Walker) openRoot() (*os.Root, error) {
	info, err := os.Stat(w.dir)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", w.dir, ErrNotDirectory)
	}

	root, err := os.OpenRoot(w.dir)
	if err != nil {
		return nil, fmt.Errorf("open directory %q: %w", w.dir, err)
	}

	return root, nil
}

// list returns the sorted names of the regular files in the root directory
// that end with the configured extension.
func (w *Walker) list(root *os.Root) ([]string, error) {
	dir, err := root.Open(".")
	if err != nil {
		return nil, fmt.Errorf("open directory %q: %w", w.dir, err)
	}
	defer dir.Close() //nolint:errcheck // Read-only handle.

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", w.dir, err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !w.matches(entry.Name()) {
			continue
		}

		names = append(names, entry.Name())
	}

	slices.Sort(names)

	return names, nil
}

func (w *Walker) matches(name string) bool {
	return strings.HasSuffix(name, w.ext)
}

// cleanFile reads, cleans and rewrites a single file. With writeUnchanged
// unset, files whose content did not change are left alone.
func (w *Walker) cleanFile(root *os.Root, name string, writeUnchanged bool) (Result, error) {
	path := filepath.Join(w.dir, name)

	content, err := readFile(root, name)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.ValidString(content) {
		return Result{}, fmt.Errorf("read %s: %w", path, ErrInvalidUTF8)
	}

	cleaned := w.cleaner.Clean(content)

	res := Result{
		Path:    path,
		Before:  len(content),
		After:   len(cleaned),
		Changed: cleaned != content,
	}

	switch {
	case w.dryRun:
		if res.Changed {
			res.Diff = udiff.Unified(path, path, content, cleaned)
		}

	case res.Changed || writeUnchanged:
		err = writeFile(root, name, cleaned)
		if err != nil {
			return res, fmt.Errorf("write %s: %w", path, err)
		}

		res.Written = true
	}

	w.logger.Info("cleaned file",
		slog.String("path", path),
		slog.Bool("changed", res.Changed),
		slog.Int("removed", res.Removed()),
		slog.Bool("dry_run", w.dryRun),
	)

	return res, nil
}

func readFile(root *os.Root, name string) (string, error) {
	f, err := root.Open(name)
	if err != nil {
		return "", err //nolint:wrapcheck // Wrapped by the caller.
	}
	defer f.Close() //nolint:errcheck // Read-only handle.

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err //nolint:wrapcheck // Wrapped by the caller.
	}

	return string(b), nil
}

// writeFile truncates and rewrites an existing file, keeping its mode.
func writeFile(root *os.Root, name, content string) error {
	f, err := root.OpenFile(name, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err //nolint:wrapcheck // Wrapped by the caller.
	}

	_, err = io.WriteString(f, content)
	if err != nil {
		_ = f.Close() //nolint:errcheck // Report the write error.

		return err //nolint:wrapcheck // Wrapped by the caller.
	}

	return f.Close() //nolint:wrapcheck // Wrapped by the caller.
}
