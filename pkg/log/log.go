// Package log builds the [slog.Handler]s used by the mdclean CLI.
//
// The "text" format is for people at a terminal and is rendered by
// [github.com/charmbracelet/log]. "logfmt" and "json" are for machines and
// use the standard library handlers. Debug level adds timestamps and source
// locations to every format.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	charmlog "github.com/charmbracelet/log"
)

// Format selects how log records are rendered.
type Format string

const (
	FormatText   Format = "text"
	FormatLogfmt Format = "logfmt"
	FormatJSON   Format = "json"

	// debugTimeFormat is the timestamp layout of the text format at debug
	// level. Other levels print no timestamp.
	debugTimeFormat = "15:04:05.000"
	textPrefix      = "mdclean"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")

	// AllFormats lists the accepted --log-format values.
	AllFormats = []string{string(FormatText), string(FormatLogfmt), string(FormatJSON)}
	// AllLevels lists the accepted --log-level values, most severe first.
	AllLevels = []string{"error", "warn", "info", "debug"}

	levels = map[string]slog.Level{
		"error":   slog.LevelError,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"info":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
	}
)

// ParseLevel parses a level name, ignoring case and surrounding space.
func ParseLevel(s string) (slog.Level, error) {
	lvl, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, s)
	}

	return lvl, nil
}

// ParseFormat parses a format name, ignoring case and surrounding space.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatLogfmt, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, s)
}

// HandlerFromFlags parses the --log-level and --log-format values and
// returns a handler writing to w.
func HandlerFromFlags(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	f, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, f), nil
}

// NewHandler returns a handler for the given level and format. Unknown
// formats fall back to [FormatText].
func NewHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	debug := level <= slog.LevelDebug

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)
	case FormatLogfmt:
		return slog.NewTextHandler(w, opts)
	default:
		return newTextHandler(w, level, debug)
	}
}

// newTextHandler renders records for a terminal. Colors follow the writer
// itself, so output redirected to a file or buffer is plain.
func newTextHandler(w io.Writer, level slog.Level, debug bool) slog.Handler {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level), //nolint:gosec // G115: bounded by ParseLevel.
		Prefix:          textPrefix,
		ReportTimestamp: debug,
		TimeFormat:      debugTimeFormat,
		ReportCaller:    debug,
	})
	logger.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())

	return logger
}
