// Package walker applies a [Cleaner] to every matching file directly inside
// a directory, rewriting each file in place.
//
// Enumeration is not recursive: subdirectories are skipped, including ones
// whose names carry the extension. Files are processed one at a time in
// name order, and the first I/O error stops the run.
package walker
