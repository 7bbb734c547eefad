// Package yaml wraps [github.com/goccy/go-yaml] for reading and writing the
// mdclean configuration, and validates decoded documents against a JSON
// schema. Decode and validation failures are reported as [*Error] values
// that point at the offending YAML path or token.
package yaml
