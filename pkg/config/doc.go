// Package config provides configuration management for mdclean.
//
// It wraps the [pipeline.Config] and [walker.Config] types to provide a
// single API for loading, validating, and writing the configuration file in
// YAML format.
package config
