package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	appName        = "mdclean"
	configFileName = "config.yaml"
)

// ErrConfigExists is returned by [WriteDefaultConfig] when the target file
// is already present.
var ErrConfigExists = errors.New("config file already exists")

// GetPath returns the default configuration file path,
// $XDG_CONFIG_HOME/mdclean/config.yaml, or the platform user config
// directory when XDG_CONFIG_HOME is unset. It returns an empty string when
// neither is known.
func GetPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		userDir, err := os.UserConfigDir()
		if err != nil {
			return ""
		}

		dir = userDir
	}

	return filepath.Join(dir, appName, configFileName)
}

// WriteDefaultConfig writes the embedded default config.yaml to path,
// creating parent directories. An existing file is never overwritten.
func WriteDefaultConfig(path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) //nolint:gosec // User-supplied config path.
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%s: %w", path, ErrConfigExists)
	}
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}

	_, err = f.Write(defaultConfigYAML)
	if err != nil {
		_ = f.Close() //nolint:errcheck // Report the write error.

		return fmt.Errorf("write config file: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// readConfigFile reads the file at path, rejecting anything that is not a
// regular file.
func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // Wrapped by the caller.
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file: %w", path, fs.ErrInvalid)
	}

	return os.ReadFile(path) //nolint:gosec,wrapcheck // User-supplied config path, wrapped by the caller.
}
