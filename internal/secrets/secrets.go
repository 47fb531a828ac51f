// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the NCBI API key. The environment variable
// PUBMED_API_KEY takes precedence; a directory of plain-text key files is
// the fallback, where the filename is the key name and the file contents
// (trimmed) are the value.
//
// Supported key file: pubmed-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvAPIKey is the environment variable holding the NCBI API key.
const EnvAPIKey = "PUBMED_API_KEY"

// DefaultDir is the default secrets directory.
const DefaultDir = ".secrets"

const apiKeyFile = "pubmed-api-key"

// ConfigError reports missing or unusable configuration. It halts the run
// before any network activity.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// APIKey returns the NCBI API key from the environment, falling back to
// dir/pubmed-api-key. When neither source provides a key it returns a
// *ConfigError naming PUBMED_API_KEY.
func APIKey(dir string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		return v, nil
	}

	keys, err := Load(dir)
	if err != nil {
		return "", err
	}
	if v := keys[apiKeyFile]; v != "" {
		return v, nil
	}

	return "", &ConfigError{
		Msg: fmt.Sprintf("%s is not set: export it or place the key in %s",
			EnvAPIKey, filepath.Join(dir, apiKeyFile)),
	}
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	keys := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			keys[name] = value
		}
	}

	return keys, nil
}
