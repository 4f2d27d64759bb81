// Package secrets loads API keys from a directory of plain-text files.
// Each file is one secret: the filename is the key and the trimmed
// contents are the value. The only key noteza reads is gemini-api-key.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is where noteza looks for secret files.
const DefaultDir = ".secrets"

// GeminiAPIKey is the filename holding the Gemini credential.
const GeminiAPIKey = "gemini-api-key"

// Store maps secret names to their values.
type Store map[string]string

// Value returns the first non-empty value among keys.
func (s Store) Value(keys ...string) string {
	for _, key := range keys {
		if v := s[key]; v != "" {
			return v
		}
	}
	return ""
}

// Load reads all files in dir. A missing directory is not an error.
// Unreadable files produce a warning on warn but do not abort.
func Load(dir string, warn io.Writer) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}
	if warn == nil {
		warn = io.Discard
	}

	store := make(Store)
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
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			store[name] = value
		}
	}

	return store, nil
}
