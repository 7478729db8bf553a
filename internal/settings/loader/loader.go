// Package loader reads editor settings documents from TOML or YAML files.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Loader parses a settings document from raw bytes.
type Loader interface {
	// Load parses the source and returns the settings document.
	Load() (*Document, error)
}

// LoaderFunc constructs a Loader for a byte slice.
type LoaderFunc func([]byte) Loader

// NewLoaderFromBytes creates a Loader for the provided bytes.
func NewLoaderFromBytes(data []byte, lodFunc LoaderFunc) (Loader, error) {
	if len(data) == 0 {
		return nil, ErrNoSourceProvided
	}
	return lodFunc(data), nil
}

// NewLoaderFromReader creates a Loader from an io.Reader.
func NewLoaderFromReader(reader io.Reader, lodFunc LoaderFunc) (Loader, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings data from reader: %w", err)
	}
	return NewLoaderFromBytes(data, lodFunc)
}

// NewLoaderFromFilePath creates a Loader for a file, picking the parser from
// the file extension.
func NewLoaderFromFilePath(filePath string) (Loader, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("settings file does not exist: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file '%s': %w", filePath, err)
	}

	switch ext := filepath.Ext(filePath); ext {
	case ".toml":
		return NewTomlLoader(data), nil
	case ".yaml", ".yml":
		return NewYamlLoader(data), nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, ext)
	}
}

// LoadDocument is a convenience wrapper that loads and validates a settings
// document from a file path.
func LoadDocument(filePath string) (*Document, error) {
	l, err := NewLoaderFromFilePath(filePath)
	if err != nil {
		return nil, err
	}

	doc, err := l.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadSettings, err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToValidateSettings, err)
	}

	return doc, nil
}
