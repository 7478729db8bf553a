package loader

import (
	"fmt"

	gotoml "github.com/pelletier/go-toml/v2"
)

// TomlLoader implements the Loader interface for TOML files.
type TomlLoader struct {
	source []byte
}

// NewTomlLoader creates a new TOML settings loader
func NewTomlLoader(source []byte) *TomlLoader {
	return &TomlLoader{source: source}
}

// Load parses the TOML source into a settings Document.
func (l *TomlLoader) Load() (*Document, error) {
	if len(l.source) == 0 {
		return nil, ErrNoSourceProvided
	}

	var raw map[string]any
	if err := gotoml.Unmarshal(l.source, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseToml, err)
	}

	return fromRaw(raw)
}
