package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YamlLoader implements the Loader interface for YAML files.
type YamlLoader struct {
	source []byte
}

// NewYamlLoader creates a new YAML settings loader
func NewYamlLoader(source []byte) *YamlLoader {
	return &YamlLoader{source: source}
}

// Load parses the YAML source into a settings Document.
func (l *YamlLoader) Load() (*Document, error) {
	if len(l.source) == 0 {
		return nil, ErrNoSourceProvided
	}

	var raw map[string]any
	if err := yaml.Unmarshal(l.source, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseYaml, err)
	}

	return fromRaw(raw)
}
