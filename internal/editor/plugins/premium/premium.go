// Package premium builds the settings for the premium features plugin.
package premium

import (
	"context"

	"github.com/openlms/editorconf/internal/editor"
)

// Name is the plugin's response name and settings namespace.
const Name = "premium"

const keyPremiumPlugins = "premiumplugins"

// Interface guard
var _ editor.SettingsBuilder = (*Builder)(nil)

// Builder produces the premium settings block.
type Builder struct{}

// New creates the builder.
func New() *Builder {
	return &Builder{}
}

// BuildSettings implements editor.SettingsBuilder. The value is the
// comma-separated list of licensed premium plugin names, empty when none
// are licensed.
func (b *Builder) BuildSettings(
	_ context.Context,
	in editor.BuildInput,
) ([]editor.SettingEntry, error) {
	return []editor.SettingEntry{
		{Name: keyPremiumPlugins, Value: in.Config.GetDefault(keyPremiumPlugins, "")},
	}, nil
}
