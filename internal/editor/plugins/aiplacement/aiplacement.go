// Package aiplacement builds the settings for the AI placement plugin.
package aiplacement

import (
	"context"

	"github.com/openlms/editorconf/internal/editor"
)

// Name is the plugin's response name and settings namespace.
const Name = "aiplacement"

// Setting keys and defaults. AI action availability comes from the plugin's
// own namespace; the provider subsystem writing those keys is external.
const (
	keyPolicyAgreed  = "policyagreed"
	keyGenerateText  = "generate_text"
	keyGenerateImage = "generate_image"
)

// Interface guard
var _ editor.SettingsBuilder = (*Builder)(nil)

// Builder produces the AI placement settings block.
type Builder struct{}

// New creates the builder.
func New() *Builder {
	return &Builder{}
}

// BuildSettings implements editor.SettingsBuilder.
func (b *Builder) BuildSettings(
	_ context.Context,
	in editor.BuildInput,
) ([]editor.SettingEntry, error) {
	return []editor.SettingEntry{
		{Name: keyPolicyAgreed, Value: in.Config.GetDefault(keyPolicyAgreed, "0")},
		{Name: keyGenerateText, Value: in.Config.GetDefault(keyGenerateText, "1")},
		{Name: keyGenerateImage, Value: in.Config.GetDefault(keyGenerateImage, "1")},
	}, nil
}
