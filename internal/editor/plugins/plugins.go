// Package plugins assembles the static editor plugin registry. Registration
// order here is the plugin order in every configuration response.
package plugins

import (
	"context"
	"strings"

	"github.com/openlms/editorconf/internal/editor"
	"github.com/openlms/editorconf/internal/editor/plugins/aiplacement"
	"github.com/openlms/editorconf/internal/editor/plugins/equation"
	"github.com/openlms/editorconf/internal/editor/plugins/premium"
	"github.com/openlms/editorconf/internal/editor/plugins/recordrtc"
	"github.com/openlms/editorconf/internal/settings"
)

// Names of the plugins that contribute no settings of their own. They still
// produce a (empty) block when visible.
const (
	NameAccessibilityChecker = "accessibilitychecker"
	NameH5P                  = "h5p"
	NameHTML                 = "html"
	NameLink                 = "link"
	NameMedia                = "media"
)

// noSettings is the builder for plugins without configuration keys.
var noSettings = editor.SettingsBuilderFunc(
	func(context.Context, editor.BuildInput) ([]editor.SettingEntry, error) {
		return []editor.SettingEntry{}, nil
	},
)

// DefaultRegistry returns the registry of all shipped plugins in their
// fixed registration order.
func DefaultRegistry() editor.Registry {
	return editor.Registry{
		{Name: NameAccessibilityChecker, Builder: noSettings},
		{Name: aiplacement.Name, Capability: editor.CapGenerateAI, Builder: aiplacement.New()},
		{Name: equation.Name, Builder: equation.New()},
		{Name: NameH5P, Capability: editor.CapEmbedH5P, Builder: noSettings},
		{Name: NameHTML, Builder: noSettings},
		{Name: NameLink, Builder: noSettings},
		{Name: NameMedia, Builder: noSettings},
		{Name: premium.Name, Builder: premium.New()},
		{Name: recordrtc.Name, Builder: recordrtc.New()},
	}
}

// Interface guard
var _ editor.StatusProvider = (*Status)(nil)

// Status reports plugin enablement from the global settings namespace. A
// plugin is enabled unless it is listed in the editor.disabled_plugins
// comma-separated list.
type Status struct {
	store settings.Store
}

// NewStatus creates a settings-backed status provider.
func NewStatus(store settings.Store) *Status {
	return &Status{store: store}
}

// Enabled implements editor.StatusProvider.
func (s *Status) Enabled(plugin string) bool {
	raw, ok := s.store.Get(editor.GlobalNamespace, editor.KeyDisabledPlugins)
	if !ok || raw == "" {
		return true
	}
	for _, name := range strings.Split(raw, ",") {
		if strings.TrimSpace(name) == plugin {
			return false
		}
	}
	return true
}
