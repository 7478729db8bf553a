package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/openlms/editorconf/internal/settings"
)

// BuildInput carries everything a settings builder may read: the resolved
// context, the requesting user, the plugin's own configuration namespace,
// and the upload limit collaborator. Builders must not reach outside their
// own namespace.
type BuildInput struct {
	Context Context
	User    User
	Config  settings.Namespace
	Uploads UploadLimitService
}

// SettingsBuilder produces the ordered setting entries for one plugin.
// Builders substitute documented defaults for missing optional keys instead
// of failing.
type SettingsBuilder interface {
	BuildSettings(ctx context.Context, in BuildInput) ([]SettingEntry, error)
}

// SettingsBuilderFunc adapts a plain function to the SettingsBuilder
// interface.
type SettingsBuilderFunc func(ctx context.Context, in BuildInput) ([]SettingEntry, error)

func (f SettingsBuilderFunc) BuildSettings(ctx context.Context, in BuildInput) ([]SettingEntry, error) {
	return f(ctx, in)
}

// Descriptor registers one plugin: its response name (also its settings
// namespace), the capability that gates it, and its builder. An empty
// capability means the plugin is visible to every user that can use the
// editor at all.
type Descriptor struct {
	Name       string
	Capability Capability
	Builder    SettingsBuilder
}

// Registry is the static, ordered plugin registration list. Order here is
// the plugin order in every response.
type Registry []Descriptor

// Validate checks the registry invariants: non-empty unique names, builders
// present.
func (r Registry) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(r))
	for i, d := range r {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("%w: descriptor at index %d", ErrEmptyPluginName, i))
			continue
		}
		if seen[d.Name] {
			errs = append(errs, fmt.Errorf("%w: '%s'", ErrDuplicatePlugin, d.Name))
			continue
		}
		seen[d.Name] = true

		if d.Builder == nil {
			errs = append(errs, fmt.Errorf("%w: plugin '%s'", ErrNilSettingsBuilder, d.Name))
		}
	}

	return errors.Join(errs...)
}

// Names returns the registered plugin names in registration order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for _, d := range r {
		names = append(names, d.Name)
	}
	return names
}
