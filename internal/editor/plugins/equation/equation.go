// Package equation builds the settings for the equation editor plugin. The
// symbol library is a nested group structure serialized as a single
// JSON-encoded string value.
package equation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openlms/editorconf/internal/editor"
)

// Name is the plugin's response name and settings namespace.
const Name = "equation"

const keyTexFilter = "texfilter"

// libraryGroup is one tab of the symbol picker.
type libraryGroup struct {
	Key       string   `json:"key"`
	GroupName string   `json:"groupname"`
	Elements  []string `json:"elements"`
}

// groupDefaults defines the four shipped library groups. Administrators
// override a group's elements with a comma-separated list under its config
// key.
var groupDefaults = []struct {
	key      string
	name     string
	elements string
}{
	{"group1", "Greek symbols", `\alpha,\beta,\gamma,\delta,\epsilon,\theta,\lambda,\mu,\pi,\sigma,\omega`},
	{"group2", "Operators", `\sum,\prod,\int,\oint,\lim,\pm,\times,\div,\cdot,\leq,\geq,\neq`},
	{"group3", "Arrows", `\leftarrow,\rightarrow,\Leftarrow,\Rightarrow,\leftrightarrow,\mapsto`},
	{"group4", "Advanced", `\frac{a}{b},\sqrt{x},\sqrt[n]{x},\binom{n}{k},\vec{a},\overline{x}`},
}

// Interface guard
var _ editor.SettingsBuilder = (*Builder)(nil)

// Builder produces the equation settings block.
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
	groups := make([]libraryGroup, 0, len(groupDefaults))
	for _, g := range groupDefaults {
		raw := in.Config.GetDefault("library"+g.key, g.elements)
		groups = append(groups, libraryGroup{
			Key:       g.key,
			GroupName: g.name,
			Elements:  splitElements(raw),
		})
	}

	encoded, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to encode equation libraries: %w", err)
	}

	return []editor.SettingEntry{
		{Name: keyTexFilter, Value: in.Config.GetDefault(keyTexFilter, "0")},
		{Name: "libraries", Value: string(encoded)},
	}, nil
}

func splitElements(raw string) []string {
	parts := strings.Split(raw, ",")
	elements := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			elements = append(elements, trimmed)
		}
	}
	return elements
}
