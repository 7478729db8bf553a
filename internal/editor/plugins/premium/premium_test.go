package premium

import (
	"testing"

	"github.com/openlms/editorconf/internal/editor"
	"github.com/openlms/editorconf/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSettings(t *testing.T) {
	tests := []struct {
		name   string
		config map[string]string
		want   string
	}{
		{"unlicensed", nil, ""},
		{"licensed list", map[string]string{"premiumplugins": "casechanger,exportpdf"}, "casechanger,exportpdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := settings.NewSnapshot(map[string]map[string]string{Name: tt.config})
			entries, err := New().BuildSettings(t.Context(), editor.BuildInput{
				Config: settings.NewNamespace(store, Name),
			})
			require.NoError(t, err)

			assert.Equal(t, []editor.SettingEntry{
				{Name: "premiumplugins", Value: tt.want},
			}, entries)
		})
	}
}
