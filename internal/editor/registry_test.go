package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopBuilder() SettingsBuilder {
	return SettingsBuilderFunc(func(context.Context, BuildInput) ([]SettingEntry, error) {
		return []SettingEntry{}, nil
	})
}

func TestRegistry_Validate(t *testing.T) {
	tests := []struct {
		name     string
		registry Registry
		wantErrs []error
	}{
		{
			name:     "empty registry is valid",
			registry: Registry{},
		},
		{
			name: "valid registry",
			registry: Registry{
				{Name: "alpha", Builder: noopBuilder()},
				{Name: "beta", Capability: CapGenerateAI, Builder: noopBuilder()},
			},
		},
		{
			name: "empty name",
			registry: Registry{
				{Name: "", Builder: noopBuilder()},
			},
			wantErrs: []error{ErrEmptyPluginName},
		},
		{
			name: "duplicate name",
			registry: Registry{
				{Name: "alpha", Builder: noopBuilder()},
				{Name: "alpha", Builder: noopBuilder()},
			},
			wantErrs: []error{ErrDuplicatePlugin},
		},
		{
			name: "nil builder",
			registry: Registry{
				{Name: "alpha", Builder: nil},
			},
			wantErrs: []error{ErrNilSettingsBuilder},
		},
		{
			name: "multiple failures reported together",
			registry: Registry{
				{Name: "", Builder: noopBuilder()},
				{Name: "alpha", Builder: nil},
				{Name: "alpha", Builder: noopBuilder()},
			},
			wantErrs: []error{ErrEmptyPluginName, ErrNilSettingsBuilder, ErrDuplicatePlugin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.registry.Validate()
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestRegistry_Names(t *testing.T) {
	registry := Registry{
		{Name: "zeta", Builder: noopBuilder()},
		{Name: "alpha", Builder: noopBuilder()},
		{Name: "mid", Builder: noopBuilder()},
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, registry.Names(),
		"names must preserve registration order, not sort")
}

func TestSettingsBuilderFunc(t *testing.T) {
	called := false
	builder := SettingsBuilderFunc(func(context.Context, BuildInput) ([]SettingEntry, error) {
		called = true
		return []SettingEntry{{Name: "k", Value: "v"}}, nil
	})

	entries, err := builder.BuildSettings(t.Context(), BuildInput{})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []SettingEntry{{Name: "k", Value: "v"}}, entries)
}
