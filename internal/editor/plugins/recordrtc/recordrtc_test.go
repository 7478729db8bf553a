package recordrtc

import (
	"testing"

	"github.com/openlms/editorconf/internal/editor"
	"github.com/openlms/editorconf/internal/editor/mocks"
	"github.com/openlms/editorconf/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildWith(t *testing.T, config map[string]string, maxUpload int64) []editor.SettingEntry {
	t.Helper()

	uploads := &mocks.MockUploadLimitService{}
	uploads.On("MaxUploadSize", mock.Anything, mock.Anything).Return(maxUpload)

	store := settings.NewSnapshot(map[string]map[string]string{Name: config})
	entries, err := New().BuildSettings(t.Context(), editor.BuildInput{
		Context: editor.Context{Type: editor.ContextCourse, ID: 1},
		Config:  settings.NewNamespace(store, Name),
		Uploads: uploads,
	})
	require.NoError(t, err)
	return entries
}

func settingValue(t *testing.T, entries []editor.SettingEntry, name string) string {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e.Value
		}
	}
	t.Fatalf("setting %q not found", name)
	return ""
}

func TestBuildSettings_Defaults(t *testing.T) {
	entries := buildWith(t, nil, 8388608)

	assert.Equal(t, []editor.SettingEntry{
		{Name: "allowedtypes", Value: "both"},
		{Name: "audiobitrate", Value: "128000"},
		{Name: "videobitrate", Value: "2500000"},
		{Name: "audiotimelimit", Value: "600"},
		{Name: "videotimelimit", Value: "600"},
		{Name: "videoscreenwidth", Value: "1280"},
		{Name: "videoscreenheight", Value: "720"},
		{Name: "maxrecsize", Value: "8388608"},
	}, entries)
}

func TestBuildSettings_ScreenSize(t *testing.T) {
	tests := []struct {
		name       string
		screensize string
		wantWidth  string
		wantHeight string
	}{
		{"configured", "1920,1080", "1920", "1080"},
		{"with spaces", " 640 , 480 ", "640", "480"},
		{"missing height falls back", "1920", "1280", "720"},
		{"empty part falls back", "1920,", "1280", "720"},
		{"empty value falls back", "", "1280", "720"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := map[string]string{}
			if tt.screensize != "" {
				config["screensize"] = tt.screensize
			}

			entries := buildWith(t, config, 1024)
			assert.Equal(t, tt.wantWidth, settingValue(t, entries, "videoscreenwidth"))
			assert.Equal(t, tt.wantHeight, settingValue(t, entries, "videoscreenheight"))
		})
	}
}

func TestBuildSettings_MaxRecSizeFromUploadLimit(t *testing.T) {
	entries := buildWith(t, nil, 1048576)
	assert.Equal(t, "1048576", settingValue(t, entries, "maxrecsize"),
		"maxrecsize comes from the upload limit service, not plugin config")
}

func TestBuildSettings_ConfiguredBitrates(t *testing.T) {
	entries := buildWith(t, map[string]string{
		"allowedtypes": "audio",
		"audiobitrate": "64000",
	}, 1024)

	assert.Equal(t, "audio", settingValue(t, entries, "allowedtypes"))
	assert.Equal(t, "64000", settingValue(t, entries, "audiobitrate"))
	assert.Equal(t, "2500000", settingValue(t, entries, "videobitrate"))
}
