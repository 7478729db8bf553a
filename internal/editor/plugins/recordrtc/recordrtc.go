// Package recordrtc builds the settings for the audio/video recording
// plugin.
package recordrtc

import (
	"context"
	"strconv"
	"strings"

	"github.com/openlms/editorconf/internal/editor"
)

// Name is the plugin's response name and settings namespace.
const Name = "recordrtc"

// Setting keys and their defaults.
const (
	keyAllowedTypes   = "allowedtypes"
	keyAudioBitrate   = "audiobitrate"
	keyVideoBitrate   = "videobitrate"
	keyAudioTimeLimit = "audiotimelimit"
	keyVideoTimeLimit = "videotimelimit"
	keyScreenSize     = "screensize"
	keyMaxRecSize     = "maxrecsize"

	defaultAllowedTypes = "both"
	defaultAudioBitrate = "128000"
	defaultVideoBitrate = "2500000"
	defaultTimeLimit    = "600"
	defaultScreenWidth  = "1280"
	defaultScreenHeight = "720"
)

// Interface guard
var _ editor.SettingsBuilder = (*Builder)(nil)

// Builder produces the recording settings block.
type Builder struct{}

// New creates the builder.
func New() *Builder {
	return &Builder{}
}

// BuildSettings implements editor.SettingsBuilder. The stored screensize is
// a single "width,height" value and is split into two independent entries;
// maxrecsize comes from the upload limit collaborator, not from this
// plugin's own configuration.
func (b *Builder) BuildSettings(
	ctx context.Context,
	in editor.BuildInput,
) ([]editor.SettingEntry, error) {
	width, height := splitScreenSize(in.Config.GetDefault(keyScreenSize, ""))
	maxRecSize := in.Uploads.MaxUploadSize(ctx, in.Context)

	return []editor.SettingEntry{
		{Name: keyAllowedTypes, Value: in.Config.GetDefault(keyAllowedTypes, defaultAllowedTypes)},
		{Name: keyAudioBitrate, Value: in.Config.GetDefault(keyAudioBitrate, defaultAudioBitrate)},
		{Name: keyVideoBitrate, Value: in.Config.GetDefault(keyVideoBitrate, defaultVideoBitrate)},
		{Name: keyAudioTimeLimit, Value: in.Config.GetDefault(keyAudioTimeLimit, defaultTimeLimit)},
		{Name: keyVideoTimeLimit, Value: in.Config.GetDefault(keyVideoTimeLimit, defaultTimeLimit)},
		{Name: "videoscreenwidth", Value: width},
		{Name: "videoscreenheight", Value: height},
		{Name: keyMaxRecSize, Value: strconv.FormatInt(maxRecSize, 10)},
	}, nil
}

// splitScreenSize parses a "width,height" string. Malformed or partial
// values fall back to the defaults rather than failing the build.
func splitScreenSize(raw string) (width, height string) {
	width, height = defaultScreenWidth, defaultScreenHeight

	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return width, height
	}

	w := strings.TrimSpace(parts[0])
	h := strings.TrimSpace(parts[1])
	if w == "" || h == "" {
		return width, height
	}
	return w, h
}
