package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Get(t *testing.T) {
	snap := NewSnapshot(map[string]map[string]string{
		"editor":    {"branding": "1"},
		"recordrtc": {"allowedtypes": "audio"},
	})

	v, ok := snap.Get("editor", "branding")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = snap.Get("editor", "missing")
	assert.False(t, ok)

	_, ok = snap.Get("missing", "branding")
	assert.False(t, ok)
}

func TestSnapshot_DeepCopies(t *testing.T) {
	source := map[string]map[string]string{
		"editor": {"branding": "1"},
	}
	snap := NewSnapshot(source)

	source["editor"]["branding"] = "0"
	source["injected"] = map[string]string{"x": "y"}

	v, ok := snap.Get("editor", "branding")
	require.True(t, ok)
	assert.Equal(t, "1", v, "snapshot must be isolated from the source map")

	_, ok = snap.Get("injected", "x")
	assert.False(t, ok)
}

func TestSnapshot_Namespaces(t *testing.T) {
	snap := NewSnapshot(map[string]map[string]string{
		"zebra":  {},
		"editor": {},
		"media":  {},
	})

	assert.Equal(t, []string{"editor", "media", "zebra"}, snap.Namespaces())
	assert.Empty(t, NewSnapshot(nil).Namespaces())
}

func TestNamespace_GetDefault(t *testing.T) {
	snap := NewSnapshot(map[string]map[string]string{
		"editor": {"present": "value", "empty": ""},
	})
	ns := NewNamespace(snap, "editor")

	assert.Equal(t, "editor", ns.Name())
	assert.Equal(t, "value", ns.GetDefault("present", "fallback"))
	assert.Equal(t, "", ns.GetDefault("empty", "fallback"),
		"a set-but-empty value wins over the default")
	assert.Equal(t, "fallback", ns.GetDefault("missing", "fallback"))
}

func TestNamespace_GetBool(t *testing.T) {
	snap := NewSnapshot(map[string]map[string]string{
		"flags": {
			"one":     "1",
			"true":    "true",
			"yes":     "YES",
			"on":      "on",
			"zero":    "0",
			"false":   "false",
			"off":     "off",
			"padded":  " true ",
			"garbage": "maybe",
		},
	})
	ns := NewNamespace(snap, "flags")

	for _, key := range []string{"one", "true", "yes", "on", "padded"} {
		assert.True(t, ns.GetBool(key, false), "key %q should be truthy", key)
	}
	for _, key := range []string{"zero", "false", "off"} {
		assert.False(t, ns.GetBool(key, true), "key %q should be falsy", key)
	}

	assert.True(t, ns.GetBool("garbage", true), "unparseable values fall back to the default")
	assert.False(t, ns.GetBool("missing", false))
	assert.True(t, ns.GetBool("missing", true))
}
