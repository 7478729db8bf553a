package languages

import (
	"testing"

	"github.com/openlms/editorconf/internal/editor"
	"github.com/openlms/editorconf/internal/settings/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_InstalledTranslations(t *testing.T) {
	catalog := NewCatalog([]loader.Language{
		{Code: "en", Name: "English"},
		{Code: "de", Name: "Deutsch"},
		{Code: "pt_br", Name: "Português - Brasil"},
	})

	langs, err := catalog.InstalledTranslations(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []editor.InstalledLanguage{
		{Lang: "en", Name: "English"},
		{Lang: "de", Name: "Deutsch"},
		{Lang: "pt_br", Name: "Português - Brasil"},
	}, langs, "declaration order must be preserved")
}

func TestCatalog_Empty(t *testing.T) {
	catalog := NewCatalog(nil)

	langs, err := catalog.InstalledTranslations(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, langs)
	assert.Empty(t, langs)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	catalog := NewCatalog([]loader.Language{{Code: "en", Name: "English"}})

	first, err := catalog.InstalledTranslations(t.Context())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := catalog.InstalledTranslations(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "English", second[0].Name, "callers must not see each other's mutations")
}
