// Package languages provides the file-backed language catalog.
package languages

import (
	"context"

	"github.com/openlms/editorconf/internal/editor"
	"github.com/openlms/editorconf/internal/settings/loader"
)

// Interface guard
var _ editor.LanguageCatalog = (*Catalog)(nil)

// Catalog lists the installed display languages in declaration order.
type Catalog struct {
	langs []editor.InstalledLanguage
}

// NewCatalog builds a catalog from the settings document declarations.
func NewCatalog(decls []loader.Language) *Catalog {
	langs := make([]editor.InstalledLanguage, 0, len(decls))
	for _, d := range decls {
		langs = append(langs, editor.InstalledLanguage{Lang: d.Code, Name: d.Name})
	}
	return &Catalog{langs: langs}
}

// InstalledTranslations implements editor.LanguageCatalog. The returned
// slice is a copy; callers may not mutate catalog state.
func (c *Catalog) InstalledTranslations(_ context.Context) ([]editor.InstalledLanguage, error) {
	return append([]editor.InstalledLanguage{}, c.langs...), nil
}
