package appcore

import (
	"embed"
	"fmt"

	"codeberg.org/tslocum/gotext"
	"golang.org/x/text/language"
)

//go:embed locales
var localeFS embed.FS

// Languages with a catalog in locales. English is the source language.
var supportedLanguages = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// loadCatalog returns the translations for the best match of tag, or nil
// when strings should be shown untranslated.
func loadCatalog(tag language.Tag) (*gotext.Po, error) {
	_, i, confidence := languageMatcher.Match(tag)
	if confidence == language.No || i == 0 {
		return nil, nil
	}

	base, _ := supportedLanguages[i].Base()
	buf, err := localeFS.ReadFile("locales/" + base.String() + ".po")
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog for %s: %w", tag, err)
	}
	po := gotext.NewPo()
	po.Parse(buf)
	return po, nil
}
