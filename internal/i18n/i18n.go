// Package i18n holds the translated labels used by the CLI and the viewer.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var localeFS embed.FS

// DefaultLanguage is used when no catalog exists for the requested language.
const DefaultLanguage = "en"

// Catalog looks up labels by key.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Load returns the catalog for lang, such as "de" or "de_DE.UTF-8". Unknown
// languages fall back to English.
func Load(lang string) (*Catalog, error) {
	lang = normalize(lang)
	data, err := localeFS.ReadFile("locales/" + lang + ".po")
	if err != nil {
		lang = DefaultLanguage
		data, err = localeFS.ReadFile("locales/" + lang + ".po")
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{lang: lang, po: po}, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(lang string) *Catalog {
	c, err := Load(lang)
	if err != nil {
		panic(err)
	}
	return c
}

// Language returns the language actually loaded.
func (c *Catalog) Language() string {
	return c.lang
}

// Get returns the translation for key formatted with vars. Keys without a
// translation are returned unchanged.
func (c *Catalog) Get(key string, vars ...interface{}) string {
	return c.po.Get(key, vars...)
}

func normalize(lang string) string {
	if i := strings.IndexAny(lang, "_.-"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || lang == "c" || lang == "posix" {
		return DefaultLanguage
	}
	return lang
}
