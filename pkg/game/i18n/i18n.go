// Package i18n serves the game's user-facing strings from embedded gettext
// catalogs. Code refers to strings by key; the active locale decides the text.
package i18n

import (
	"embed"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLocale is used when no locale is configured or the requested one
// has no catalog.
const DefaultLocale = "en"

//go:embed locales/*.po
var catalogs embed.FS

var (
	active   *gotext.Po
	fallback *gotext.Po
	current  string
)

func init() {
	po, err := load(DefaultLocale)
	if err != nil {
		log.Fatalf("i18n: %v", err)
	}
	active, fallback, current = po, po, DefaultLocale
}

func load(locale string) (*gotext.Po, error) {
	b, err := catalogs.ReadFile("locales/" + locale + ".po")
	if err != nil {
		return nil, fmt.Errorf("no catalog for locale %q", locale)
	}
	po := gotext.NewPo()
	po.Parse(b)
	return po, nil
}

// SetLocale switches the active catalog. Unknown locales leave the current
// one in place and return an error.
func SetLocale(locale string) error {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		locale = DefaultLocale
	}
	if locale == current {
		return nil
	}
	po, err := load(locale)
	if err != nil {
		return err
	}
	active, current = po, locale
	return nil
}

// Locale returns the active locale
func Locale() string {
	return current
}

// Locales lists every embedded locale
func Locales() []string {
	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(out)
	return out
}

// T translates key and formats it with args. Keys missing from the active
// catalog fall back to English, then to the key itself.
func T(key string, args ...interface{}) string {
	if active.Get(key) != key {
		return active.Get(key, args...)
	}
	return fallback.Get(key, args...)
}
