// Package i18n supplies localized default strings for widgets that ship
// with built-in labels, such as dialog buttons. Applications override the
// labels per widget; these are only the fallbacks.
package i18n

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locale/*.toml
var localeFS embed.FS

var (
	once      sync.Once
	bundle    *goi18n.Bundle
	mu        sync.RWMutex
	localizer *goi18n.Localizer
)

func setup() {
	once.Do(func() {
		bundle = goi18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		for _, name := range []string{"locale/active.en.toml", "locale/active.it.toml"} {
			data, err := localeFS.ReadFile(name)
			if err != nil {
				continue
			}
			bundle.MustParseMessageFileBytes(data, name)
		}
		localizer = goi18n.NewLocalizer(bundle, language.English.String())
	})
}

// SetLanguages selects the preferred languages for default widget
// strings, most preferred first. Unknown tags fall back to English.
func SetLanguages(langs ...string) {
	setup()
	mu.Lock()
	defer mu.Unlock()
	localizer = goi18n.NewLocalizer(bundle, langs...)
}

// T returns the localized message for id, or id itself when no
// translation exists.
func T(id string) string {
	setup()
	mu.RLock()
	loc := localizer
	mu.RUnlock()

	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
