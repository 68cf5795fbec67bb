package templates

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for web templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// fallback renders string keys in the default locale when a component is
// rendered without a request localizer.
var fallback = message.NewPrinter(language.AmericanEnglish)

// T returns a translated string. Without a localizer, string keys resolve
// against the default locale and other references render empty.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	keyString, ok := key.(string)
	if !ok {
		return ""
	}
	return fallback.Sprintf(keyString, args...)
}
