// Package i18n resolves request localizers for web handlers.
package i18n

import (
	"net/http"

	webi18n "github.com/louisbranch/jobportal/internal/services/web/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ResolveTag returns the request language without touching the response.
func ResolveTag(r *http.Request) language.Tag {
	tag, _ := webi18n.ResolveTag(r)
	return tag
}

// ResolveLocalizer returns the request localizer and its language tag string,
// persisting an explicit lang query selection as a cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (Localizer, string) {
	tag, persist := webi18n.ResolveTag(r)
	if persist {
		webi18n.SetLanguageCookie(w, tag)
	}
	return webi18n.Printer(tag), tag.String()
}
