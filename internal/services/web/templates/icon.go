package templates

import (
	"strings"

	"github.com/louisbranch/jobportal/internal/platform/icons"
)

// iconClasses appends the tone registered for id to class.
func iconClasses(id icons.ID, class string) string {
	if tone, ok := icons.Tone(id); ok {
		return strings.TrimSpace(class + " " + tone)
	}
	return class
}

func iconHref(id icons.ID) string {
	return "#" + icons.LucideSymbolID(icons.LucideNameOrDefault(id))
}
