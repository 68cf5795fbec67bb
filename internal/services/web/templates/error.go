package templates

import "net/http"

// ErrorPageTitle returns the localized title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "error.not_found")
	}
	return T(loc, "error.title")
}

func errorDetailKey(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "error.not_found"
	case http.StatusForbidden:
		return "error.forbidden"
	default:
		return "error.unavailable"
	}
}
