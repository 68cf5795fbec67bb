// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/jobportal/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/jobportal/internal/services/web/platform/i18n"
	"github.com/louisbranch/jobportal/internal/services/web/platform/pagerender"
	"github.com/louisbranch/jobportal/internal/services/web/platform/requestmeta"
	webtemplates "github.com/louisbranch/jobportal/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the error-page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteErrorPage writes a localized error page for full-page and HTMX requests.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc := webi18n.Localizer(nil)
	if r != nil {
		loc, _ = webi18n.ResolveLocalizer(w, r)
	}
	err := pagerender.WritePage(w, r, policy, pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(statusCode, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderErrorPage(statusCode) {
		WriteErrorPage(w, r, policy, statusCode)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
