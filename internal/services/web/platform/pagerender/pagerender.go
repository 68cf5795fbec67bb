// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	flashnotice "github.com/louisbranch/jobportal/internal/services/web/platform/flash"
	"github.com/louisbranch/jobportal/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/jobportal/internal/services/web/platform/i18n"
	"github.com/louisbranch/jobportal/internal/services/web/platform/requestmeta"
	webtemplates "github.com/louisbranch/jobportal/internal/services/web/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
	// Toasts are shown in addition to any pending flash notice.
	Toasts []webtemplates.Toast
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes a page. HTMX requests receive the fragment with
// out-of-band toasts; other requests receive the full layout.
func WritePage(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.Fragment(page.Toasts, loc).Render(ctx, &buf); err != nil {
			return err
		}
		return writeBuffer(w, statusCode, &buf)
	}

	toasts := page.Toasts
	if toast, ok := resolveFlashToast(w, r, policy, loc); ok {
		toasts = append([]webtemplates.Toast{toast}, toasts...)
	}
	currentPath := ""
	if r != nil && r.URL != nil {
		currentPath = r.URL.Path
	}
	layout := webtemplates.Layout(webtemplates.LayoutOptions{
		Title:       page.Title,
		Lang:        lang,
		Loc:         loc,
		CurrentPath: currentPath,
		Toasts:      toasts,
	})
	if err := layout.Render(ctx, &buf); err != nil {
		return err
	}
	return writeBuffer(w, statusCode, &buf)
}

func writeBuffer(w http.ResponseWriter, statusCode int, buf *bytes.Buffer) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write(buf.Bytes())
	return err
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, loc webi18n.Localizer) (webtemplates.Toast, bool) {
	notice, ok := flashnotice.ReadAndClearWithPolicy(w, r, policy)
	if !ok {
		return webtemplates.Toast{}, false
	}
	message := ""
	if notice.Key != "" {
		message = strings.TrimSpace(loc.Sprintf(notice.Key))
	}
	if message == "" {
		message = strings.TrimSpace(notice.Message)
	}
	if message == "" {
		return webtemplates.Toast{}, false
	}
	return webtemplates.Toast{Kind: string(notice.Kind), Message: message}, true
}
