// Package modulehandler provides a composable base for web module handlers.
//
// Modules share localization, page rendering, flash notices and error
// handling. Handlers embed Base rather than duplicating that scaffold.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/jobportal/internal/platform/logging"
	apperrors "github.com/louisbranch/jobportal/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/jobportal/internal/services/web/platform/flash"
	"github.com/louisbranch/jobportal/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/jobportal/internal/services/web/platform/i18n"
	"github.com/louisbranch/jobportal/internal/services/web/platform/pagerender"
	"github.com/louisbranch/jobportal/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/jobportal/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/jobportal/internal/services/web/templates"
	"go.uber.org/zap"
)

// Base carries the shared dependencies used by module handlers.
type Base struct {
	logger *zap.Logger
	policy requestmeta.SchemePolicy
}

// NewBase builds a handler base.
func NewBase(logger *zap.Logger, policy requestmeta.SchemePolicy) Base {
	return Base{logger: logging.OrNop(logger), policy: policy}
}

// NewTestBase builds a handler base with a no-op logger.
func NewTestBase() Base {
	return NewBase(nil, requestmeta.SchemePolicy{})
}

// Logger returns the handler logger, never nil.
func (b Base) Logger() *zap.Logger {
	return logging.OrNop(b.logger)
}

// RequestLogger returns the logger annotated with the request id.
func (b Base) RequestLogger(r *http.Request) *zap.Logger {
	logger := b.Logger()
	if r == nil {
		return logger
	}
	if id := httpx.RequestIDFromContext(r.Context()); id != "" {
		logger = logger.With(zap.String("request_id", id))
	}
	return logger
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

// WritePage renders a page (HTMX-aware) with optional inline toasts.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component, toasts ...webtemplates.Toast) {
	if err := pagerender.WritePage(w, r, b.policy, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
		Toasts:     toasts,
	}); err != nil {
		b.WriteError(w, r, apperrors.Wrap(apperrors.KindUnknown, "", "render page", err))
	}
}

// WriteError logs err and renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		fields := []zap.Field{zap.Error(err), zap.Int("status", statusCode)}
		if stack := apperrors.Stack(err); len(stack) > 0 {
			fields = append(fields, zap.ByteString("stack", stack))
		}
		b.RequestLogger(r).Error("web module error", fields...)
	}
	weberror.WriteModuleError(w, r, b.policy, err)
}

// WriteNotFound renders a 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, b.policy, http.StatusNotFound)
}

// Flash stores a one-time notice for the next full page render.
func (b Base) Flash(w http.ResponseWriter, r *http.Request, notice flashnotice.Notice) {
	flashnotice.WriteWithPolicy(w, r, notice, b.policy)
}

// Redirect writes an HTMX-aware redirect.
func (b Base) Redirect(w http.ResponseWriter, r *http.Request, location string) {
	httpx.WriteRedirect(w, r, location)
}
