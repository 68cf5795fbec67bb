package modulehandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/jobportal/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/jobportal/internal/services/web/platform/flash"
	"github.com/louisbranch/jobportal/internal/services/web/platform/requestmeta"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewTestBaseHasLogger(t *testing.T) {
	t.Parallel()

	if NewTestBase().Logger() == nil {
		t.Fatal("expected non-nil logger")
	}
	if (Base{}).Logger() == nil {
		t.Fatal("expected zero Base to return a no-op logger")
	}
}

func TestWriteErrorLogsServerFailures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.ErrorLevel)
	base := NewBase(zap.New(core), requestmeta.SchemePolicy{})

	rr := httptest.NewRecorder()
	base.WriteError(rr, httptest.NewRequest(http.MethodGet, "/jobs", nil), apperrors.Wrap(apperrors.KindUnavailable, "", "jobs backend", errors.New("dial tcp")))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if logs.Len() != 1 {
		t.Fatalf("error logs = %d, want 1", logs.Len())
	}

	rr = httptest.NewRecorder()
	base.WriteError(rr, httptest.NewRequest(http.MethodPost, "/admin/jobs/create", nil), apperrors.E(apperrors.KindInvalidInput, "bad"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if logs.Len() != 1 {
		t.Fatalf("client errors should not be logged, got %d entries", logs.Len())
	}
}

func TestWriteNotFoundRendersErrorPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewTestBase().WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestFlashAndRedirect(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/admin/jobs/create", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	base := NewTestBase()
	base.Flash(rr, req, flashnotice.NoticeSuccessText("Job posted"))
	base.Redirect(rr, req, "/admin/jobs")

	if got := rr.Header().Get("HX-Redirect"); got != "/admin/jobs" {
		t.Fatalf("HX-Redirect = %q", got)
	}
	found := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flashnotice.CookieName {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing flash cookie")
	}
}
