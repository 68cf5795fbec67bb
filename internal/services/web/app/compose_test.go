package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/jobportal/internal/services/web/module"
	"github.com/louisbranch/jobportal/internal/services/web/platform/requestmeta"
)

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "missing leading slash", prefix: "jobs/"},
		{name: "missing trailing slash", prefix: "/jobs"},
		{name: "contains surrounding whitespace", prefix: "/jobs/ "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				PublicModules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: noContent()}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, tc.prefix) || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModules(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{PublicModules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil public module error")
	}
	if _, err := Compose(ComposeInput{AdminModules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil admin module error")
	}
}

func TestComposeRejectsMountErrorAndMissingHandler(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{PublicModules: []module.Module{stubModule{id: "broken", err: errors.New("boom")}}})
	if err == nil || !strings.Contains(err.Error(), "broken") {
		t.Fatalf("expected mount error, got %v", err)
	}
	_, err = Compose(ComposeInput{PublicModules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/empty/"}}}})
	if err == nil {
		t.Fatalf("expected missing handler error")
	}
}

func TestComposeEnforcesGroupPrefixes(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{AdminModules: []module.Module{
		stubModule{id: "jobs", mount: module.Mount{Prefix: "/jobs/", Handler: noContent()}},
	}}); err == nil {
		t.Fatalf("expected admin module outside /admin/ to fail")
	}
	if _, err := Compose(ComposeInput{PublicModules: []module.Module{
		stubModule{id: "adminjobs", mount: module.Mount{Prefix: "/admin/jobs/", Handler: noContent()}},
	}}); err == nil {
		t.Fatalf("expected public module under /admin/ to fail")
	}
}

func TestComposeMountsSlashlessAlias(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{PublicModules: []module.Module{
		stubModule{id: "jobs", mount: module.Mount{Prefix: "/jobs/", Handler: noContent()}},
	}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	for _, path := range []string{"/jobs", "/jobs/"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusNoContent)
		}
	}
}

func TestComposeRejectsAdminMutationWithoutSameOriginProof(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{AdminModules: []module.Module{
		stubModule{id: "jobpost", mount: module.Mount{Prefix: "/admin/jobs/create/", Handler: noContent()}},
	}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "http://jobs.test/admin/jobs/create", nil)
	req.Header.Set("Origin", "http://evil.test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}

	req = httptest.NewRequest(http.MethodPost, "http://jobs.test/admin/jobs/create", nil)
	req.Header.Set("Origin", "http://jobs.test")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeHonorsForwardedProtoTrust(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AdminModules: []module.Module{
			stubModule{id: "jobpost", mount: module.Mount{Prefix: "/admin/jobs/create/", Handler: noContent()}},
		},
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: true},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "http://jobs.test/admin/jobs/create", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("Origin", "https://jobs.test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount() (module.Mount, error) { return m.mount, m.err }

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
