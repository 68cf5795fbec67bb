package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
	flashnotice "github.com/louisbranch/jobportal/internal/services/web/platform/flash"
	"github.com/louisbranch/jobportal/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/jobportal/internal/services/web/routepath"
)

func mount(t *testing.T, m Module) http.Handler {
	t.Helper()
	mounted, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mounted.Handler
}

func TestModuleIdentity(t *testing.T) {
	t.Parallel()

	public := NewPublic(&fakeGateway{}, modulehandler.NewTestBase())
	admin := NewAdmin(&fakeGateway{}, modulehandler.NewTestBase())
	if public.ID() != "jobs" || admin.ID() != "adminjobs" {
		t.Fatalf("ids = %q %q", public.ID(), admin.ID())
	}
	pm, _ := public.Mount()
	am, _ := admin.Mount()
	if pm.Prefix != routepath.JobsPrefix || am.Prefix != routepath.AdminJobsPrefix {
		t.Fatalf("prefixes = %q %q", pm.Prefix, am.Prefix)
	}
	if NewPublic(nil, modulehandler.Base{}).Healthy() || !public.Healthy() {
		t.Fatalf("health mismatch")
	}
}

func TestPublicListFiltersByCategory(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{jobs: []Job{{
		ID:        "j1",
		Title:     "Nurse",
		Company:   "Acme",
		Location:  "Kollam",
		JobType:   "Part-time",
		Salary:    "30000",
		Positions: 3,
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}}}
	handler := mount(t, NewPublic(gateway, modulehandler.NewTestBase()))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.JobsByCategory("k1"), nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if gateway.lastCategory != "k1" || gateway.publicCalls != 1 {
		t.Fatalf("category = %q calls = %d", gateway.lastCategory, gateway.publicCalls)
	}
	body := rr.Body.String()
	for _, want := range []string{"Latest Jobs", "Nurse", "Acme", "Kollam", "3 positions", "Salary: 30000", "2026-03-01"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if strings.Contains(body, "New Job") {
		t.Fatalf("public list must not link to the posting form")
	}
}

func TestPublicListEmpty(t *testing.T) {
	t.Parallel()

	handler := mount(t, NewPublic(&fakeGateway{}, modulehandler.NewTestBase()))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, routepath.Jobs, nil)
	req.Header.Set("HX-Request", "true")
	handler.ServeHTTP(rr, req)
	if body := rr.Body.String(); !strings.Contains(body, "No jobs found") {
		t.Fatalf("body = %s", body)
	}
}

func TestListFailureRendersInlineErrorAndToast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "server message", err: &jobapi.ApplicationFailure{Op: "list jobs", Message: "Jobs not found"}, want: "Jobs not found"},
		{name: "fallback", err: &jobapi.RequestFailure{Op: "list jobs", Err: context.DeadlineExceeded}, want: "Failed to fetch jobs"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			handler := mount(t, NewPublic(&fakeGateway{err: tc.err}, modulehandler.NewTestBase()))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Jobs, nil))
			body := rr.Body.String()
			if !strings.Contains(body, "data-job-error>"+tc.want) {
				t.Fatalf("body missing inline error %q", tc.want)
			}
			if strings.Count(body, "data-toast-kind=") != 1 || !strings.Contains(body, "Failed to load jobs") {
				t.Fatalf("want exactly one failure toast")
			}
		})
	}
}

func TestAdminListForwardsCookiesAndShowsFlash(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{jobs: []Job{{ID: "j1", Title: "Designer"}}}
	handler := mount(t, NewAdmin(gateway, modulehandler.NewTestBase()))

	flashRR := httptest.NewRecorder()
	flashnotice.Write(flashRR, httptest.NewRequest(http.MethodPost, routepath.AdminJobsCreate, nil), flashnotice.NoticeSuccessText("New job created successfully."))

	req := httptest.NewRequest(http.MethodGet, routepath.AdminJobs, nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "recruiter"})
	for _, cookie := range flashRR.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if gateway.adminCalls != 1 || gateway.publicCalls != 0 {
		t.Fatalf("calls admin=%d public=%d", gateway.adminCalls, gateway.publicCalls)
	}
	found := false
	for _, cookie := range gateway.lastCreds {
		if cookie.Name == "token" && cookie.Value == "recruiter" {
			found = true
		}
	}
	if !found {
		t.Fatalf("creds = %+v, want token cookie", gateway.lastCreds)
	}
	body := rr.Body.String()
	for _, want := range []string{"My Job Postings", `href="/admin/jobs/create"`, "Designer", "New job created successfully."} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestUnknownSubpathIsNotFound(t *testing.T) {
	t.Parallel()

	handler := mount(t, NewPublic(&fakeGateway{}, modulehandler.NewTestBase()))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/jobs/unknown", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

type stubClient struct {
	jobs []jobapi.Job
}

func (s stubClient) ListJobs(context.Context, string) ([]jobapi.Job, error) { return s.jobs, nil }
func (s stubClient) ListAdminJobs(context.Context, jobapi.Credentials) ([]jobapi.Job, error) {
	return s.jobs, nil
}

func TestAPIGatewayMapsJobs(t *testing.T) {
	t.Parallel()

	record := jobapi.Job{ID: "j1", Title: "Dev", Salary: jobapi.ParseNumber("1200.5"), Position: jobapi.ParseNumber("x")}
	record.Company.Name = "Acme"
	got, err := NewAPIGateway(stubClient{jobs: []jobapi.Job{record}}).ListJobs(context.Background(), "")
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if len(got) != 1 || got[0].Company != "Acme" || got[0].Salary != "1200.5" || got[0].Positions != 0 {
		t.Fatalf("jobs = %+v", got)
	}
}
