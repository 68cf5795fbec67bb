package jobs

import (
	"context"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
)

// fakeGateway implements JobGateway with configurable results and call
// tracking.
type fakeGateway struct {
	jobs         []Job
	err          error
	publicCalls  int
	adminCalls   int
	lastCategory string
	lastCreds    jobapi.Credentials
}

func (f *fakeGateway) ListJobs(_ context.Context, categoryID string) ([]Job, error) {
	f.publicCalls++
	f.lastCategory = categoryID
	return f.jobs, f.err
}

func (f *fakeGateway) ListAdminJobs(_ context.Context, creds jobapi.Credentials) ([]Job, error) {
	f.adminCalls++
	f.lastCreds = creds
	return f.jobs, f.err
}
