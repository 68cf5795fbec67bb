package jobpost

import (
	"context"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
)

// fakeGateway implements JobGateway with configurable results and call
// tracking.
type fakeGateway struct {
	categories    []Option
	categoriesErr error
	message       string
	createErr     error

	categoryCalls int
	createCalls   int
	lastPayload   jobapi.JobPayload
	lastCreds     jobapi.Credentials
}

func (f *fakeGateway) ListCategories(context.Context) ([]Option, error) {
	f.categoryCalls++
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func (f *fakeGateway) CreateJob(_ context.Context, creds jobapi.Credentials, payload jobapi.JobPayload) (string, error) {
	f.createCalls++
	f.lastCreds = creds
	f.lastPayload = payload
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.message, nil
}

type fakeCompanies []jobapi.Company

func (f fakeCompanies) Companies() []jobapi.Company { return f }

// Loaded treats a nil directory as one that has never been filled.
func (f fakeCompanies) Loaded() bool { return f != nil }
