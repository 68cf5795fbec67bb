package companies

import (
	"context"
	"sync"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
)

// fakeSource replays results in order and repeats the last one.
type fakeSource struct {
	mu        sync.Mutex
	results   []fakeResult
	calls     int
	lastCreds jobapi.Credentials
}

type fakeResult struct {
	companies []jobapi.Company
	err       error
}

func (f *fakeSource) ListCompanies(_ context.Context, creds jobapi.Credentials) ([]jobapi.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCreds = creds
	idx := f.calls
	f.calls++
	if len(f.results) == 0 {
		return nil, nil
	}
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	return f.results[idx].companies, f.results[idx].err
}
