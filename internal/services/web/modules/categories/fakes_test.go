package categories

import (
	"context"
	"sync"
)

// fakeGateway implements CategoryGateway with configurable results and call
// tracking.
type fakeGateway struct {
	mu         sync.Mutex
	categories []Category
	err        error
	calls      int
}

func (f *fakeGateway) ListCategories(context.Context) ([]Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func fixedJobCount(n int) func() int {
	return func() int { return n }
}
