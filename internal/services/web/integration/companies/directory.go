// Package companies keeps the process-wide company directory used to fill
// the job posting form.
package companies

import (
	"sync"
	"time"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
)

// Directory is a concurrency-safe snapshot of known companies.
type Directory struct {
	mu        sync.RWMutex
	companies []jobapi.Company
	refreshed time.Time
}

// NewDirectory returns an empty directory.
func NewDirectory(initial ...jobapi.Company) *Directory {
	d := &Directory{}
	if len(initial) > 0 {
		d.Replace(initial)
	}
	return d
}

// Replace swaps the directory contents.
func (d *Directory) Replace(companies []jobapi.Company) {
	if d == nil {
		return
	}
	next := make([]jobapi.Company, len(companies))
	copy(next, companies)
	d.mu.Lock()
	d.companies = next
	d.refreshed = time.Now()
	d.mu.Unlock()
}

// Companies returns a copy of the current snapshot.
func (d *Directory) Companies() []jobapi.Company {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]jobapi.Company, len(d.companies))
	copy(out, d.companies)
	return out
}

// Loaded reports whether the directory has been filled at least once.
func (d *Directory) Loaded() bool {
	if d == nil {
		return false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return !d.refreshed.IsZero()
}
