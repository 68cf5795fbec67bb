package companies

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
)

func TestDirectoryReplaceAndCopy(t *testing.T) {
	t.Parallel()

	d := NewDirectory()
	if d.Loaded() {
		t.Fatalf("new directory should not be loaded")
	}
	source := []jobapi.Company{{ID: "c1", Name: "Acme"}}
	d.Replace(source)
	source[0].Name = "mutated"

	got := d.Companies()
	if !d.Loaded() || len(got) != 1 || got[0].Name != "Acme" {
		t.Fatalf("Companies() = %+v", got)
	}
	got[0].Name = "mutated"
	if d.Companies()[0].Name != "Acme" {
		t.Fatalf("Companies() must return a copy")
	}
}

func TestDirectoryNilIsEmpty(t *testing.T) {
	t.Parallel()

	var d *Directory
	d.Replace([]jobapi.Company{{ID: "c1"}})
	if d.Companies() != nil || d.Loaded() {
		t.Fatalf("nil directory should stay empty")
	}
}

func TestDirectoryConcurrentAccess(t *testing.T) {
	t.Parallel()

	d := NewDirectory()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			d.Replace([]jobapi.Company{{ID: "c1"}, {ID: "c2"}})
		}()
		go func() {
			defer wg.Done()
			if n := len(d.Companies()); n != 0 && n != 2 {
				t.Errorf("torn read: %d companies", n)
			}
		}()
	}
	wg.Wait()
}

func TestRefreshForwardsCredentials(t *testing.T) {
	t.Parallel()

	source := &fakeSource{results: []fakeResult{{companies: []jobapi.Company{{ID: "c1", Name: "Acme"}}}}}
	dir := NewDirectory()
	creds := jobapi.Credentials{{Name: "token", Value: "svc"}}
	r := NewRefresher(source, dir, creds, time.Minute, nil)
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if len(source.lastCreds) != 1 || source.lastCreds[0].Value != "svc" {
		t.Fatalf("creds = %+v", source.lastCreds)
	}
	if got := dir.Companies(); len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("directory = %+v", got)
	}
}

func TestRunBacksOffOnFailureAndResetsOnSuccess(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	source := &fakeSource{results: []fakeResult{
		{err: boom}, {err: boom}, {err: boom}, {err: boom}, {err: boom}, {err: boom}, {err: boom},
		{companies: []jobapi.Company{{ID: "c1"}}},
		{err: boom},
	}}
	dir := NewDirectory()
	r := NewRefresher(source, dir, nil, time.Minute, nil)

	var delays []time.Duration
	r.wait = func(_ context.Context, d time.Duration) bool {
		delays = append(delays, d)
		return len(delays) < 9
	}
	r.Run(context.Background())

	want := []time.Duration{
		500 * time.Millisecond,
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second,
		10 * time.Second,
		time.Minute,
		500 * time.Millisecond,
	}
	if len(delays) != len(want) {
		t.Fatalf("delays = %v, want %v", delays, want)
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Fatalf("delays[%d] = %v, want %v (all %v)", i, delays[i], want[i], delays)
		}
	}
	if !dir.Loaded() {
		t.Fatalf("directory should be filled after a successful refresh")
	}
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	source := &fakeSource{results: []fakeResult{{err: errors.New("down")}}}
	r := NewRefresher(source, NewDirectory(), nil, time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}

func TestRunWithoutSourceReturns(t *testing.T) {
	t.Parallel()

	NewRefresher(nil, NewDirectory(), nil, 0, nil).Run(context.Background())
}
