package companies

import (
	"context"
	"time"

	"github.com/louisbranch/jobportal/internal/platform/logging"
	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
	"go.uber.org/zap"
)

const (
	// DefaultRefreshInterval is the pause between successful refreshes.
	DefaultRefreshInterval = 5 * time.Minute
	defaultRetryDelay      = 500 * time.Millisecond
	maxRetryDelay          = 10 * time.Second
)

// Source lists companies from the backend.
type Source interface {
	ListCompanies(context.Context, jobapi.Credentials) ([]jobapi.Company, error)
}

// Refresher keeps a Directory filled from a Source.
type Refresher struct {
	source    Source
	directory *Directory
	creds     jobapi.Credentials
	interval  time.Duration
	logger    *zap.Logger
	// wait blocks for d or until ctx ends; it reports whether to continue.
	wait func(ctx context.Context, d time.Duration) bool
}

// NewRefresher builds a refresher. creds are forwarded on every list call.
func NewRefresher(source Source, directory *Directory, creds jobapi.Credentials, interval time.Duration, logger *zap.Logger) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		source:    source,
		directory: directory,
		creds:     creds,
		interval:  interval,
		logger:    logging.OrNop(logger).Named("companies"),
		wait:      waitTimer,
	}
}

// Refresh performs one list call and replaces the directory on success.
func (r *Refresher) Refresh(ctx context.Context) error {
	companies, err := r.source.ListCompanies(ctx, r.creds)
	if err != nil {
		return err
	}
	r.directory.Replace(companies)
	r.logger.Debug("company directory refreshed", zap.Int("companies", len(companies)))
	return nil
}

// Run refreshes until ctx ends. Failures back off exponentially from 500ms
// up to 10s; successes wait the full interval.
func (r *Refresher) Run(ctx context.Context) {
	if r == nil || r.source == nil || r.directory == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	retryDelay := defaultRetryDelay
	for {
		if ctx.Err() != nil {
			return
		}
		delay := r.interval
		if err := r.Refresh(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			r.logger.Warn("company directory refresh failed", zap.Error(err), zap.Duration("retry_in", retryDelay))
			delay = retryDelay
			retryDelay *= 2
			if retryDelay > maxRetryDelay {
				retryDelay = maxRetryDelay
			}
		} else {
			retryDelay = defaultRetryDelay
		}
		if !r.wait(ctx, delay) {
			return
		}
	}
}

func waitTimer(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		timer.Stop()
		return false
	}
}
