package jobs

import (
	"context"
	"time"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
)

// Job is one listed posting.
type Job struct {
	ID          string
	Title       string
	Description string
	Company     string
	Location    string
	JobType     string
	Salary      string
	Positions   int
	CreatedAt   time.Time
}

// JobGateway loads job listings.
type JobGateway interface {
	ListJobs(ctx context.Context, categoryID string) ([]Job, error)
	ListAdminJobs(ctx context.Context, creds jobapi.Credentials) ([]Job, error)
}

type service struct {
	gateway JobGateway
}

func newService(gateway JobGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) listJobs(ctx context.Context, categoryID string) ([]Job, error) {
	return s.gateway.ListJobs(ctx, categoryID)
}

func (s service) listAdminJobs(ctx context.Context, creds jobapi.Credentials) ([]Job, error) {
	return s.gateway.ListAdminJobs(ctx, creds)
}
