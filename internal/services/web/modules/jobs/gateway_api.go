package jobs

import (
	"context"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
)

// APIClient is the backend client surface used by this module.
type APIClient interface {
	ListJobs(context.Context, string) ([]jobapi.Job, error)
	ListAdminJobs(context.Context, jobapi.Credentials) ([]jobapi.Job, error)
}

// NewAPIGateway builds the production jobs gateway.
func NewAPIGateway(client APIClient) JobGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client APIClient
}

func (g apiGateway) ListJobs(ctx context.Context, categoryID string) ([]Job, error) {
	records, err := g.client.ListJobs(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return mapJobs(records), nil
}

func (g apiGateway) ListAdminJobs(ctx context.Context, creds jobapi.Credentials) ([]Job, error) {
	records, err := g.client.ListAdminJobs(ctx, creds)
	if err != nil {
		return nil, err
	}
	return mapJobs(records), nil
}

func mapJobs(records []jobapi.Job) []Job {
	out := make([]Job, 0, len(records))
	for _, record := range records {
		positions := 0
		if record.Position.Valid() {
			positions = int(record.Position)
		}
		out = append(out, Job{
			ID:          record.ID,
			Title:       record.Title,
			Description: record.Description,
			Company:     record.Company.Name,
			Location:    record.Location,
			JobType:     record.JobType,
			Salary:      record.Salary.String(),
			Positions:   positions,
			CreatedAt:   record.CreatedAt,
		})
	}
	return out
}
