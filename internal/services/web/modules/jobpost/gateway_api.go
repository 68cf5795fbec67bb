package jobpost

import (
	"context"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
)

// APIClient is the backend client surface used by this module.
type APIClient interface {
	ListCategories(context.Context) ([]jobapi.Category, error)
	CreateJob(context.Context, jobapi.Credentials, jobapi.JobPayload) (string, error)
}

// NewAPIGateway builds the production job posting gateway.
func NewAPIGateway(client APIClient) JobGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client APIClient
}

func (g apiGateway) ListCategories(ctx context.Context) ([]Option, error) {
	records, err := g.client.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Option, 0, len(records))
	for _, record := range records {
		out = append(out, Option{ID: record.ID, Name: record.Name})
	}
	return out, nil
}

func (g apiGateway) CreateJob(ctx context.Context, creds jobapi.Credentials, payload jobapi.JobPayload) (string, error) {
	return g.client.CreateJob(ctx, creds, payload)
}
