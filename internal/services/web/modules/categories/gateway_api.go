package categories

import (
	"context"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
)

// CategoryLister is the backend client surface used by this module.
type CategoryLister interface {
	ListCategories(context.Context) ([]jobapi.Category, error)
}

// NewAPIGateway builds the production categories gateway.
func NewAPIGateway(client CategoryLister) CategoryGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client CategoryLister
}

func (g apiGateway) ListCategories(ctx context.Context) ([]Category, error) {
	records, err := g.client.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(records))
	for _, record := range records {
		out = append(out, Category{ID: record.ID, Name: record.Name})
	}
	return out, nil
}
