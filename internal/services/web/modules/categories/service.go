package categories

import (
	"context"
	"math/rand/v2"

	"github.com/louisbranch/jobportal/internal/platform/icons"
)

const (
	minJobCount  = 100
	jobCountSpan = 700
)

// Category is one backend category record.
type Category struct {
	ID   string
	Name string
}

// CategoryTile is a category decorated for display.
type CategoryTile struct {
	ID   string
	Name string
	// JobCount is a cosmetic placeholder, not a real metric.
	JobCount int
	Icon     icons.ID
}

// CategoryGateway loads the category list.
type CategoryGateway interface {
	ListCategories(context.Context) ([]Category, error)
}

type service struct {
	gateway  CategoryGateway
	jobCount func() int
}

func newService(gateway CategoryGateway, jobCount func() int) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if jobCount == nil {
		jobCount = randomJobCount
	}
	return service{gateway: gateway, jobCount: jobCount}
}

// randomJobCount draws uniformly from [100, 800).
func randomJobCount() int {
	return rand.IntN(jobCountSpan) + minJobCount
}

func (s service) listCategories(ctx context.Context) ([]CategoryTile, error) {
	categories, err := s.gateway.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	tiles := make([]CategoryTile, 0, len(categories))
	for _, category := range categories {
		tiles = append(tiles, CategoryTile{
			ID:       category.ID,
			Name:     category.Name,
			JobCount: s.jobCount(),
			Icon:     icons.ForCategory(category.Name),
		})
	}
	return tiles, nil
}
