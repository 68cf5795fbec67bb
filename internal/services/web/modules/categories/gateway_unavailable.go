package categories

import (
	"context"

	apperrors "github.com/louisbranch/jobportal/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListCategories(context.Context) ([]Category, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "category service is not configured")
}
