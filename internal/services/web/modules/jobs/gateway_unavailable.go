package jobs

import (
	"context"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
	apperrors "github.com/louisbranch/jobportal/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListJobs(context.Context, string) ([]Job, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "job service is not configured")
}

func (unavailableGateway) ListAdminJobs(context.Context, jobapi.Credentials) ([]Job, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "job service is not configured")
}
