package jobpost

import (
	"context"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
	apperrors "github.com/louisbranch/jobportal/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListCategories(context.Context) ([]Option, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "job service is not configured")
}

func (unavailableGateway) CreateJob(context.Context, jobapi.Credentials, jobapi.JobPayload) (string, error) {
	return "", apperrors.E(apperrors.KindUnavailable, "job service is not configured")
}
