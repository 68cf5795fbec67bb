package jobpost

import (
	"context"

	"github.com/louisbranch/jobportal/internal/platform/logging"
	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
	"go.uber.org/zap"
)

// Option is one id/label pair for a select input.
type Option struct {
	ID   string
	Name string
}

// JobGateway loads form options and submits postings.
type JobGateway interface {
	ListCategories(context.Context) ([]Option, error)
	CreateJob(context.Context, jobapi.Credentials, jobapi.JobPayload) (string, error)
}

// CompanySource exposes the shared company directory.
type CompanySource interface {
	Companies() []jobapi.Company
	Loaded() bool
}

type formOptions struct {
	Companies  []Option
	Categories []Option
}

type service struct {
	gateway   JobGateway
	companies CompanySource
	logger    *zap.Logger
}

func newService(gateway JobGateway, companies CompanySource, logger *zap.Logger) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, companies: companies, logger: logging.OrNop(logger)}
}

// loadOptions always returns the companies; the error reports a category
// fetch failure.
func (s service) loadOptions(ctx context.Context) (formOptions, error) {
	options := formOptions{Companies: s.companyOptions()}
	categories, err := s.gateway.ListCategories(ctx)
	if err != nil {
		return options, err
	}
	options.Categories = categories
	return options, nil
}

func (s service) companyOptions() []Option {
	if s.companies == nil {
		return nil
	}
	companies := s.companies.Companies()
	options := make([]Option, 0, len(companies))
	for _, company := range companies {
		options = append(options, Option{ID: company.ID, Name: company.Name})
	}
	return options
}

func (s service) createJob(ctx context.Context, creds jobapi.Credentials, draft Draft) (string, error) {
	payload := draft.payload()
	for name, value := range map[string]jobapi.Number{
		"salary":          payload.Salary,
		"experienceLevel": payload.ExperienceLevel,
		"position":        payload.Position,
	} {
		if !value.Valid() {
			s.logger.Warn("submitting unparsable number as null", zap.String("field", name))
		}
	}
	return s.gateway.CreateJob(ctx, creds, payload)
}
