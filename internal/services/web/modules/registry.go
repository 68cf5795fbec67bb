package modules

import (
	"github.com/louisbranch/jobportal/internal/services/web/modules/categories"
	"github.com/louisbranch/jobportal/internal/services/web/modules/jobpost"
	"github.com/louisbranch/jobportal/internal/services/web/modules/jobs"
)

// DefaultPublicModules returns the modules open to every visitor.
func DefaultPublicModules(deps Dependencies) []Module {
	return []Module{
		categories.NewWithGateway(categories.NewAPIGateway(deps.CategoryClient), deps.Base),
		jobs.NewPublic(jobs.NewAPIGateway(deps.JobsClient), deps.Base),
	}
}

// DefaultAdminModules returns the recruiter modules mounted under /admin/.
func DefaultAdminModules(deps Dependencies) []Module {
	return []Module{
		jobs.NewAdmin(jobs.NewAPIGateway(deps.JobsClient), deps.Base),
		jobpost.NewWithGateway(jobpost.NewAPIGateway(deps.JobPostClient), deps.Companies, deps.Base),
	}
}
