// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/louisbranch/jobportal/internal/services/web/module"
	"github.com/louisbranch/jobportal/internal/services/web/modules/categories"
	"github.com/louisbranch/jobportal/internal/services/web/modules/jobpost"
	"github.com/louisbranch/jobportal/internal/services/web/modules/jobs"
	"github.com/louisbranch/jobportal/internal/services/web/platform/modulehandler"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the backend clients and shared state required to
// compose the web module registry. Each client field is typed as the narrow
// interface defined by the consuming module.
type Dependencies struct {
	CategoryClient categories.CategoryLister
	JobsClient     jobs.APIClient
	JobPostClient  jobpost.APIClient
	Companies      jobpost.CompanySource
	Base           modulehandler.Base
}
