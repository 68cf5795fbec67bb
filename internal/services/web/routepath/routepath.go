// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root            = "/"
	Health          = "/up"
	StaticPrefix    = "/static/"
	CategoriesGrid  = "/categories/grid"
	JobsPrefix      = "/jobs/"
	Jobs            = "/jobs"
	AdminJobsPrefix = "/admin/jobs/"
	AdminJobs       = "/admin/jobs"
	AdminJobsCreate = "/admin/jobs/create"
	// AdminJobsCreatePrefix owns the create form so it can mount apart from the admin list.
	AdminJobsCreatePrefix = "/admin/jobs/create/"
)

// CategoryQueryParam filters the job listing by category id.
const CategoryQueryParam = "category"

// JobsByCategory returns the job listing filtered by categoryID.
func JobsByCategory(categoryID string) string {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return Jobs
	}
	return Jobs + "?" + url.Values{CategoryQueryParam: {categoryID}}.Encode()
}
