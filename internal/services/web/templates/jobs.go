package templates

// JobView is one row of a job listing.
type JobView struct {
	ID          string
	Title       string
	Description string
	Company     string
	Location    string
	JobType     string
	Salary      string
	Positions   int
	Posted      string
}

// JobListView is the state of a job listing page.
type JobListView struct {
	Jobs []JobView
	// Admin switches to the recruiter listing with a create affordance.
	Admin bool
	// Error replaces the listing when set.
	Error string
}

func (v JobListView) headingKey() string {
	if v.Admin {
		return "jobs.admin_heading"
	}
	return "jobs.heading"
}
