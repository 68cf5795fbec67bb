package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Layout
	message.SetString(lang, "app.name", "Job Portal")
	message.SetString(lang, "title.page", "%s | Job Portal")
	message.SetString(lang, "nav.categories", "Categories")
	message.SetString(lang, "nav.jobs", "Jobs")
	message.SetString(lang, "nav.admin_jobs", "My Postings")
	message.SetString(lang, "nav.post_job", "Post a Job")
	message.SetString(lang, "toast.dismiss", "Dismiss")

	// Categories
	message.SetString(lang, "title.categories", "Browse Job Sectors")
	message.SetString(lang, "categories.heading", "Browse Job Sectors")
	message.SetString(lang, "categories.subheading", "Find jobs by category")
	message.SetString(lang, "categories.loading", "Loading categories...")
	message.SetString(lang, "categories.empty", "No categories found")
	message.SetString(lang, "categories.jobs_available", "%d jobs available")
	message.SetString(lang, "categories.browse_jobs", "Browse jobs")
	message.SetString(lang, "categories.browse_all.title", "BROWSE ALL SECTORS")
	message.SetString(lang, "categories.browse_all.subtitle", "Explore all job categories")
	message.SetString(lang, "categories.error.fetch_failed", "Failed to fetch categories")
	message.SetString(lang, "categories.toast.load_failed", "Failed to load categories")

	// Job posting
	message.SetString(lang, "title.job_create", "Post a New Job")
	message.SetString(lang, "jobpost.heading", "Post a New Job")
	message.SetString(lang, "jobpost.subheading", "Fill in the details of the position you want to advertise")
	message.SetString(lang, "jobpost.field.title", "Title")
	message.SetString(lang, "jobpost.field.description", "Description")
	message.SetString(lang, "jobpost.field.requirements", "Requirements (comma separated)")
	message.SetString(lang, "jobpost.placeholder.title", "Job Title")
	message.SetString(lang, "jobpost.placeholder.salary", "Eg: 50000")
	message.SetString(lang, "jobpost.placeholder.description", "Short job description")
	message.SetString(lang, "jobpost.placeholder.requirements", "e.g., JavaScript, React, MongoDB")
	message.SetString(lang, "jobpost.field.salary", "Salary")
	message.SetString(lang, "jobpost.field.experience_level", "Experience (years)")
	message.SetString(lang, "jobpost.field.location", "Location")
	message.SetString(lang, "jobpost.field.job_type", "Job Type")
	message.SetString(lang, "jobpost.field.position", "Positions")
	message.SetString(lang, "jobpost.field.company", "Company")
	message.SetString(lang, "jobpost.field.category", "Category")
	message.SetString(lang, "jobpost.select.location", "Select location")
	message.SetString(lang, "jobpost.select.job_type", "Select job type")
	message.SetString(lang, "jobpost.select.company", "Select company")
	message.SetString(lang, "jobpost.select.category", "Select category")
	message.SetString(lang, "jobpost.submit", "Post Job")
	message.SetString(lang, "jobpost.submitting", "Posting...")
	message.SetString(lang, "jobpost.toast.missing_fields", "Missing required fields: %s")
	message.SetString(lang, "jobpost.toast.fetch_categories_failed", "Failed to fetch categories")
	message.SetString(lang, "jobpost.toast.post_failed", "Failed to post job")
	message.SetString(lang, "jobpost.toast.posted", "Job posted successfully")

	// Job lists
	message.SetString(lang, "title.jobs", "Jobs")
	message.SetString(lang, "title.admin_jobs", "My Job Postings")
	message.SetString(lang, "jobs.heading", "Latest Jobs")
	message.SetString(lang, "jobs.admin_heading", "My Job Postings")
	message.SetString(lang, "jobs.new", "New Job")
	message.SetString(lang, "jobs.empty", "No jobs found")
	message.SetString(lang, "jobs.salary", "Salary: %s")
	message.SetString(lang, "jobs.positions", "%d positions")
	message.SetString(lang, "jobs.error.fetch_failed", "Failed to fetch jobs")
	message.SetString(lang, "jobs.toast.load_failed", "Failed to load jobs")

	// Errors
	message.SetString(lang, "error.title", "Something went wrong")
	message.SetString(lang, "error.not_found", "Page not found")
	message.SetString(lang, "error.unavailable", "The service is temporarily unavailable.")
	message.SetString(lang, "error.forbidden", "You are not allowed to do that.")
	message.SetString(lang, "error.back_home", "Back to categories")
}
