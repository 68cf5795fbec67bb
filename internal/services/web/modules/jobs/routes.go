package jobs

import (
	"net/http"

	"github.com/louisbranch/jobportal/internal/services/web/routepath"
)

func registerPublicRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Jobs, h.handlePublicList)
	mux.HandleFunc(http.MethodGet+" "+routepath.JobsPrefix+"{$}", h.handlePublicList)
	mux.HandleFunc(routepath.JobsPrefix+"{rest...}", h.WriteNotFound)
}

func registerAdminRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminJobs, h.handleAdminList)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminJobsPrefix+"{$}", h.handleAdminList)
	mux.HandleFunc(routepath.AdminJobsPrefix+"{rest...}", h.WriteNotFound)
}
