package jobpost

import (
	"net/http"

	"github.com/louisbranch/jobportal/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminJobsCreate, h.handleNew)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminJobsCreatePrefix+"{$}", h.handleNew)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminJobsCreate, h.handleCreate)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminJobsCreatePrefix+"{$}", h.handleCreate)
	mux.HandleFunc(routepath.AdminJobsCreatePrefix+"{rest...}", h.WriteNotFound)
}
