// Package jobpost serves the recruiter job posting form.
package jobpost

import (
	"net/http"

	"github.com/louisbranch/jobportal/internal/services/web/module"
	"github.com/louisbranch/jobportal/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/jobportal/internal/services/web/routepath"
)

// Module provides job posting routes.
type Module struct {
	gateway   JobGateway
	companies CompanySource
	base      modulehandler.Base
}

// New returns a job posting module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a job posting module with explicit dependencies.
func NewWithGateway(gateway JobGateway, companies CompanySource, base modulehandler.Base) Module {
	return Module{gateway: gateway, companies: companies, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "jobpost" }

// Healthy reports whether the job posting module has an operational gateway
// and a company directory that has loaded at least once.
func (m Module) Healthy() bool {
	if m.gateway == nil || m.companies == nil {
		return false
	}
	if _, unavailable := m.gateway.(unavailableGateway); unavailable {
		return false
	}
	return m.companies.Loaded()
}

// Mount wires job posting route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.companies, m.base.Logger()), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AdminJobsCreatePrefix, Handler: mux}, nil
}
