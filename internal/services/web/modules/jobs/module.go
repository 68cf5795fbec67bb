// Package jobs serves the public and recruiter job listings.
package jobs

import (
	"net/http"

	"github.com/louisbranch/jobportal/internal/services/web/module"
	"github.com/louisbranch/jobportal/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/jobportal/internal/services/web/routepath"
)

// Module provides one job listing surface.
type Module struct {
	gateway JobGateway
	base    modulehandler.Base
	admin   bool
}

// NewPublic returns the public job listing module.
func NewPublic(gateway JobGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// NewAdmin returns the recruiter job listing module.
func NewAdmin(gateway JobGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base, admin: true}
}

// ID returns a stable module identifier.
func (m Module) ID() string {
	if m.admin {
		return "adminjobs"
	}
	return "jobs"
}

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires job listing route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	if m.admin {
		registerAdminRoutes(mux, h)
		return module.Mount{Prefix: routepath.AdminJobsPrefix, Handler: mux}, nil
	}
	registerPublicRoutes(mux, h)
	return module.Mount{Prefix: routepath.JobsPrefix, Handler: mux}, nil
}
