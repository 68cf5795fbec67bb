// Package categories serves the landing page category browser.
package categories

import (
	"net/http"

	"github.com/louisbranch/jobportal/internal/services/web/module"
	"github.com/louisbranch/jobportal/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/jobportal/internal/services/web/routepath"
)

// Module provides the category browser routes.
type Module struct {
	gateway  CategoryGateway
	base     modulehandler.Base
	jobCount func() int
}

// New returns a categories module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a categories module with explicit gateway and handler dependencies.
func NewWithGateway(gateway CategoryGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "categories" }

// Healthy reports whether the categories module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires category route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.jobCount), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
