package categories

import (
	"net/http"

	"github.com/louisbranch/jobportal/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CategoriesGrid, h.handleGrid)
	mux.HandleFunc(routepath.Root, h.WriteNotFound)
}
