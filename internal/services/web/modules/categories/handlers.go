package categories

import (
	"context"
	"errors"
	"net/http"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
	"github.com/louisbranch/jobportal/internal/services/web/platform/modulehandler"
	webtemplates "github.com/louisbranch/jobportal/internal/services/web/templates"
	"go.uber.org/zap"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

// handleIndex renders the shell; the grid loads in a follow-up request.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "title.categories"), http.StatusOK, webtemplates.CategoriesLoading(loc))
}

func (h handlers) handleGrid(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	title := webtemplates.T(loc, "title.categories")

	tiles, err := h.service.listCategories(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
			h.RequestLogger(r).Debug("category request abandoned by client")
			return
		}
		h.RequestLogger(r).Warn("list categories failed", zap.Error(err))
		view := webtemplates.CategoryGridView{
			Error: jobapi.MessageOr(err, webtemplates.T(loc, "categories.error.fetch_failed")),
		}
		h.WritePage(w, r, title, http.StatusOK, webtemplates.CategoryGrid(view, loc), webtemplates.Toast{
			Kind:    webtemplates.ToastError,
			Message: webtemplates.T(loc, "categories.toast.load_failed"),
		})
		return
	}

	view := webtemplates.CategoryGridView{Tiles: make([]webtemplates.CategoryTileView, 0, len(tiles))}
	for _, tile := range tiles {
		view.Tiles = append(view.Tiles, webtemplates.CategoryTileView{
			ID:       tile.ID,
			Name:     tile.Name,
			JobCount: tile.JobCount,
			Icon:     tile.Icon,
		})
	}
	h.WritePage(w, r, title, http.StatusOK, webtemplates.CategoryGrid(view, loc))
}
