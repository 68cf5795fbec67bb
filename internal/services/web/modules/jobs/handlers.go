package jobs

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
	"github.com/louisbranch/jobportal/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/jobportal/internal/services/web/routepath"
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

func (h handlers) handlePublicList(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	jobs, err := h.service.listJobs(r.Context(), r.URL.Query().Get(routepath.CategoryQueryParam))
	h.renderList(w, r, loc, webtemplates.T(loc, "title.jobs"), false, jobs, err)
}

func (h handlers) handleAdminList(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	jobs, err := h.service.listAdminJobs(r.Context(), jobapi.CredentialsFromRequest(r))
	h.renderList(w, r, loc, webtemplates.T(loc, "title.admin_jobs"), true, jobs, err)
}

func (h handlers) renderList(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, title string, admin bool, jobs []Job, err error) {
	view := webtemplates.JobListView{Admin: admin}
	var toasts []webtemplates.Toast
	if err != nil {
		if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
			return
		}
		h.RequestLogger(r).Warn("list jobs failed", zap.Error(err), zap.Bool("admin", admin))
		view.Error = jobapi.MessageOr(err, webtemplates.T(loc, "jobs.error.fetch_failed"))
		toasts = append(toasts, webtemplates.Toast{
			Kind:    webtemplates.ToastError,
			Message: webtemplates.T(loc, "jobs.toast.load_failed"),
		})
	}
	view.Jobs = make([]webtemplates.JobView, 0, len(jobs))
	for _, job := range jobs {
		view.Jobs = append(view.Jobs, jobView(job))
	}
	h.WritePage(w, r, title, http.StatusOK, webtemplates.JobList(view, loc), toasts...)
}

func jobView(job Job) webtemplates.JobView {
	posted := ""
	if !job.CreatedAt.IsZero() {
		posted = job.CreatedAt.Format(time.DateOnly)
	}
	return webtemplates.JobView{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Company:     job.Company,
		Location:    job.Location,
		JobType:     job.JobType,
		Salary:      job.Salary,
		Positions:   job.Positions,
		Posted:      posted,
	}
}
