package jobpost

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
	apperrors "github.com/louisbranch/jobportal/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/jobportal/internal/services/web/platform/flash"
	"github.com/louisbranch/jobportal/internal/services/web/platform/httpx"
	"github.com/louisbranch/jobportal/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/jobportal/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/jobportal/internal/services/web/templates"
	"go.uber.org/zap"
)

// maxFormBytes bounds the posted form body.
const maxFormBytes = 64 << 10

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleNew(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	h.renderPage(w, r, loc, http.StatusOK, Draft{})
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", "parse job form", err))
		return
	}
	draft := draftFromForm(r.PostForm)

	if missing := missingFields(draft); len(missing) > 0 {
		h.rejectDraft(w, r, loc, draft, webtemplates.T(loc, "jobpost.toast.missing_fields", strings.Join(missing, ", ")))
		return
	}

	message, err := h.service.createJob(r.Context(), jobapi.CredentialsFromRequest(r), draft)
	if err != nil {
		if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
			h.RequestLogger(r).Debug("job submission abandoned by client")
			return
		}
		h.RequestLogger(r).Warn("create job failed", zap.Error(err))
		h.rejectDraft(w, r, loc, draft, jobapi.MessageOr(err, webtemplates.T(loc, "jobpost.toast.post_failed")))
		return
	}

	if strings.TrimSpace(message) == "" {
		h.Flash(w, r, flashnotice.NoticeSuccess("jobpost.toast.posted"))
	} else {
		h.Flash(w, r, flashnotice.NoticeSuccessText(message))
	}
	h.Redirect(w, r, routepath.AdminJobs)
}

// rejectDraft reports a failed submission. HTMX clients keep the form they
// already show and only receive the toast; other clients get the form
// re-rendered from the draft.
func (h handlers) rejectDraft(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, draft Draft, message string) {
	toast := webtemplates.Toast{Kind: webtemplates.ToastError, Message: message}
	if httpx.IsHTMXRequest(r) {
		w.Header().Set("HX-Reswap", "none")
		h.WritePage(w, r, webtemplates.T(loc, "title.job_create"), http.StatusOK, nil, toast)
		return
	}
	h.renderPage(w, r, loc, http.StatusUnprocessableEntity, draft, toast)
}

func (h handlers) renderPage(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, status int, draft Draft, toasts ...webtemplates.Toast) {
	options, err := h.service.loadOptions(r.Context())
	if err != nil {
		h.RequestLogger(r).Warn("list categories for job form failed", zap.Error(err))
		toasts = append(toasts, webtemplates.Toast{
			Kind:    webtemplates.ToastError,
			Message: webtemplates.T(loc, "jobpost.toast.fetch_categories_failed"),
		})
	}
	view := webtemplates.JobPostFormView{
		Draft:      draftView(draft),
		Locations:  Locations,
		JobTypes:   JobTypes,
		Companies:  selectOptions(options.Companies),
		Categories: selectOptions(options.Categories),
	}
	h.WritePage(w, r, webtemplates.T(loc, "title.job_create"), status, webtemplates.JobPostPage(view, loc), toasts...)
}

func draftView(d Draft) webtemplates.JobPostDraftView {
	return webtemplates.JobPostDraftView{
		Title:           d.Title,
		Description:     d.Description,
		Requirements:    d.Requirements,
		Salary:          d.Salary,
		ExperienceLevel: d.ExperienceLevel,
		Location:        d.Location,
		JobType:         d.JobType,
		Position:        d.Position,
		Company:         d.Company,
		Category:        d.Category,
	}
}

func selectOptions(options []Option) []webtemplates.SelectOption {
	out := make([]webtemplates.SelectOption, 0, len(options))
	for _, option := range options {
		out = append(out, webtemplates.SelectOption{Value: option.ID, Label: option.Name})
	}
	return out
}
