package templates

import (
	"strings"

	"github.com/louisbranch/jobportal/internal/services/web/routepath"
)

const (
	htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"
	daisyUIURL    = "https://cdn.jsdelivr.net/npm/daisyui@5"
	tailwindURL   = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"

	// ToastRegionID is the element that receives toast notifications.
	ToastRegionID = "toast-region"
)

// Toast kinds match flash notice kinds.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
	ToastWarning = "warning"
)

// Toast is one non-blocking notification.
type Toast struct {
	Kind    string
	Message string
}

// LayoutOptions configure the page shell.
type LayoutOptions struct {
	Title       string
	Lang        string
	Loc         Localizer
	CurrentPath string
	Toasts      []Toast
}

func (o LayoutOptions) lang() string {
	if lang := strings.TrimSpace(o.Lang); lang != "" {
		return lang
	}
	return "en-US"
}

func (o LayoutOptions) title() string {
	title := strings.TrimSpace(o.Title)
	if title == "" {
		return T(o.Loc, "app.name")
	}
	return T(o.Loc, "title.page", title)
}

type navLink struct {
	href string
	key  string
}

var navLinks = []navLink{
	{href: routepath.Root, key: "nav.categories"},
	{href: routepath.Jobs, key: "nav.jobs"},
	{href: routepath.AdminJobs, key: "nav.admin_jobs"},
	{href: routepath.AdminJobsCreate, key: "nav.post_job"},
}

func staticAsset(name string) string {
	return routepath.StaticPrefix + name
}

func toastClass(kind string) string {
	switch kind {
	case ToastSuccess:
		return "alert-success"
	case ToastError:
		return "alert-error"
	case ToastWarning:
		return "alert-warning"
	default:
		return "alert-info"
	}
}
