package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/jobportal/internal/platform/icons"
	webi18n "github.com/louisbranch/jobportal/internal/services/web/i18n"
	"golang.org/x/text/language"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func enLoc() Localizer {
	return webi18n.Printer(language.AmericanEnglish)
}

func TestLayoutWrapsChildrenAndToasts(t *testing.T) {
	t.Parallel()

	body := templ.Raw("<p>inner</p>")
	ctx := templ.WithChildren(context.Background(), body)
	got := render(t, ctx, Layout(LayoutOptions{
		Title:       "Jobs",
		Lang:        "en-US",
		Loc:         enLoc(),
		CurrentPath: "/jobs",
		Toasts:      []Toast{{Kind: ToastSuccess, Message: "Saved <ok>"}},
	}))

	for _, want := range []string{
		"<title>Jobs | Job Portal</title>",
		`lang="en-US"`,
		"<p>inner</p>",
		`id="toast-region"`,
		"Saved &lt;ok&gt;",
		"alert-success",
		`aria-current="page"`,
		`id="lucide-briefcase"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("layout missing %q in %s", want, got)
		}
	}
}

func TestFragmentAppendsOutOfBandToasts(t *testing.T) {
	t.Parallel()

	body := templ.Raw("<form></form>")
	ctx := templ.WithChildren(context.Background(), body)
	got := render(t, ctx, Fragment([]Toast{{Kind: ToastError, Message: "Company required"}}, enLoc()))
	if !strings.HasPrefix(got, "<form></form>") {
		t.Fatalf("fragment should start with children: %s", got)
	}
	if !strings.Contains(got, `hx-swap-oob="beforeend"`) || !strings.Contains(got, "Company required") {
		t.Fatalf("fragment missing oob toast: %s", got)
	}

	if got := render(t, context.Background(), OOBToasts(nil, enLoc())); got != "" {
		t.Fatalf("OOBToasts(nil) = %q, want empty", got)
	}
}

func TestCategoriesLoadingShowsOnlyIndicator(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), CategoriesLoading(enLoc()))
	if !strings.Contains(got, `hx-get="/categories/grid"`) || !strings.Contains(got, `hx-trigger="load"`) {
		t.Fatalf("loading placeholder missing lazy load: %s", got)
	}
	if !strings.Contains(got, "loading loading-ring") {
		t.Fatalf("loading placeholder missing spinner: %s", got)
	}
	if strings.Contains(got, "Browse Job Sectors") {
		t.Fatalf("loading placeholder should not render the heading: %s", got)
	}
}

func TestCategoryGridStates(t *testing.T) {
	t.Parallel()

	t.Run("error", func(t *testing.T) {
		got := render(t, context.Background(), CategoryGrid(CategoryGridView{Error: "Failed to fetch categories"}, enLoc()))
		if !strings.Contains(got, "Failed to fetch categories") || strings.Contains(got, "data-category-tile") {
			t.Fatalf("error grid = %s", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got := render(t, context.Background(), CategoryGrid(CategoryGridView{}, enLoc()))
		if !strings.Contains(got, "No categories found") {
			t.Fatalf("empty grid = %s", got)
		}
		if strings.Contains(got, "data-browse-all") {
			t.Fatalf("empty grid should not render the browse-all tile: %s", got)
		}
	})

	t.Run("tiles", func(t *testing.T) {
		got := render(t, context.Background(), CategoryGrid(CategoryGridView{Tiles: []CategoryTileView{
			{ID: "1", Name: "Web <Development>", JobCount: 345, Icon: icons.IDDevelopment},
		}}, enLoc()))
		for _, want := range []string{
			"Browse Job Sectors",
			"Find jobs by category",
			"Web &lt;Development&gt;",
			"345 jobs available",
			`href="/jobs?category=1"`,
			`data-icon="development"`,
			"text-green-600",
			"Browse jobs",
			"BROWSE ALL SECTORS",
			"Explore all job categories",
			`href="/jobs"`,
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("grid missing %q in %s", want, got)
			}
		}
		if n := strings.Count(got, "data-category-tile"); n != 1 {
			t.Fatalf("tile count = %d, want 1", n)
		}
	})
}

func TestJobPostFormPreservesDraft(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), JobPostForm(JobPostFormView{
		Draft: JobPostDraftView{
			Title:    "Backend Engineer",
			Salary:   "50000",
			Location: "Kochi & Ernakulam",
			Company:  "c2",
		},
		Locations: []string{"Kollam", "Kochi & Ernakulam"},
		JobTypes:  []string{"Full-time"},
		Companies: []SelectOption{{Value: "c1", Label: "Acme"}, {Value: "c2", Label: "Globex"}},
	}, enLoc()))

	for _, want := range []string{
		`value="Backend Engineer"`,
		`value="50000"`,
		`<option value="Kochi &amp; Ernakulam" selected>`,
		`<option value="c2" selected>Globex</option>`,
		`<option value="c1">Acme</option>`,
		`hx-post="/admin/jobs/create"`,
		`hx-disabled-elt=`,
		"Posting...",
		"Post Job",
		"Select category",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("form missing %q in %s", want, got)
		}
	}
}

func TestJobListStates(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), JobList(JobListView{Admin: true, Jobs: []JobView{{ID: "j1", Title: "Nurse", Positions: 2, Salary: "30000"}}}, enLoc()))
	for _, want := range []string{"My Job Postings", `href="/admin/jobs/create"`, "Nurse", "2 positions", "Salary: 30000"} {
		if !strings.Contains(got, want) {
			t.Fatalf("admin list missing %q in %s", want, got)
		}
	}

	got = render(t, context.Background(), JobList(JobListView{Error: "Failed to fetch jobs"}, enLoc()))
	if !strings.Contains(got, "Failed to fetch jobs") || strings.Contains(got, "/admin/jobs/create") {
		t.Fatalf("public error list = %s", got)
	}
}

func TestAttributesAreEscaped(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), CategoryGrid(CategoryGridView{Tiles: []CategoryTileView{
		{ID: `x" onclick="alert(1)`, Name: "Sales", Icon: icons.IDSales},
	}}, enLoc()))
	if strings.Contains(got, `" onclick="`) {
		t.Fatalf("tile id escaped into markup: %s", got)
	}
	if !strings.Contains(got, `data-category-id="x&#34; onclick=&#34;alert(1)"`) {
		t.Fatalf("tile id not escaped as attribute: %s", got)
	}
}

func TestJobPostInputOmitsEmptyOptionalAttributes(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), JobPostForm(JobPostFormView{}, enLoc()))
	if !strings.Contains(got, `name="position" value="" min="1">`) {
		t.Fatalf("position input missing min: %s", got)
	}
	if strings.Contains(got, `name="experienceLevel" value="" placeholder=`) {
		t.Fatalf("experience level should have no placeholder: %s", got)
	}
}

func TestErrorState(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), ErrorState(404, enLoc()))
	if !strings.Contains(got, "Page not found") || !strings.Contains(got, `data-status="404"`) {
		t.Fatalf("error state = %s", got)
	}
	if ErrorPageTitle(503, enLoc()) != "Something went wrong" {
		t.Fatalf("ErrorPageTitle(503) = %q", ErrorPageTitle(503, enLoc()))
	}
}
