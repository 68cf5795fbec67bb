package jobpost

import (
	"math"
	"net/url"
	"reflect"
	"testing"
)

func completeDraft() Draft {
	return Draft{
		Title:           "Backend Engineer",
		Description:     "Build APIs",
		Requirements:    "Go, SQL",
		Salary:          "50000",
		ExperienceLevel: "3",
		Location:        "Kochi",
		JobType:         "Full-time",
		Position:        "2",
		Company:         "c1",
		Category:        "k1",
	}
}

func TestMissingFieldsInDeclarationOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft Draft
		want  []string
	}{
		{name: "complete", draft: completeDraft(), want: nil},
		{name: "all empty", draft: Draft{}, want: []string{
			"title", "description", "requirements", "salary", "experienceLevel",
			"location", "jobType", "position", "company", "category",
		}},
		{name: "two missing", draft: func() Draft {
			d := completeDraft()
			d.Category = ""
			d.Description = ""
			return d
		}(), want: []string{"description", "category"}},
		{name: "whitespace counts as present", draft: func() Draft {
			d := completeDraft()
			d.Title = "  "
			return d
		}(), want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := missingFields(tc.draft)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("missingFields() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSplitRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want []string
	}{
		{raw: " a, b ,c", want: []string{"a", "b", "c"}},
		{raw: "a,,b", want: []string{"a", "", "b"}},
		{raw: "solo", want: []string{"solo"}},
		{raw: "a,", want: []string{"a", ""}},
	}
	for _, tc := range tests {
		if got := splitRequirements(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitRequirements(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestPayloadCoercesNumbers(t *testing.T) {
	t.Parallel()

	d := completeDraft()
	d.ExperienceLevel = "three"
	p := d.payload()
	if p.Salary != 50000 || p.Position != 2 {
		t.Fatalf("numbers = %v %v", p.Salary, p.Position)
	}
	if !math.IsNaN(float64(p.ExperienceLevel)) {
		t.Fatalf("experienceLevel = %v, want NaN", p.ExperienceLevel)
	}
	if p.Title != d.Title || p.Company != "c1" || p.Category != "k1" || p.Location != "Kochi" {
		t.Fatalf("verbatim fields changed: %+v", p)
	}
	if !reflect.DeepEqual(p.Requirements, []string{"Go", "SQL"}) {
		t.Fatalf("requirements = %q", p.Requirements)
	}
}

func TestDraftFromForm(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"title":           {"T"},
		"experienceLevel": {"4"},
		"jobType":         {"Contract"},
		"company":         {"c9"},
	}
	d := draftFromForm(values)
	if d.Title != "T" || d.ExperienceLevel != "4" || d.JobType != "Contract" || d.Company != "c9" || d.Salary != "" {
		t.Fatalf("draft = %+v", d)
	}
}
