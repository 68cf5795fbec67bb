package jobpost

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/louisbranch/jobportal/internal/services/web/integration/jobapi"
)

// Draft holds the form values exactly as typed.
//
// Field order is the order missing fields are reported in.
type Draft struct {
	Title           string `form:"title" validate:"required"`
	Description     string `form:"description" validate:"required"`
	Requirements    string `form:"requirements" validate:"required"`
	Salary          string `form:"salary" validate:"required"`
	ExperienceLevel string `form:"experienceLevel" validate:"required"`
	Location        string `form:"location" validate:"required"`
	JobType         string `form:"jobType" validate:"required"`
	Position        string `form:"position" validate:"required"`
	Company         string `form:"company" validate:"required"`
	Category        string `form:"category" validate:"required"`
}

var draftValidator = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func draftFromForm(values url.Values) Draft {
	return Draft{
		Title:           values.Get("title"),
		Description:     values.Get("description"),
		Requirements:    values.Get("requirements"),
		Salary:          values.Get("salary"),
		ExperienceLevel: values.Get("experienceLevel"),
		Location:        values.Get("location"),
		JobType:         values.Get("jobType"),
		Position:        values.Get("position"),
		Company:         values.Get("company"),
		Category:        values.Get("category"),
	}
}

// missingFields lists the form names of empty required fields in
// declaration order. Whitespace-only values count as present.
func missingFields(d Draft) []string {
	var verrs validator.ValidationErrors
	if !errors.As(draftValidator.Struct(d), &verrs) {
		return nil
	}
	missing := make([]string, 0, len(verrs))
	for _, fieldErr := range verrs {
		missing = append(missing, fieldErr.Field())
	}
	return missing
}

// payload normalizes a draft for submission.
func (d Draft) payload() jobapi.JobPayload {
	return jobapi.JobPayload{
		Title:           d.Title,
		Description:     d.Description,
		Requirements:    splitRequirements(d.Requirements),
		Salary:          jobapi.ParseNumber(d.Salary),
		ExperienceLevel: jobapi.ParseNumber(d.ExperienceLevel),
		Location:        d.Location,
		JobType:         d.JobType,
		Position:        jobapi.ParseNumber(d.Position),
		Company:         d.Company,
		Category:        d.Category,
	}
}

// splitRequirements splits on commas and trims each segment. Empty segments
// are kept in place.
func splitRequirements(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
