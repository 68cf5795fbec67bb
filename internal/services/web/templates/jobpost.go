package templates

// JobPostFormID is the form element replaced on failed submissions.
const JobPostFormID = "job-post-form"

const jobPostSubmitID = "job-post-submit"

// SelectOption is one choice in a select field.
type SelectOption struct {
	Value string
	Label string
}

// JobPostDraftView carries the raw field values as typed by the user.
type JobPostDraftView struct {
	Title           string
	Description     string
	Requirements    string
	Salary          string
	ExperienceLevel string
	Location        string
	JobType         string
	Position        string
	Company         string
	Category        string
}

// JobPostFormView is the job posting form state.
type JobPostFormView struct {
	Draft      JobPostDraftView
	Locations  []string
	JobTypes   []string
	Companies  []SelectOption
	Categories []SelectOption
}

type inputField struct {
	name        string
	labelKey    string
	placeholder string
	inputType   string
	min         string
	value       string
	wide        bool
}

func (f inputField) id() string {
	return "job-" + f.name
}

func (f inputField) typeOrText() string {
	if f.inputType == "" {
		return "text"
	}
	return f.inputType
}

type selectField struct {
	name           string
	labelKey       string
	placeholderKey string
	value          string
	options        []SelectOption
}

func (f selectField) id() string {
	return "job-" + f.name
}

func (f selectField) selected(option SelectOption) bool {
	return f.value != "" && option.Value == f.value
}

func plainOptions(values []string) []SelectOption {
	options := make([]SelectOption, 0, len(values))
	for _, value := range values {
		options = append(options, SelectOption{Value: value, Label: value})
	}
	return options
}
