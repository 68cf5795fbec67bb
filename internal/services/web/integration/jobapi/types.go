package jobapi

import (
	"bytes"
	"encoding/json"
	"time"
)

// Category is a job sector.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Company is a hiring company.
type Company struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// CompanyRef is a job's company, sent either as an id or a populated record.
type CompanyRef struct {
	Company
}

// UnmarshalJSON accepts a bare id string or a company object.
func (c *CompanyRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return json.Unmarshal(data, &c.Company)
}

// Job is a job listing as returned by the backend.
type Job struct {
	ID              string     `json:"_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Requirements    []string   `json:"requirements"`
	Salary          Number     `json:"salary"`
	ExperienceLevel Number     `json:"experienceLevel"`
	Location        string     `json:"location"`
	JobType         string     `json:"jobType"`
	Position        Number     `json:"position"`
	Company         CompanyRef `json:"company"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// JobPayload is the job creation request body.
type JobPayload struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	Salary          Number   `json:"salary"`
	ExperienceLevel Number   `json:"experienceLevel"`
	Location        string   `json:"location"`
	JobType         string   `json:"jobType"`
	Position        Number   `json:"position"`
	Company         string   `json:"company"`
	Category        string   `json:"category"`
}

// envelope is the status part shared by every backend response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e envelope) status() envelope { return e }

type response interface {
	status() envelope
}

type categoriesResponse struct {
	envelope
	Categories []Category `json:"categories"`
}

type companiesResponse struct {
	envelope
	Companies []Company `json:"companies"`
}

type jobsResponse struct {
	envelope
	Jobs []Job `json:"jobs"`
}

type createJobResponse struct {
	envelope
}
