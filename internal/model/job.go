package model

import "time"

// JobStatus tracks a posting through its lifecycle.
type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
	JobFilled JobStatus = "filled"
)

// Job is a rigging job posting.
type Job struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Company      string       `json:"company"`
	Description  string       `json:"description"`
	Requirements []string     `json:"requirements"`
	Skills       []string     `json:"skills"`
	Location     string       `json:"location"`
	Salary       float64      `json:"salary,omitempty"`
	SalaryRange  *SalaryRange `json:"salaryRange,omitempty"`
	EmployerID   string       `json:"employerId"`
	Status       JobStatus    `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// SalaryRange is an annual salary band in AUD.
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CreateJobRequest is the payload for posting a new job.
type CreateJobRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       float64  `json:"salary,omitempty"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
}

// JobFilters narrows a job search. Zero values mean "no constraint".
type JobFilters struct {
	Location   string
	Skill      string
	SalaryMin  float64
	SalaryMax  float64
	SearchTerm string
}
