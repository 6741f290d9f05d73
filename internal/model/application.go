package model

import "time"

// ApplicationStatus tracks a job application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is a worker's application to a job.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	ApplicantID string            `json:"applicantId"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	ResumeURL   string            `json:"resumeUrl,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
	Job         *Job              `json:"job,omitempty"`
	Applicant   *User             `json:"applicant,omitempty"`
}

// CreateApplicationRequest is the payload for applying to a job.
type CreateApplicationRequest struct {
	JobID       string `json:"jobId"`
	CoverLetter string `json:"coverLetter,omitempty"`
	ResumeURL   string `json:"resumeUrl,omitempty"`
}

// UpdateApplicationStatusRequest moves an application to a new status.
type UpdateApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status"`
}
