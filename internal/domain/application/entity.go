package application

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("application not found")

const (
	StatusPending   = "pending"
	StatusReviewed  = "reviewed"
	StatusInterview = "interview"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusInterview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application is a user's submission against a job. Status starts at pending
// and is mutated only by admin review.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	UserID      string    `json:"userId,omitempty"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	ResumeURL   string    `json:"resumeUrl,omitempty"`
	LinkedIn    string    `json:"linkedIn,omitempty"`
	Portfolio   string    `json:"portfolio,omitempty"`
	HeardFrom   string    `json:"heardFrom,omitempty"`
	Status      string    `json:"status,omitempty"`
	AppliedDate time.Time `json:"appliedDate"`

	// denormalized job summary for listing views
	JobTitle string `json:"jobTitle,omitempty"`
	Company  string `json:"company,omitempty"`
}
