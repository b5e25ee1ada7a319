package savedjob

import (
	"errors"
	"time"

	"gatorhire/internal/domain/job"
)

var ErrNotFound = errors.New("saved job not found")
var ErrAlreadySaved = errors.New("job already saved")

// SavedJob is a user's bookmark of a job, carrying a denormalized copy of the
// job for listing without a second fetch.
type SavedJob struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	JobID     string    `json:"jobId"`
	SavedDate time.Time `json:"savedDate"`
	Job       job.Job   `json:"job"`
}
