package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gatorhire/internal/domain/job"
	"gatorhire/internal/domain/savedjob"
	"gatorhire/internal/repository"

	"github.com/google/uuid"
)

type SavedJobUsecase interface {
	Save(ctx context.Context, userID, jobID string) error
	Unsave(ctx context.Context, userID, jobID string) error
	BulkUnsave(ctx context.Context, userID string, jobIDs []string) (int64, error)
	List(ctx context.Context, userID string) ([]savedjob.SavedJob, error)
}

type SavedJobs struct {
	saved repository.SavedJobRepository
	jobs  repository.JobRepository
}

func NewSavedJobUsecase(saved repository.SavedJobRepository, jobs repository.JobRepository) *SavedJobs {
	return &SavedJobs{saved: saved, jobs: jobs}
}

func (u *SavedJobs) Save(ctx context.Context, userID, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidInput
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return job.ErrNotFound
	}

	saved, err := u.saved.Exists(ctx, userID, jobID)
	if err != nil {
		return ErrInternal
	}
	if saved {
		return savedjob.ErrAlreadySaved
	}

	s := savedjob.SavedJob{
		ID:        uuid.NewString(),
		UserID:    userID,
		JobID:     jobID,
		SavedDate: time.Now().UTC(),
	}
	if err := u.saved.Save(ctx, s); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *SavedJobs) Unsave(ctx context.Context, userID, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidInput
	}
	if err := u.saved.Delete(ctx, userID, jobID); err != nil {
		if errors.Is(err, savedjob.ErrNotFound) {
			return savedjob.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *SavedJobs) BulkUnsave(ctx context.Context, userID string, jobIDs []string) (int64, error) {
	ids := make([]string, 0, len(jobIDs))
	for _, id := range jobIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return 0, ErrInvalidInput
	}

	n, err := u.saved.BulkDelete(ctx, userID, ids)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}

func (u *SavedJobs) List(ctx context.Context, userID string) ([]savedjob.SavedJob, error) {
	items, err := u.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
