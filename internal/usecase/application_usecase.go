package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gatorhire/internal/domain/application"
	"gatorhire/internal/domain/job"
	"gatorhire/internal/repository"

	"github.com/google/uuid"
)

var ErrAlreadyApplied = errors.New("already applied to this job")

// ApplicationNotifier fans application events out to live dashboard
// subscribers. Implementations must not block.
type ApplicationNotifier interface {
	ApplicationReceived(a application.Application)
	ApplicationStatusChanged(applicationID, status string)
}

type SubmitApplicationInput struct {
	FullName    string
	Email       string
	Phone       string
	CoverLetter string
	ResumeURL   string
	LinkedIn    string
	Portfolio   string
	HeardFrom   string
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, jobID string, in SubmitApplicationInput, userID string) (application.Application, error)
	ListForUser(ctx context.Context, userID string) ([]application.Application, error)
	ListForJob(ctx context.Context, jobID string) ([]application.Application, error)
	UpdateStatus(ctx context.Context, applicationID, status string) error
}

type Applications struct {
	apps     repository.ApplicationRepository
	jobs     repository.JobRepository
	notifier ApplicationNotifier
}

func NewApplicationUsecase(apps repository.ApplicationRepository, jobs repository.JobRepository, notifier ApplicationNotifier) *Applications {
	return &Applications{apps: apps, jobs: jobs, notifier: notifier}
}

func (u *Applications) Submit(ctx context.Context, jobID string, in SubmitApplicationInput, userID string) (application.Application, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return application.Application{}, ErrInvalidInput
	}

	fullName := strings.TrimSpace(in.FullName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if fullName == "" || email == "" {
		return application.Application{}, ErrInvalidInput
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if !exists {
		return application.Application{}, job.ErrNotFound
	}

	applied, err := u.apps.ExistsByJobAndEmail(ctx, jobID, email)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if applied {
		return application.Application{}, ErrAlreadyApplied
	}

	a := application.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		UserID:      userID,
		FullName:    fullName,
		Email:       email,
		Phone:       strings.TrimSpace(in.Phone),
		CoverLetter: in.CoverLetter,
		ResumeURL:   strings.TrimSpace(in.ResumeURL),
		LinkedIn:    strings.TrimSpace(in.LinkedIn),
		Portfolio:   strings.TrimSpace(in.Portfolio),
		HeardFrom:   strings.TrimSpace(in.HeardFrom),
		Status:      application.StatusPending,
		AppliedDate: time.Now().UTC(),
	}

	if err := u.apps.Create(ctx, a); err != nil {
		return application.Application{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.ApplicationReceived(a)
	}
	return a, nil
}

func (u *Applications) ListForUser(ctx context.Context, userID string) ([]application.Application, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	apps, err := u.apps.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Applications) ListForJob(ctx context.Context, jobID string) ([]application.Application, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, ErrInvalidInput
	}
	apps, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, applicationID, status string) error {
	applicationID = strings.TrimSpace(applicationID)
	status = strings.TrimSpace(status)
	if applicationID == "" || !application.ValidStatus(status) {
		return ErrInvalidInput
	}

	if err := u.apps.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.ErrNotFound
		}
		return ErrInternal
	}

	if u.notifier != nil {
		u.notifier.ApplicationStatusChanged(applicationID, status)
	}
	return nil
}
