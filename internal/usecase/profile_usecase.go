package usecase

import (
	"context"
	"errors"
	"strings"

	"gatorhire/internal/domain/user"
	"gatorhire/internal/repository"

	"github.com/google/uuid"
)

type ProfileStats struct {
	ApplicationsCount   int     `json:"applicationsCount"`
	SavedJobsCount      int     `json:"savedJobsCount"`
	ProfileCompleteness float64 `json:"profileCompleteness"`
}

type UpdateProfileInput struct {
	FullName *string
	Title    *string
	Location *string
	Bio      *string
	Skills   []string
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (user.User, error)
	Update(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
	Stats(ctx context.Context, userID uuid.UUID) (ProfileStats, error)
}

type Profiles struct {
	users user.Repository
	apps  repository.ApplicationRepository
	saved repository.SavedJobRepository
}

func NewProfileUsecase(users user.Repository, apps repository.ApplicationRepository, saved repository.SavedJobRepository) *Profiles {
	return &Profiles{users: users, apps: apps, saved: saved}
}

func (u *Profiles) Get(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (u *Profiles) Update(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.FullName = name
	}
	if in.Title != nil {
		usr.Title = in.Title
	}
	if in.Location != nil {
		usr.Location = in.Location
	}
	if in.Bio != nil {
		usr.Bio = in.Bio
	}
	if in.Skills != nil {
		usr.Skills = in.Skills
	}

	if err := u.users.Update(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}

	usr.PasswordHash = ""
	return usr, nil
}

func (u *Profiles) Stats(ctx context.Context, userID uuid.UUID) (ProfileStats, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ProfileStats{}, user.ErrNotFound
		}
		return ProfileStats{}, ErrInternal
	}

	applications, err := u.apps.CountByUser(ctx, userID.String())
	if err != nil {
		return ProfileStats{}, ErrInternal
	}
	savedCount, err := u.saved.CountByUser(ctx, userID.String())
	if err != nil {
		return ProfileStats{}, ErrInternal
	}

	return ProfileStats{
		ApplicationsCount:   applications,
		SavedJobsCount:      savedCount,
		ProfileCompleteness: Completeness(usr),
	}, nil
}

// Completeness scores a profile over five fields. The full name is required
// at registration so it always counts.
func Completeness(u user.User) float64 {
	total := 5.0
	filled := 1.0
	if u.Title != nil && strings.TrimSpace(*u.Title) != "" {
		filled++
	}
	if u.Location != nil && strings.TrimSpace(*u.Location) != "" {
		filled++
	}
	if u.Bio != nil && strings.TrimSpace(*u.Bio) != "" {
		filled++
	}
	if len(u.Skills) > 0 {
		filled++
	}
	return filled / total * 100
}
