package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"gatorhire/internal/domain/job"
	"gatorhire/internal/domain/user"
	"gatorhire/internal/infrastructure/cache"
	"gatorhire/internal/repository"

	"github.com/google/uuid"
)

// ListingCache is the slice of the Redis wrapper the job usecase needs.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type CreateJobInput struct {
	Title            string
	Company          string
	Location         string
	Type             string
	Salary           string
	Description      string
	Requirements     []string
	Responsibilities []string
	Benefits         []string
	Category         job.Category
	CompanyInfo      *job.CompanyInfo
}

type UpdateJobInput struct {
	CreateJobInput
	Status string
}

type JobUsecase interface {
	List(ctx context.Context) ([]job.Job, error)
	ListAdmin(ctx context.Context) ([]job.Job, error)
	Get(ctx context.Context, id string) (job.Job, error)
	Search(ctx context.Context, params repository.JobSearchParams) ([]job.Job, error)
	Create(ctx context.Context, in CreateJobInput, createdBy string) (job.Job, error)
	Update(ctx context.Context, id string, in UpdateJobInput, actorID string) error
	Delete(ctx context.Context, id string, actorID string) error
	RecommendationsFor(ctx context.Context, userID uuid.UUID) ([]job.Job, error)
}

const activeJobsCacheKey = "jobs:active"

type Jobs struct {
	jobs   repository.JobRepository
	users  user.Repository
	cache  ListingCache
	logger *log.Logger
}

func NewJobUsecase(jobs repository.JobRepository, users user.Repository, c ListingCache, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, users: users, cache: c, logger: logger}
}

func (u *Jobs) List(ctx context.Context) ([]job.Job, error) {
	if u.cache != nil {
		var cached []job.Job
		if hit, err := u.cache.GetJSON(ctx, activeJobsCacheKey, &cached); err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] cache hit: %s", activeJobsCacheKey)
			}
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, activeJobsCacheKey, jobs, cache.DefaultTTL)
	}
	return jobs, nil
}

func (u *Jobs) ListAdmin(ctx context.Context) ([]job.Job, error) {
	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Jobs) Get(ctx context.Context, id string) (job.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return job.Job{}, ErrInvalidInput
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) Search(ctx context.Context, params repository.JobSearchParams) ([]job.Job, error) {
	key := searchCacheKey(params)
	if u.cache != nil {
		var cached []job.Job
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] cache hit: %s", key)
			}
			return cached, nil
		}
	}

	jobs, err := u.jobs.Search(ctx, params)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, jobs, cache.DefaultTTL)
	}
	return jobs, nil
}

func (u *Jobs) Create(ctx context.Context, in CreateJobInput, createdBy string) (job.Job, error) {
	if err := validateJobInput(in); err != nil {
		return job.Job{}, err
	}

	j := job.Job{
		ID:               uuid.NewString(),
		Title:            strings.TrimSpace(in.Title),
		Company:          strings.TrimSpace(in.Company),
		Location:         strings.TrimSpace(in.Location),
		Type:             strings.TrimSpace(in.Type),
		Salary:           strings.TrimSpace(in.Salary),
		Description:      in.Description,
		Requirements:     in.Requirements,
		Responsibilities: in.Responsibilities,
		Benefits:         in.Benefits,
		PostedDate:       time.Now().UTC(),
		Category:         in.Category,
		Status:           job.StatusActive,
		CompanyInfo:      in.CompanyInfo,
		CreatedBy:        createdBy,
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	u.dropListingCache(ctx)
	return j, nil
}

func (u *Jobs) Update(ctx context.Context, id string, in UpdateJobInput, actorID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if err := validateJobInput(in.CreateJobInput); err != nil {
		return err
	}
	status := in.Status
	if status == "" {
		status = job.StatusActive
	}
	if status != job.StatusActive && status != job.StatusClosed && status != job.StatusDraft {
		return ErrInvalidInput
	}

	existing, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}
	if existing.CreatedBy != "" && existing.CreatedBy != actorID {
		return ErrForbidden
	}

	j := job.Job{
		ID:               id,
		Title:            strings.TrimSpace(in.Title),
		Company:          strings.TrimSpace(in.Company),
		Location:         strings.TrimSpace(in.Location),
		Type:             strings.TrimSpace(in.Type),
		Salary:           strings.TrimSpace(in.Salary),
		Description:      in.Description,
		Requirements:     in.Requirements,
		Responsibilities: in.Responsibilities,
		Benefits:         in.Benefits,
		Category:         in.Category,
		Status:           status,
		CompanyInfo:      in.CompanyInfo,
	}

	if err := u.jobs.Update(ctx, j); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}

	u.dropListingCache(ctx)
	return nil
}

func (u *Jobs) Delete(ctx context.Context, id string, actorID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	existing, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}
	if existing.CreatedBy != "" && existing.CreatedBy != actorID {
		return ErrForbidden
	}

	stats, err := u.jobs.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}
	if u.logger != nil {
		u.logger.Printf("[Jobs] deleted %s (saved entries: %d, applications: %d)", id, stats.SavedEntries, stats.Applications)
	}

	u.dropListingCache(ctx)
	return nil
}

// RecommendationsFor matches the caller's profile skills against job
// requirement entries.
func (u *Jobs) RecommendationsFor(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, ErrInternal
	}

	if len(usr.Skills) == 0 {
		return []job.Job{}, nil
	}

	jobs, err := u.jobs.SearchByRequirements(ctx, usr.Skills, 10)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Jobs) dropListingCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, activeJobsCacheKey)
}

func validateJobInput(in CreateJobInput) error {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Company) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.Type) == "" ||
		strings.TrimSpace(in.Salary) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		len(in.Requirements) == 0 {
		return ErrInvalidInput
	}
	if !job.ValidCategory(in.Category) {
		return ErrInvalidInput
	}
	return nil
}

type searchCacheKeyInput struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

func searchCacheKey(params repository.JobSearchParams) string {
	in := searchCacheKeyInput{
		Query:    normalizeSearchValue(params.Query),
		Category: normalizeSearchValue(params.Category),
		Type:     normalizeSearchValue(params.Type),
		Location: normalizeSearchValue(params.Location),
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}

func normalizeSearchValue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
