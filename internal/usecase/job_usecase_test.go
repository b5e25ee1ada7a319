package usecase

import (
	"context"
	"errors"
	"testing"

	"gatorhire/internal/domain/job"
	"gatorhire/internal/domain/user"
	"gatorhire/internal/repository"

	"github.com/google/uuid"
)

func validCreateInput() CreateJobInput {
	return CreateJobInput{
		Title:        "Software Engineer",
		Company:      "Gator Labs",
		Location:     "Gainesville, FL",
		Type:         "Full-time",
		Salary:       "$90,000",
		Description:  "Build things.",
		Requirements: []string{"Go"},
		Category:     job.CategoryTechnology,
	}
}

func TestJobsListCachesActiveListings(t *testing.T) {
	repo := newMockJobRepo(job.Job{ID: "1", Status: job.StatusActive})
	c := newMockCache()
	uc := NewJobUsecase(repo, newMockUserRepo(), c, nil)

	first, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 job, got %d", len(first))
	}
	if len(c.sets) != 1 {
		t.Fatalf("expected one cache fill, got %d", len(c.sets))
	}

	// Second call must come from the cache, not the repository.
	repo.err = errors.New("db down")
	second, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("cached list: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected cached job, got %d", len(second))
	}
}

func TestJobsCreateAssignsServerFields(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, newMockUserRepo(), newMockCache(), nil)

	created, err := uc.Create(context.Background(), validCreateInput(), "admin-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.Status != job.StatusActive {
		t.Fatalf("expected active status, got %s", created.Status)
	}
	if created.PostedDate.IsZero() {
		t.Fatal("expected a posted date")
	}
	if created.CreatedBy != "admin-1" {
		t.Fatalf("creator not recorded: %q", created.CreatedBy)
	}
}

func TestJobsCreateValidation(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), newMockUserRepo(), newMockCache(), nil)

	cases := []struct {
		name   string
		mutate func(*CreateJobInput)
	}{
		{"missing title", func(in *CreateJobInput) { in.Title = " " }},
		{"missing salary", func(in *CreateJobInput) { in.Salary = "" }},
		{"no requirements", func(in *CreateJobInput) { in.Requirements = nil }},
		{"bad category", func(in *CreateJobInput) { in.Category = "Finance" }},
		{"all sentinel category", func(in *CreateJobInput) { in.Category = job.CategoryAll }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateInput()
			tc.mutate(&in)
			if _, err := uc.Create(context.Background(), in, "admin-1"); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestJobsUpdateEnforcesOwnership(t *testing.T) {
	repo := newMockJobRepo(job.Job{ID: "j-1", Status: job.StatusActive, CreatedBy: "owner"})
	uc := NewJobUsecase(repo, newMockUserRepo(), newMockCache(), nil)

	in := UpdateJobInput{CreateJobInput: validCreateInput()}
	if err := uc.Update(context.Background(), "j-1", in, "intruder"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := uc.Update(context.Background(), "j-1", in, "owner"); err != nil {
		t.Fatalf("owner update: %v", err)
	}
}

func TestJobsUpdateInvalidatesListingCache(t *testing.T) {
	repo := newMockJobRepo(job.Job{ID: "j-1", Status: job.StatusActive, CreatedBy: "owner"})
	c := newMockCache()
	uc := NewJobUsecase(repo, newMockUserRepo(), c, nil)

	if _, err := uc.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}

	in := UpdateJobInput{CreateJobInput: validCreateInput()}
	if err := uc.Update(context.Background(), "j-1", in, "owner"); err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(c.deletes) == 0 || c.deletes[0] != "jobs:active" {
		t.Fatalf("expected listing cache drop, got %v", c.deletes)
	}
}

func TestJobsDeleteMissing(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), newMockUserRepo(), newMockCache(), nil)

	if err := uc.Delete(context.Background(), "missing", "admin-1"); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobsSearchCachesByNormalizedParams(t *testing.T) {
	repo := newMockJobRepo()
	repo.searchResult = []job.Job{{ID: "1"}}
	c := newMockCache()
	uc := NewJobUsecase(repo, newMockUserRepo(), c, nil)

	params := repository.JobSearchParams{Query: "  Engineer  ", Category: "Technology"}
	if _, err := uc.Search(context.Background(), params); err != nil {
		t.Fatalf("search: %v", err)
	}

	// Same params modulo whitespace and case hit the same cache entry.
	repo.err = errors.New("db down")
	got, err := uc.Search(context.Background(), repository.JobSearchParams{Query: "engineer", Category: "Technology"})
	if err != nil {
		t.Fatalf("cached search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected cached result, got %d jobs", len(got))
	}
}

func TestRecommendationsUseProfileSkills(t *testing.T) {
	userID := uuid.New()
	users := newMockUserRepo(user.User{ID: userID, Email: "a@b.c", Skills: []string{"Go", "SQL"}})
	repo := newMockJobRepo()
	repo.searchResult = []job.Job{{ID: "1"}, {ID: "2"}}
	uc := NewJobUsecase(repo, users, newMockCache(), nil)

	got, err := uc.RecommendationsFor(context.Background(), userID)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(got))
	}
	if len(repo.reqKeywords) != 2 || repo.reqKeywords[0] != "Go" {
		t.Fatalf("skills not forwarded: %v", repo.reqKeywords)
	}
}

func TestRecommendationsWithoutSkills(t *testing.T) {
	userID := uuid.New()
	users := newMockUserRepo(user.User{ID: userID, Email: "a@b.c"})
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, users, newMockCache(), nil)

	got, err := uc.RecommendationsFor(context.Background(), userID)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no jobs for empty skills, got %d", len(got))
	}
	if repo.reqKeywords != nil {
		t.Fatal("repository should not be queried without skills")
	}
}
