package usecase

import (
	"context"
	"errors"
	"testing"

	"gatorhire/internal/domain/job"
	"gatorhire/internal/domain/savedjob"
)

func TestSaveThenBulkUnsave(t *testing.T) {
	jobs := newMockJobRepo(job.Job{ID: "j-1"}, job.Job{ID: "j-2"})
	saved := &mockSavedJobRepo{}
	uc := NewSavedJobUsecase(saved, jobs)
	ctx := context.Background()

	if err := uc.Save(ctx, "u-1", "j-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := uc.Save(ctx, "u-1", "j-2"); err != nil {
		t.Fatalf("save: %v", err)
	}

	n, err := uc.BulkUnsave(ctx, "u-1", []string{"j-1", "j-2", "  "})
	if err != nil {
		t.Fatalf("bulk unsave: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 removed, got %d", n)
	}

	items, err := uc.List(ctx, "u-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}
}

func TestSaveDuplicate(t *testing.T) {
	jobs := newMockJobRepo(job.Job{ID: "j-1"})
	uc := NewSavedJobUsecase(&mockSavedJobRepo{}, jobs)
	ctx := context.Background()

	if err := uc.Save(ctx, "u-1", "j-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := uc.Save(ctx, "u-1", "j-1"); !errors.Is(err, savedjob.ErrAlreadySaved) {
		t.Fatalf("expected ErrAlreadySaved, got %v", err)
	}
}

func TestSaveUnknownJob(t *testing.T) {
	uc := NewSavedJobUsecase(&mockSavedJobRepo{}, newMockJobRepo())

	if err := uc.Save(context.Background(), "u-1", "ghost"); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected job.ErrNotFound, got %v", err)
	}
}

func TestUnsaveMissing(t *testing.T) {
	uc := NewSavedJobUsecase(&mockSavedJobRepo{}, newMockJobRepo())

	if err := uc.Unsave(context.Background(), "u-1", "j-1"); !errors.Is(err, savedjob.ErrNotFound) {
		t.Fatalf("expected savedjob.ErrNotFound, got %v", err)
	}
}

func TestBulkUnsaveRequiresIDs(t *testing.T) {
	uc := NewSavedJobUsecase(&mockSavedJobRepo{}, newMockJobRepo())

	if _, err := uc.BulkUnsave(context.Background(), "u-1", []string{" ", ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
