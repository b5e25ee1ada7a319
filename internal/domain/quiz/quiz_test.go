package quiz

import (
	"errors"
	"testing"

	"gatorhire/internal/domain/job"
)

func TestAnswerAdvancesAndCompletes(t *testing.T) {
	q := New()

	if got := q.Current(); got != 0 {
		t.Fatalf("expected question 0, got %d", got)
	}
	if _, done := q.Result(); done {
		t.Fatal("fresh quiz should have no result")
	}

	for i := 0; i < len(Questions()); i++ {
		if err := q.Answer(0); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	if _, done := q.Result(); !done {
		t.Fatal("expected a result after the last answer")
	}
	if err := q.Answer(0); !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected ErrCompleted, got %v", err)
	}
}

func TestAnswerRejectsInvalidOption(t *testing.T) {
	q := New()

	if err := q.Answer(-1); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if err := q.Answer(len(Questions()[0].Options)); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if got := q.Current(); got != 0 {
		t.Fatalf("invalid answer should not advance, at %d", got)
	}
}

func TestPreviousStepsBackAndClearsResult(t *testing.T) {
	q := New()

	if err := q.Previous(); !errors.Is(err, ErrAtFirst) {
		t.Fatalf("expected ErrAtFirst, got %v", err)
	}

	for i := 0; i < len(Questions()); i++ {
		if err := q.Answer(0); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	if err := q.Previous(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	if _, done := q.Result(); done {
		t.Fatal("stepping back should clear the result")
	}
	if got := q.Current(); got != len(Questions())-1 {
		t.Fatalf("expected last question again, got %d", got)
	}
}

func TestResetReturnsToInitialState(t *testing.T) {
	q := New()
	if err := q.Answer(1); err != nil {
		t.Fatalf("answer: %v", err)
	}

	q.Reset()

	if got := q.Current(); got != 0 {
		t.Fatalf("expected question 0 after reset, got %d", got)
	}
	if got := q.Answers(); len(got) != 0 {
		t.Fatalf("expected no answers after reset, got %d", len(got))
	}
}

func TestScoreDeterministicResult(t *testing.T) {
	// Technical options across all three questions lean Technology.
	q := New()
	for _, a := range []int{0, 0, 0} {
		if err := q.Answer(a); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	got, ok := q.Result()
	if !ok {
		t.Fatal("expected a result")
	}
	if got != job.CategoryTechnology {
		t.Fatalf("expected Technology, got %s", got)
	}
}

func TestScoreTieBreaksOnCanonicalOrder(t *testing.T) {
	// People-focused answers tie Healthcare and Education; Healthcare comes
	// first in the canonical order so it must win every run.
	for i := 0; i < 5; i++ {
		q := New()
		for _, a := range []int{2, 2, 2} {
			if err := q.Answer(a); err != nil {
				t.Fatalf("answer: %v", err)
			}
		}
		got, ok := q.Result()
		if !ok {
			t.Fatal("expected a result")
		}
		if got != job.CategoryHealthcare {
			t.Fatalf("run %d: expected Healthcare, got %s", i, got)
		}
	}
}

func TestSameAnswersSameResult(t *testing.T) {
	answers := []int{1, 3, 2}

	run := func() job.Category {
		q := New()
		for _, a := range answers {
			if err := q.Answer(a); err != nil {
				t.Fatalf("answer: %v", err)
			}
		}
		got, ok := q.Result()
		if !ok {
			t.Fatal("expected a result")
		}
		return got
	}

	first := run()
	for i := 0; i < 10; i++ {
		if got := run(); got != first {
			t.Fatalf("result changed between runs: %s vs %s", first, got)
		}
	}
}
