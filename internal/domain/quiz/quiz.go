package quiz

import (
	"errors"

	"gatorhire/internal/domain/job"
)

var (
	ErrInvalidOption = errors.New("invalid option index")
	ErrAtFirst       = errors.New("already at first question")
	ErrCompleted     = errors.New("quiz already completed")
)

type Option struct {
	Text       string
	Categories []job.Category
}

type Question struct {
	Prompt  string
	Options []Option
}

// Questions returns the fixed career-match question table.
func Questions() []Question {
	return questions
}

var questions = []Question{
	{
		Prompt: "What type of work environment do you prefer?",
		Options: []Option{
			{Text: "Fast-paced startup", Categories: []job.Category{job.CategoryTechnology, job.CategoryCreative}},
			{Text: "Established corporation", Categories: []job.Category{job.CategoryBusiness, job.CategoryTechnology}},
			{Text: "Community-focused organization", Categories: []job.Category{job.CategoryHealthcare, job.CategoryEducation}},
			{Text: "Flexible/remote work", Categories: []job.Category{job.CategoryTechnology, job.CategoryCreative}},
		},
	},
	{
		Prompt: "Which skills do you enjoy using the most?",
		Options: []Option{
			{Text: "Technical and analytical", Categories: []job.Category{job.CategoryTechnology, job.CategoryBusiness}},
			{Text: "Creative and design", Categories: []job.Category{job.CategoryCreative, job.CategoryHospitality}},
			{Text: "Communication and people skills", Categories: []job.Category{job.CategoryHealthcare, job.CategoryEducation, job.CategoryHospitality}},
			{Text: "Organization and management", Categories: []job.Category{job.CategoryBusiness, job.CategoryHospitality}},
		},
	},
	{
		Prompt: "What's most important to you in a job?",
		Options: []Option{
			{Text: "High salary and benefits", Categories: []job.Category{job.CategoryTechnology, job.CategoryBusiness, job.CategoryHealthcare}},
			{Text: "Work-life balance", Categories: []job.Category{job.CategoryEducation, job.CategoryCreative}},
			{Text: "Making a difference", Categories: []job.Category{job.CategoryHealthcare, job.CategoryEducation}},
			{Text: "Learning and growth", Categories: []job.Category{job.CategoryTechnology, job.CategoryBusiness, job.CategoryCreative}},
		},
	},
}

// Quiz is a small deterministic state machine over the fixed question table:
// answering appends a choice and advances, answering the last question
// computes the result instead of advancing.
type Quiz struct {
	questions []Question
	answers   []int
	result    *job.Category
}

func New() *Quiz {
	return &Quiz{questions: questions}
}

// Current returns the index of the question awaiting an answer.
func (q *Quiz) Current() int {
	if len(q.answers) >= len(q.questions) {
		return len(q.questions) - 1
	}
	return len(q.answers)
}

func (q *Quiz) Answers() []int {
	out := make([]int, len(q.answers))
	copy(out, q.answers)
	return out
}

// Answer records the option chosen for the current question. Answering the
// final question computes the result.
func (q *Quiz) Answer(option int) error {
	if q.result != nil {
		return ErrCompleted
	}
	cur := q.questions[q.Current()]
	if option < 0 || option >= len(cur.Options) {
		return ErrInvalidOption
	}

	q.answers = append(q.answers, option)
	if len(q.answers) == len(q.questions) {
		r := score(q.questions, q.answers)
		q.result = &r
	}
	return nil
}

// Previous removes the most recent answer and steps back one question.
func (q *Quiz) Previous() error {
	if len(q.answers) == 0 {
		return ErrAtFirst
	}
	q.answers = q.answers[:len(q.answers)-1]
	q.result = nil
	return nil
}

// Reset returns the quiz to its initial state.
func (q *Quiz) Reset() {
	q.answers = nil
	q.result = nil
}

// Result returns the matched category once every question is answered.
func (q *Quiz) Result() (job.Category, bool) {
	if q.result == nil {
		return "", false
	}
	return *q.result, true
}

// score tallies, per category, how many chosen options list it, and picks the
// highest tally. Ties break on the canonical category order so the outcome is
// reproducible.
func score(qs []Question, answers []int) job.Category {
	counts := map[job.Category]int{}
	for i, a := range answers {
		for _, c := range qs[i].Options[a].Categories {
			counts[c]++
		}
	}

	best := job.CategoryTechnology
	bestCount := 0
	for _, c := range job.Categories() {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	return best
}
