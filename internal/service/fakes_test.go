package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/repository"
	"github.com/aliskhannn/patterns-quiz-bot/internal/storage"
)

func newQuestion(id, category string, n, correct int) entities.Question {
	opts := make([]entities.Option, n)
	for i := range opts {
		opts[i] = entities.Option{Text: fmt.Sprintf("%s-o%d", id, i), IsCorrect: i == correct}
	}
	return entities.Question{
		ID:          id,
		Pattern:     "pattern-" + id,
		Category:    category,
		Prompt:      "prompt " + id,
		Options:     opts,
		Explanation: "because " + id,
	}
}

// threeQuestions returns a quiz with correct indices [1, 0, 2].
func threeQuestions() []entities.Question {
	return []entities.Question{
		newQuestion("q1", "creational", 3, 1),
		newQuestion("q2", "structural", 3, 0),
		newQuestion("q3", "behavioral", 3, 2),
	}
}

type fakeBank struct {
	questions []entities.Question
	err       error
}

func (b *fakeBank) GetAll(context.Context) ([]entities.Question, error) {
	return b.questions, b.err
}

func (b *fakeBank) GetByCategory(_ context.Context, category string) ([]entities.Question, error) {
	if b.err != nil {
		return nil, b.err
	}
	if category == "" || category == entities.CategoryAll {
		return b.questions, nil
	}
	var out []entities.Question
	for _, q := range b.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (b *fakeBank) GetByPattern(_ context.Context, slug string) ([]entities.Question, error) {
	if b.err != nil {
		return nil, b.err
	}
	var out []entities.Question
	for _, q := range b.questions {
		if q.Pattern == slug {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return nil, repository.ErrPatternNotFound
	}
	return out, nil
}

func (b *fakeBank) Patterns(context.Context) ([]entities.Pattern, error) {
	var out []entities.Pattern
	for _, q := range b.questions {
		out = append(out, entities.Pattern{Slug: q.Pattern, Name: q.Pattern, Category: q.Category})
	}
	return out, b.err
}

func (b *fakeBank) Categories(context.Context) ([]entities.Category, error) {
	if b.err != nil {
		return nil, b.err
	}
	seen := make(map[string]bool)
	var out []entities.Category
	for _, q := range b.questions {
		if !seen[q.Category] {
			out = append(out, entities.Category{Slug: q.Category})
			seen[q.Category] = true
		}
	}
	return out, nil
}

type fakeSaver struct {
	saved []*entities.QuizResult
	err   error
}

func (s *fakeSaver) Save(_ context.Context, r *entities.QuizResult) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, r)
	return nil
}

func newTestQuizService(bank QuestionBank, saver ResultSaver) (*QuizService, *storage.SessionStorage[*QuizController]) {
	sessions := storage.NewSessionStorage[*QuizController]()
	s := NewQuizService(bank, sessions, saver, QuizOptions{DefaultLength: 10}, zap.NewNop())
	s.now = func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "session-1" }
	return s, sessions
}
