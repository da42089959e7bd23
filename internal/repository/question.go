package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
)

var (
	ErrEmptyCatalog     = errors.New("question catalog is empty")
	ErrCategoryNotFound = errors.New("category not found")
	ErrPatternNotFound  = errors.New("pattern not found")
)

// catalogFile is the on-disk layout of the question catalog.
type catalogFile struct {
	Patterns []struct {
		Slug      string              `json:"slug"`
		Name      string              `json:"name"`
		Category  string              `json:"category"`
		Questions []entities.Question `json:"questions"`
	} `json:"patterns"`
}

// QuestionRepository provides read-only access to the design pattern quiz
// questions. The catalog is loaded from JSON once and kept in memory.
type QuestionRepository struct {
	questions  []entities.Question
	patterns   []entities.Pattern
	categories []entities.Category
}

// NewQuestionRepository loads and validates the catalog at path.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question catalog: %w", err)
	}

	return parseCatalog(data)
}

func parseCatalog(data []byte) (*QuestionRepository, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question catalog: %w", err)
	}

	r := &QuestionRepository{}
	seenIDs := make(map[string]struct{})
	seenPatterns := make(map[string]struct{})
	categoryIdx := make(map[string]int)

	for _, p := range file.Patterns {
		slug := strings.TrimSpace(p.Slug)
		category := strings.ToLower(strings.TrimSpace(p.Category))
		if slug == "" || category == "" {
			return nil, fmt.Errorf("pattern %q: slug and category are required", p.Name)
		}
		if category == entities.CategoryAll {
			return nil, fmt.Errorf("pattern %q: category %q is reserved", slug, category)
		}
		if _, ok := seenPatterns[slug]; ok {
			return nil, fmt.Errorf("duplicate pattern %q", slug)
		}
		seenPatterns[slug] = struct{}{}

		r.patterns = append(r.patterns, entities.Pattern{Slug: slug, Name: p.Name, Category: category})

		idx, ok := categoryIdx[category]
		if !ok {
			idx = len(r.categories)
			categoryIdx[category] = idx
			r.categories = append(r.categories, entities.Category{Slug: category})
		}
		r.categories[idx].Patterns++

		for _, q := range p.Questions {
			q.Pattern = slug
			q.Category = category
			if err := q.Validate(); err != nil {
				return nil, fmt.Errorf("pattern %q: %w", slug, err)
			}
			if _, ok := seenIDs[q.ID]; ok {
				return nil, fmt.Errorf("pattern %q: duplicate question id %q", slug, q.ID)
			}
			seenIDs[q.ID] = struct{}{}

			r.questions = append(r.questions, q)
			r.categories[idx].Questions++
		}
	}

	if len(r.questions) == 0 {
		return nil, ErrEmptyCatalog
	}

	return r, nil
}

// GetAll returns every question in catalog order.
func (r *QuestionRepository) GetAll(_ context.Context) ([]entities.Question, error) {
	return r.filter(func(entities.Question) bool { return true }), nil
}

// GetByCategory returns the questions of all patterns in category.
func (r *QuestionRepository) GetByCategory(ctx context.Context, category string) ([]entities.Question, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == entities.CategoryAll {
		return r.GetAll(ctx)
	}

	out := r.filter(func(q entities.Question) bool { return q.Category == category })
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
	}
	return out, nil
}

// GetByPattern returns the questions of a single pattern.
func (r *QuestionRepository) GetByPattern(_ context.Context, slug string) ([]entities.Question, error) {
	out := r.filter(func(q entities.Question) bool { return q.Pattern == slug })
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPatternNotFound, slug)
	}
	return out, nil
}

// Categories returns the categories in the order they first appear in the catalog.
func (r *QuestionRepository) Categories(_ context.Context) ([]entities.Category, error) {
	return append([]entities.Category(nil), r.categories...), nil
}

// Patterns returns all patterns in catalog order.
func (r *QuestionRepository) Patterns(_ context.Context) ([]entities.Pattern, error) {
	return append([]entities.Pattern(nil), r.patterns...), nil
}

func (r *QuestionRepository) filter(keep func(entities.Question) bool) []entities.Question {
	out := make([]entities.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if keep(q) {
			out = append(out, q.Clone())
		}
	}
	return out
}
