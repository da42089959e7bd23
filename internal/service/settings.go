package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/infra/postgres/repository"
)

var (
	ErrInvalidQuizLength = errors.New("invalid quiz length")
	ErrUnknownCategory   = errors.New("unknown category")
)

type SettingsService struct {
	repository    SettingsRepository
	bank          QuestionBank
	defaultLength int
}

func NewSettingsService(repository SettingsRepository, bank QuestionBank, defaultLength int) *SettingsService {
	return &SettingsService{
		repository:    repository,
		bank:          bank,
		defaultLength: defaultLength,
	}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			if err := s.repository.Create(ctx, userID, s.defaultLength); err != nil {
				return nil, err
			}
			return s.repository.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	return settings, nil
}

func (s *SettingsService) UpdateQuizLength(ctx context.Context, userID int64, quizLength int) error {
	if !entities.IsValidQuizLength(quizLength) {
		return fmt.Errorf("%w: %d", ErrInvalidQuizLength, quizLength)
	}
	return s.repository.UpdateQuizLength(ctx, userID, quizLength)
}

// UpdateCategory sets the category new quizzes are drawn from.
func (s *SettingsService) UpdateCategory(ctx context.Context, userID int64, category string) error {
	if category != entities.CategoryAll {
		categories, err := s.bank.Categories(ctx)
		if err != nil {
			return err
		}
		if !hasCategory(categories, category) {
			return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
		}
	}
	return s.repository.UpdateCategory(ctx, userID, category)
}

func hasCategory(categories []entities.Category, slug string) bool {
	for _, c := range categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
