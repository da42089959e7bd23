package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/infra/postgres/repository"
)

// ResultService stores finished quizzes together with their answers.
type ResultService struct {
	tr Transactor
}

func NewResultService(tr Transactor) *ResultService {
	return &ResultService{tr: tr}
}

// Save writes the quiz summary and its answers in one transaction.
func (s *ResultService) Save(ctx context.Context, result *entities.QuizResult) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := repository.NewResultRepository(tx)

		id, err := repo.Create(ctx, result)
		if err != nil {
			return err
		}

		if err := repo.SaveAnswers(ctx, id, result.Answers); err != nil {
			return fmt.Errorf("result %d: %w", id, err)
		}

		result.ID = id
		return nil
	})
}
