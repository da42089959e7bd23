package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/patterns-quiz-bot/internal/infra/postgres"
)

type ResetRepository struct {
	db postgres.DBTX
}

func NewResetRepository(db postgres.DBTX) *ResetRepository {
	return &ResetRepository{db: db}
}

// ResetUser deletes the user's quiz history. Answers go with their results.
func (s *ResetRepository) ResetUser(ctx context.Context, userID int64) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM quiz_results WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete quiz_results: %w", err)
	}

	return nil
}
