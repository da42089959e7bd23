package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/infra/postgres"
)

// UserRepository stores learners.
type UserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db postgres.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Save registers a learner or refreshes the chat, username and last contact
// of a known one. It reports whether the learner was created. created_at of an
// existing learner is never overwritten.
func (r *UserRepository) Save(ctx context.Context, user *entities.User) (bool, error) {
	query := `
		INSERT INTO users (id, chat_id, username, is_active, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			username = EXCLUDED.username,
			is_active = TRUE,
			last_seen_at = EXCLUDED.last_seen_at
		RETURNING (xmax = 0) AS created
	`

	var created bool
	err := r.db.QueryRow(ctx, query,
		user.ID,
		user.ChatID,
		user.Username,
		user.IsActive,
		user.CreatedAt,
		user.LastSeenAt,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("save user %d: %w", user.ID, err)
	}

	return created, nil
}
