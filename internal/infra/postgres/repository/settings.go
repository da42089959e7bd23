package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to user quiz settings in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create creates default settings for a user.
func (r *SettingsRepository) Create(ctx context.Context, userID int64, quizLength int) error {
	query := `
		INSERT INTO user_settings (user_id, quiz_length, category, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, userID, quizLength, entities.CategoryAll); err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves settings for a user.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, quiz_length, category, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var settings entities.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.QuizLength,
		&settings.Category,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

// UpsertDefaults resets the user's settings to the defaults.
func (r *SettingsRepository) UpsertDefaults(ctx context.Context, userID int64, quizLength int) error {
	query := `
		INSERT INTO user_settings (user_id, quiz_length, category, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET quiz_length = EXCLUDED.quiz_length,
		    category = EXCLUDED.category,
		    updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, userID, quizLength, entities.CategoryAll); err != nil {
		return fmt.Errorf("upsert default settings: %w", err)
	}
	return nil
}

// UpdateQuizLength updates the number of questions per quiz.
func (r *SettingsRepository) UpdateQuizLength(ctx context.Context, userID int64, quizLength int) error {
	query := `
		UPDATE user_settings
		SET quiz_length = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, quizLength, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update quiz length: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateCategory updates the category quizzes are drawn from.
func (r *SettingsRepository) UpdateCategory(ctx context.Context, userID int64, category string) error {
	query := `
		UPDATE user_settings
		SET category = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, category, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
