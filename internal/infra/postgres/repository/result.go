package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/infra/postgres"
)

// ResultRepository provides access to finished quiz summaries.
type ResultRepository struct {
	db postgres.DBTX
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(db postgres.DBTX) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create inserts a quiz summary and returns its ID.
func (r *ResultRepository) Create(ctx context.Context, result *entities.QuizResult) (int64, error) {
	query := `
		INSERT INTO quiz_results (
			session_id, user_id, category, total_questions,
			answered_count, correct_count, started_at, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		result.SessionID,
		result.UserID,
		result.Category,
		result.TotalQuestions,
		result.AnsweredCount,
		result.CorrectCount,
		result.StartedAt,
		result.CompletedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create quiz result: %w", err)
	}

	return id, nil
}

// SaveAnswers inserts the per-question answers of a quiz summary in one batch.
func (r *ResultRepository) SaveAnswers(ctx context.Context, resultID int64, answers []entities.ResultAnswer) error {
	if len(answers) == 0 {
		return nil
	}

	query := `
		INSERT INTO quiz_result_answers (result_id, question_id, question_order, selected_index, is_correct)
		VALUES ($1, $2, $3, $4, $5)
	`

	batch := &pgx.Batch{}
	for _, a := range answers {
		batch.Queue(query, resultID, a.QuestionID, a.QuestionOrder, a.SelectedIndex, a.IsCorrect)
	}

	br := r.db.SendBatch(ctx, batch)
	defer func() { _ = br.Close() }()

	for range answers {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("save result answer: %w", err)
		}
	}

	return nil
}

// GetStats aggregates all finished quizzes of a user.
func (r *ResultRepository) GetStats(ctx context.Context, userID int64) (*entities.QuizStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(answered_count), 0),
			COALESCE(SUM(correct_count), 0),
			COALESCE(ROUND(MAX(correct_count * 100.0 / NULLIF(total_questions, 0)), 1), 0)::float8,
			MAX(completed_at)
		FROM quiz_results
		WHERE user_id = $1
	`

	var stats entities.QuizStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.QuizzesCompleted,
		&stats.QuestionsAnswered,
		&stats.CorrectAnswers,
		&stats.BestScore,
		&stats.LastCompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get quiz stats: %w", err)
	}

	return &stats, nil
}

// ListRecent returns the user's latest quiz summaries, newest first.
func (r *ResultRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]*entities.QuizResult, error) {
	query := `
		SELECT id, session_id::text, user_id, category, total_questions,
		       answered_count, correct_count, started_at, completed_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY completed_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	defer rows.Close()

	var results []*entities.QuizResult
	for rows.Next() {
		var res entities.QuizResult
		if err := rows.Scan(
			&res.ID,
			&res.SessionID,
			&res.UserID,
			&res.Category,
			&res.TotalQuestions,
			&res.AnsweredCount,
			&res.CorrectCount,
			&res.StartedAt,
			&res.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		results = append(results, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz results: %w", err)
	}

	return results, nil
}
