package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
)

// QuestionBank supplies the questions quizzes are built from.
type QuestionBank interface {
	GetAll(ctx context.Context) ([]entities.Question, error)
	GetByCategory(ctx context.Context, category string) ([]entities.Question, error)
	GetByPattern(ctx context.Context, slug string) ([]entities.Question, error)
	Categories(ctx context.Context) ([]entities.Category, error)
	Patterns(ctx context.Context) ([]entities.Pattern, error)
}

// SessionStore keeps live quizzes per user.
type SessionStore interface {
	Store(userID int64, c *QuizController)
	Get(userID int64) (*QuizController, bool)
	SetMessageID(userID int64, messageID int)
	MessageID(userID int64) (int, bool)
	Delete(userID int64)
}

// ResultSaver persists finished quizzes.
type ResultSaver interface {
	Save(ctx context.Context, result *entities.QuizResult) error
}

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
}

type SettingsRepository interface {
	Create(ctx context.Context, userID int64, quizLength int) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateQuizLength(ctx context.Context, userID int64, quizLength int) error
	UpdateCategory(ctx context.Context, userID int64, category string) error
}

type ResultRepository interface {
	GetStats(ctx context.Context, userID int64) (*entities.QuizStats, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]*entities.QuizResult, error)
}

// SessionEvictor drops sessions that have been idle for longer than ttl.
type SessionEvictor interface {
	EvictIdle(ttl time.Duration) []int64
}

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}
