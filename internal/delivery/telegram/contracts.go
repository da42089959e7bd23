package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/service"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64, username string) error
}

type QuizService interface {
	Start(ctx context.Context, userID int64, opts service.StartOptions) (*service.QuizController, error)
	Active(userID int64) (*service.QuizController, bool)
	SetMessageID(userID int64, messageID int)
	MessageID(userID int64) (int, bool)
	Finish(ctx context.Context, userID int64) (*entities.QuizResult, error)
	Abandon(userID int64) bool
	Categories(ctx context.Context) ([]entities.Category, error)
	Patterns(ctx context.Context) ([]entities.Pattern, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateQuizLength(ctx context.Context, userID int64, quizLength int) error
	UpdateCategory(ctx context.Context, userID int64, category string) error
}

type StatsService interface {
	GetSummary(ctx context.Context, userID int64) (*service.StatsSummary, error)
}

type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}
