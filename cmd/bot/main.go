package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/patterns-quiz-bot/internal/config"
	"github.com/aliskhannn/patterns-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/patterns-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/patterns-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/patterns-quiz-bot/internal/logger"
	"github.com/aliskhannn/patterns-quiz-bot/internal/repository"
	"github.com/aliskhannn/patterns-quiz-bot/internal/service"
	"github.com/aliskhannn/patterns-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questionRepo, err := repository.NewQuestionRepository(cfg.Quiz.CatalogPath)
	if err != nil {
		lg.Fatal("failed to load question catalog",
			zap.String("path", cfg.Quiz.CatalogPath),
			zap.Error(err),
		)
	}

	dsn, _ := cfg.DB.DSN()
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	tr := postgres.NewTransactor(pool)

	userRepo := pgrepo.NewUserRepository(pool)
	settingsRepo := pgrepo.NewSettingsRepository(pool)
	resultRepo := pgrepo.NewResultRepository(pool)

	sessions := storage.NewSessionStorage[*service.QuizController]()

	userService := service.NewUserService(userRepo, lg)
	settingsService := service.NewSettingsService(settingsRepo, questionRepo, cfg.Quiz.DefaultLength)
	statsService := service.NewStatsService(resultRepo)
	resultService := service.NewResultService(tr)
	resetService := service.NewResetService(tr, sessions, cfg.Quiz.DefaultLength)
	quizService := service.NewQuizService(
		questionRepo,
		sessions,
		resultService,
		service.QuizOptions{
			DefaultLength:    cfg.Quiz.DefaultLength,
			ShuffleQuestions: cfg.Quiz.ShuffleQuestions,
			ShuffleOptions:   cfg.Quiz.ShuffleOptions,
		},
		lg,
	)

	janitor := service.NewSessionJanitor(sessions, cfg.Sessions.IdleTTL, cfg.Sessions.CleanupSchedule, lg)
	go func() {
		if err := janitor.Start(ctx); err != nil {
			lg.Error("session janitor failed", zap.Error(err))
		}
	}()

	handler := telegram.NewHandler(
		bot,
		lg,
		userService,
		quizService,
		settingsService,
		statsService,
		resetService,
	)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler failed", zap.Error(err))
	}

	bot.StopReceivingUpdates()
	lg.Info("shutdown signal received")
}
