package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot             Bot
	logger          *zap.Logger
	userService     UserService
	quizService     QuizService
	settingsService SettingsService
	statsService    StatsService
	resetService    ResetService
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	userService UserService,
	quizService QuizService,
	settingsService SettingsService,
	statsService StatsService,
	resetService ResetService,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		userService:     userService,
		quizService:     quizService,
		settingsService: settingsService,
		statsService:    statsService,
		resetService:    resetService,
	}
}

// Commands lists the commands shown in the Telegram menu.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Запустить бота"},
		{Command: "quiz", Description: "Начать или продолжить квиз"},
		{Command: "categories", Description: "Категории паттернов"},
		{Command: "stats", Description: "Статистика"},
		{Command: "settings", Description: "Настройки"},
		{Command: "reset", Description: "Сбросить статистику"},
		{Command: "help", Description: "Помощь"},
	}
}

// Run processes updates one at a time until ctx is done. Quiz sessions are
// not safe for concurrent use, so updates must not be handled in parallel.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if err := h.userService.EnsureUser(ctx, from.ID, chatID, from.UserName); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if !update.Message.IsCommand() {
		_ = h.send(newHTMLMessage(chatID, msgHelp))
		return
	}

	switch update.Message.Command() {
	case "start":
		_ = h.send(newHTMLMessage(chatID, msgWelcome))

	case "help":
		_ = h.send(newHTMLMessage(chatID, msgHelp))

	case "quiz":
		_ = h.withErrorHandling("quiz", h.handleQuiz(from.ID, update.Message.CommandArguments()))(ctx, chatID)

	case "categories":
		_ = h.withErrorHandling("categories", h.handleCategories())(ctx, chatID)

	case "stats":
		_ = h.withErrorHandling("stats", h.handleStats(from.ID))(ctx, chatID)

	case "settings":
		_ = h.withErrorHandling("settings", h.handleSettings(from.ID))(ctx, chatID)

	case "reset":
		_ = h.withErrorHandling("reset", h.handleReset())(ctx, chatID)

	default:
		_ = h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, err)
	_ = h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		if isNotModified(err) {
			return nil
		}
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// sendMessage sends msg and returns the ID of the sent message.
func (h *Handler) sendMessage(msg tgbotapi.MessageConfig) (int, error) {
	sent, err := h.bot.Send(msg)
	if err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Int64("chat_id", msg.ChatID),
			zap.Error(err),
		)
		return 0, err
	}
	return sent.MessageID, nil
}

// answerCallback removes the loading indicator and shows an optional toast.
func (h *Handler) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		h.logger.Debug("failed to answer callback",
			zap.String("callback_id", cb.ID),
			zap.Error(err),
		)
	}
}
