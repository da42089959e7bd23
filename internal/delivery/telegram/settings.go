package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/service"
)

// handleSettings displays user settings.
func (h *Handler) handleSettings(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.logger.Debug("rendering settings", zap.Int64("user_id", userID))

		text, kb, err := h.renderSettings(ctx, userID)
		if err != nil {
			h.logger.Error("failed to render settings",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return h.send(newHTMLMessage(chatID, msgSettingsUnavailable))
		}

		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleSettingsCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) string {
	userID := cb.From.ID

	var (
		err   error
		toast = msgSettingsSaved
	)

	switch data.param(0) {
	case settingsMenu:
		toast = ""
	case settingsLength:
		n, ok := data.intParam(1)
		if !ok {
			return msgInvalidSetting
		}
		err = h.settingsService.UpdateQuizLength(ctx, userID, n)
	case settingsCategory:
		err = h.settingsService.UpdateCategory(ctx, userID, data.param(1))
	default:
		return msgStaleButton
	}

	if err != nil {
		if errors.Is(err, service.ErrInvalidQuizLength) || errors.Is(err, service.ErrUnknownCategory) {
			return msgInvalidSetting
		}
		h.logger.Error("failed to update settings",
			zap.Int64("user_id", userID),
			zap.String("data", data.Raw),
			zap.Error(err),
		)
		return msgSettingsUnavailable
	}

	text, kb, err := h.renderSettings(ctx, userID)
	if err != nil {
		h.logger.Error("failed to render settings",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return msgSettingsUnavailable
	}

	h.editCallbackMessage(cb, text, &kb)
	return toast
}

func (h *Handler) renderSettings(ctx context.Context, userID int64) (string, tgbotapi.InlineKeyboardMarkup, error) {
	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	categories, err := h.quizService.Categories(ctx)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	text, kb := formatSettings(settings, categories)
	return text, kb, nil
}

func formatSettings(settings *entities.UserSettings, categories []entities.Category) (string, tgbotapi.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"<b>⚙️ Настройки</b>\n\n"+
			"📝 <b>Вопросов в квизе:</b> %d\n"+
			"📚 <b>Категория:</b> %s\n\n"+
			"Выберите длину квиза и категорию по умолчанию:",
		settings.QuizLength,
		esc(categoryTitle(settings.Category)),
	)

	return text, buildSettingsKeyboard(settings, categories)
}
