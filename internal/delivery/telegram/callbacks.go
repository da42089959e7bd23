package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb, msgStaleButton)
		return
	}

	data := decodeCallback(cb.Data)

	var toast string
	switch data.Action {
	case actionQuiz:
		toast = h.handleQuizCallback(ctx, cb, data)
	case actionSettings:
		toast = h.handleSettingsCallback(ctx, cb, data)
	case actionReset:
		toast = h.handleResetCallback(ctx, cb, data)
	case actionStats:
		toast = h.handleStatsCallback(ctx, cb)
	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
		toast = msgStaleButton
	}

	h.answerCallback(cb, toast)
}

// editCallbackMessage replaces the text and keyboard of the message the button belongs to.
func (h *Handler) editCallbackMessage(cb *tgbotapi.CallbackQuery, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	_ = h.send(newHTMLEdit(cb.Message.Chat.ID, cb.Message.MessageID, text, kb))
}

// deleteMessage removes a message, ignoring messages that are already gone.
func (h *Handler) deleteMessage(chatID int64, messageID int) {
	if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		h.logger.Debug("failed to delete message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}
