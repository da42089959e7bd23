package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleReset asks the user to confirm wiping their quiz history.
func (h *Handler) handleReset() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newHTMLMessage(chatID, msgResetPrompt)
		msg.ReplyMarkup = buildResetKeyboard()
		return h.send(msg)
	}
}

func (h *Handler) handleResetCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) string {
	switch data.param(0) {
	case resetConfirm:
		if err := h.resetService.ResetUser(ctx, cb.From.ID); err != nil {
			h.logger.Error("failed to reset user",
				zap.Int64("user_id", cb.From.ID),
				zap.Error(err),
			)
			return msgResetFailed
		}
		h.logger.Info("user reset", zap.Int64("user_id", cb.From.ID))
		h.editCallbackMessage(cb, msgResetDone, nil)
	case resetCancel:
		h.editCallbackMessage(cb, msgResetCancelled, nil)
	default:
		return msgStaleButton
	}
	return ""
}
