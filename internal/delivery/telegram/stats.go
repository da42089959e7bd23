package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/patterns-quiz-bot/internal/service"
)

const statsTimeLayout = "02.01.2006 15:04"

// handleStats displays lifetime quiz stats.
func (h *Handler) handleStats(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		summary, err := h.statsService.GetSummary(ctx, userID)
		if err != nil {
			h.logger.Error("failed to get stats",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return h.send(newHTMLMessage(chatID, msgStatsUnavailable))
		}

		text, kb := renderStats(summary)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleStatsCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) string {
	summary, err := h.statsService.GetSummary(ctx, cb.From.ID)
	if err != nil {
		h.logger.Error("failed to get stats",
			zap.Int64("user_id", cb.From.ID),
			zap.Error(err),
		)
		return msgStatsUnavailable
	}

	text, kb := renderStats(summary)
	h.editCallbackMessage(cb, text, &kb)
	return ""
}

func renderStats(summary *service.StatsSummary) (string, tgbotapi.InlineKeyboardMarkup) {
	stats := summary.Stats
	if stats == nil || stats.QuizzesCompleted == 0 {
		return msgStatsEmpty, buildStatsKeyboard()
	}

	var sb strings.Builder
	sb.WriteString("<b>📊 Статистика</b>\n\n")
	fmt.Fprintf(&sb, "🏁 <b>Квизов завершено:</b> %d\n", stats.QuizzesCompleted)
	fmt.Fprintf(&sb, "✅ <b>Верных ответов:</b> %d из %d\n", stats.CorrectAnswers, stats.QuestionsAnswered)
	fmt.Fprintf(&sb, "🎯 <b>Точность:</b> %s%%\n", formatPercent(stats.Accuracy()))
	fmt.Fprintf(&sb, "🏆 <b>Лучший результат:</b> %s%%\n", formatPercent(stats.BestScore))
	if stats.LastCompletedAt != nil {
		fmt.Fprintf(&sb, "📅 <b>Последний квиз:</b> %s UTC\n", stats.LastCompletedAt.UTC().Format(statsTimeLayout))
	}

	if len(summary.Recent) > 0 {
		sb.WriteString("\n<b>Последние квизы</b>\n")
		for _, r := range summary.Recent {
			fmt.Fprintf(&sb, "• %s · %s · %d/%d (%s%%)\n",
				r.CompletedAt.UTC().Format(statsTimeLayout),
				esc(categoryTitle(r.Category)),
				r.CorrectCount,
				r.TotalQuestions,
				formatPercent(r.ScorePercent()),
			)
		}
	}

	return strings.TrimRight(sb.String(), "\n"), buildStatsKeyboard()
}
