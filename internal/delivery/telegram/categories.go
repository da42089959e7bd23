package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
)

// handleCategories lists pattern categories with a quiz button for each.
func (h *Handler) handleCategories() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		categories, err := h.quizService.Categories(ctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}

		if len(categories) == 0 {
			return h.send(newHTMLMessage(chatID, msgNoQuestions))
		}

		patterns, err := h.quizService.Patterns(ctx)
		if err != nil {
			return fmt.Errorf("list patterns: %w", err)
		}

		text, kb := renderCategories(categories, patterns)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func renderCategories(categories []entities.Category, patterns []entities.Pattern) (string, tgbotapi.InlineKeyboardMarkup) {
	byCategory := make(map[string][]entities.Pattern)
	for _, p := range patterns {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	var sb strings.Builder
	sb.WriteString(msgCategoriesTitle)
	sb.WriteString("\n\n")

	for _, c := range categories {
		fmt.Fprintf(&sb, "<b>%s</b> (<code>%s</code>), вопросов: %d\n",
			esc(categoryTitle(c.Slug)),
			esc(c.Slug),
			c.Questions,
		)
		for _, p := range byCategory[c.Slug] {
			fmt.Fprintf(&sb, "• %s <code>%s</code>\n", esc(p.Name), esc(p.Slug))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Квиз по категории или паттерну: /quiz <i>slug</i>")

	return sb.String(), buildCategoriesKeyboard(categories)
}
