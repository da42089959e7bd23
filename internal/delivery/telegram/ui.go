package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
)

// buildStatsKeyboard builds keyboard for the stats screen.
func buildStatsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Обновить", buildStatsCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Начать квиз", buildQuizStartCallback("")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Настройки", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildCategoriesKeyboard offers a quiz per category.
func buildCategoriesKeyboard(categories []entities.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ "+categoryTitle(c.Slug), buildQuizStartCallback(c.Slug)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🎲 "+categoryTitle(entities.CategoryAll), buildQuizStartCallback(entities.CategoryAll)),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildSettingsKeyboard builds the settings keyboard, marking current values.
func buildSettingsKeyboard(settings *entities.UserSettings, categories []entities.Category) tgbotapi.InlineKeyboardMarkup {
	var lengths []tgbotapi.InlineKeyboardButton
	for _, n := range entities.QuizLengths {
		label := strconv.Itoa(n)
		if n == settings.QuizLength {
			label = "• " + label + " •"
		}
		lengths = append(lengths, tgbotapi.NewInlineKeyboardButtonData(
			label,
			buildSettingsCallback(settingsLength, strconv.Itoa(n)),
		))
	}

	rows := [][]tgbotapi.InlineKeyboardButton{lengths}

	slugs := []string{entities.CategoryAll}
	for _, c := range categories {
		slugs = append(slugs, c.Slug)
	}
	for _, slug := range slugs {
		label := categoryTitle(slug)
		if slug == settings.Category {
			label = "✓ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildSettingsCallback(settingsCategory, slug)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResetKeyboard asks to confirm a reset.
func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Да, сбросить", buildResetConfirmCallback()),
			tgbotapi.NewInlineKeyboardButtonData("Отмена", buildResetCancelCallback()),
		),
	)
}
