// messages.go contains message templates for Telegram.

package telegram

import (
	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
)

const msgWelcome = "<b>👋 Привет!</b>\n\n" +
	"Этот бот помогает закрепить <b>паттерны проектирования</b> через короткие квизы.\n\n" +
	"Каждый вопрос проходит в три шага:\n" +
	"1. выберите вариант ответа;\n" +
	"2. нажмите «Проверить»;\n" +
	"3. прочитайте пояснение и переходите к следующему вопросу.\n\n" +
	"Чтобы начать, нажмите /quiz."

const msgHelp = "<b>📖 Команды</b>\n\n" +
	"/quiz — начать квиз или продолжить текущий\n" +
	"/quiz <i>категория</i> или <i>паттерн</i> — квиз по теме, например /quiz singleton\n" +
	"/categories — категории паттернов\n" +
	"/stats — ваша статистика\n" +
	"/settings — длина квиза и категория по умолчанию\n" +
	"/reset — сбросить статистику и настройки\n" +
	"/help — эта справка"

// Error messages.
const (
	msgInternalError         = "Что‑то пошло не так. Попробуйте позже."
	msgUnknownCommand        = "Неизвестная команда. Список команд: /help"
	msgQuizUnavailable       = "Не удалось создать квиз, попробуйте позже."
	msgNoQuestions           = "В этой категории пока нет вопросов. Посмотрите /categories."
	msgSettingsUnavailable   = "Не удалось получить настройки. Попробуйте позже."
	msgStatsUnavailable      = "Не удалось получить статистику. Попробуйте позже."
	msgCategoriesUnavailable = "Не удалось получить список категорий. Попробуйте позже."
	msgSaveResultFailed      = "Не удалось сохранить результат. Попробуйте ещё раз."
)

// Quiz messages.
const (
	msgQuizResumed   = "📝 Продолжаем квиз..."
	msgQuizAbandoned = "Квиз остановлен. Начать заново: /quiz"
	msgNoActiveQuiz  = "Этот квиз уже неактивен. Начните новый: /quiz"
	msgStaleButton   = "Эта кнопка устарела."
	msgAnswerRight   = "✅ Верно!"
	msgAnswerWrong   = "❌ Неверно"
)

// Toasts for out-of-order quiz actions.
const (
	toastSelectFirst    = "Сначала выберите вариант ответа"
	toastAlreadyChecked = "Ответ уже проверен"
	toastCheckFirst     = "Сначала проверьте ответ"
	toastLastQuestion   = "Это последний вопрос"
	toastNoSuchOption   = "Такого варианта нет"
	toastNotFinished    = "Сначала ответьте на все вопросы"
)

// Settings and reset messages.
const (
	msgSettingsSaved   = "Сохранено ✅"
	msgInvalidSetting  = "Недопустимое значение"
	msgResetPrompt     = "<b>⚠️ Сброс</b>\n\nВся статистика квизов будет удалена, а настройки вернутся к значениям по умолчанию. Продолжить?"
	msgResetDone       = "Готово. Статистика удалена, настройки сброшены."
	msgResetCancelled  = "Сброс отменён."
	msgResetFailed     = "Не удалось выполнить сброс. Попробуйте позже."
	msgStatsEmpty      = "<b>📊 Статистика</b>\n\nВы ещё не завершили ни одного квиза. Начните с /quiz."
	msgCategoriesTitle = "<b>📚 Категории паттернов</b>"
)

var categoryTitles = map[string]string{
	entities.CategoryAll: "Все категории",
	"creational":         "Порождающие",
	"structural":         "Структурные",
	"behavioral":         "Поведенческие",
}

// categoryTitle returns a human readable category name.
func categoryTitle(slug string) string {
	if t, ok := categoryTitles[slug]; ok {
		return t
	}
	return slug
}
