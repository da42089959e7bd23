package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/service"
)

const (
	quizBarLength   = 10
	resultBarLength = 20
)

var optionMarkers = map[entities.OptionStatus]string{
	entities.StatusNeutral:   "▫️",
	entities.StatusSelected:  "🔘",
	entities.StatusCorrect:   "✅",
	entities.StatusIncorrect: "❌",
}

// handleQuiz resumes the active quiz or starts a new one. An argument picks
// the category or the single pattern of a new quiz.
func (h *Handler) handleQuiz(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		topic := strings.ToLower(strings.TrimSpace(args))

		if topic == "" {
			if ctrl, ok := h.quizService.Active(userID); ok {
				return h.resumeQuiz(chatID, userID, ctrl)
			}
			return h.startQuiz(ctx, chatID, userID, service.StartOptions{})
		}

		return h.startQuiz(ctx, chatID, userID, h.topicOptions(ctx, topic))
	}
}

// topicOptions treats topic as a category slug if the catalog has one and as
// a pattern slug otherwise.
func (h *Handler) topicOptions(ctx context.Context, topic string) service.StartOptions {
	if topic == entities.CategoryAll {
		return service.StartOptions{Category: topic}
	}

	categories, err := h.quizService.Categories(ctx)
	if err != nil {
		h.logger.Warn("failed to list categories", zap.Error(err))
	}
	for _, c := range categories {
		if c.Slug == topic {
			return service.StartOptions{Category: topic}
		}
	}

	return service.StartOptions{Pattern: topic}
}

// startQuiz starts a new quiz and sends its card. Missing choices fall back
// to the learner's settings.
func (h *Handler) startQuiz(ctx context.Context, chatID, userID int64, opts service.StartOptions) error {
	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		h.logger.Warn("failed to get settings for quiz, using defaults",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	} else {
		opts.Length = settings.QuizLength
		if opts.Category == "" && opts.Pattern == "" {
			opts.Category = settings.Category
		}
	}

	oldMsgID, hadCard := h.quizService.MessageID(userID)

	ctrl, err := h.quizService.Start(ctx, userID, opts)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestionsAvailable) {
			return h.send(newHTMLMessage(chatID, msgNoQuestions))
		}
		return fmt.Errorf("start quiz: %w", err)
	}

	if hadCard {
		h.deleteMessage(chatID, oldMsgID)
	}

	return h.sendQuizCard(chatID, userID, ctrl.View())
}

func (h *Handler) resumeQuiz(chatID, userID int64, ctrl *service.QuizController) error {
	if oldMsgID, ok := h.quizService.MessageID(userID); ok {
		h.deleteMessage(chatID, oldMsgID)
	}

	if err := h.send(newHTMLMessage(chatID, msgQuizResumed)); err != nil {
		return err
	}

	return h.sendQuizCard(chatID, userID, ctrl.View())
}

func (h *Handler) sendQuizCard(chatID, userID int64, v service.ViewState) error {
	text, kb := renderQuizCard(v)

	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = kb

	msgID, err := h.sendMessage(msg)
	if err != nil {
		return err
	}

	h.quizService.SetMessageID(userID, msgID)
	return nil
}

// handleQuizCallback applies a quiz button press and returns the toast to show.
func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) string {
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	sub := data.param(0)

	if sub == quizStart {
		if err := h.startQuiz(ctx, chatID, userID, service.StartOptions{Category: data.param(1)}); err != nil {
			h.logger.Error("failed to start quiz",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return msgQuizUnavailable
		}
		return ""
	}

	ctrl, ok := h.quizService.Active(userID)
	if !ok || ctrl.ID() != data.param(1) {
		return msgNoActiveQuiz
	}

	var (
		v     service.ViewState
		err   error
		toast string
	)

	switch sub {
	case quizSelect:
		question, ok1 := data.intParam(2)
		option, ok2 := data.intParam(3)
		if !ok1 || !ok2 || question != ctrl.View().QuestionIndex {
			return msgStaleButton
		}
		v, err = ctrl.OnOptionClick(option)

	case quizCheck:
		v, err = ctrl.OnCheckClick()
		if err == nil {
			toast = msgAnswerWrong
			if v.AnsweredCorrectly {
				toast = msgAnswerRight
			}
		}

	case quizNext:
		v, err = ctrl.OnNextClick()

	case quizRestart:
		v = ctrl.OnRestartClick()

	case quizFinish:
		return h.finishQuiz(ctx, cb, userID)

	case quizQuit:
		h.quizService.Abandon(userID)
		h.editCallbackMessage(cb, msgQuizAbandoned, nil)
		return ""

	default:
		return msgStaleButton
	}

	if err != nil {
		h.logger.Debug("quiz action rejected",
			zap.Int64("user_id", userID),
			zap.String("action", sub),
			zap.Error(err),
		)
		return quizErrorToast(err)
	}

	text, kb := renderQuizCard(v)
	h.editCallbackMessage(cb, text, &kb)
	h.quizService.SetMessageID(userID, cb.Message.MessageID)

	return toast
}

func (h *Handler) finishQuiz(ctx context.Context, cb *tgbotapi.CallbackQuery, userID int64) string {
	result, err := h.quizService.Finish(ctx, userID)
	if err != nil {
		if toast := quizErrorToast(err); toast != "" {
			return toast
		}
		h.logger.Error("failed to finish quiz",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return msgSaveResultFailed
	}

	text, kb := renderQuizResult(result)
	h.editCallbackMessage(cb, text, &kb)
	return ""
}

// quizErrorToast explains a rejected quiz action, or returns "" for
// errors that are not the learner's doing.
func quizErrorToast(err error) string {
	switch {
	case errors.Is(err, entities.ErrNoSelection):
		return toastSelectFirst
	case errors.Is(err, entities.ErrQuestionLocked):
		return toastAlreadyChecked
	case errors.Is(err, entities.ErrNotChecked):
		return toastCheckFirst
	case errors.Is(err, entities.ErrEndOfQuiz):
		return toastLastQuestion
	case errors.Is(err, entities.ErrOptionOutOfRange):
		return toastNoSuchOption
	case errors.Is(err, service.ErrQuizNotFinished):
		return toastNotFinished
	case errors.Is(err, service.ErrNoActiveQuiz):
		return msgNoActiveQuiz
	default:
		return ""
	}
}

// renderQuizCard renders the current question with its keyboard.
func renderQuizCard(v service.ViewState) (string, tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>🧩 Вопрос %d из %d</b>", v.QuestionIndex+1, v.QuestionCount)
	if v.Pattern != "" {
		fmt.Fprintf(&sb, "  <code>%s</code>", esc(v.Pattern))
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %s%%\n\n",
		buildProgressBar(v.Progress.Answered, v.Progress.Total, quizBarLength),
		formatPercent(v.Progress.PercentComplete),
	)

	fmt.Fprintf(&sb, "<b>%s</b>\n\n", esc(v.Prompt))

	for _, opt := range v.Options {
		fmt.Fprintf(&sb, "%s <b>%s.</b> %s\n", optionMarkers[opt.Status], optionLabel(opt.Index), esc(opt.Text))
	}

	if v.State == service.QuestionChecked {
		sb.WriteString("\n")
		if v.AnsweredCorrectly {
			sb.WriteString(msgAnswerRight)
		} else {
			sb.WriteString(msgAnswerWrong)
		}
		if v.ExplanationVisible && v.Explanation != "" {
			fmt.Fprintf(&sb, "\n💡 <i>%s</i>", esc(v.Explanation))
		}
	}

	return strings.TrimRight(sb.String(), "\n"), buildQuizKeyboard(v)
}

func buildQuizKeyboard(v service.ViewState) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if v.State != service.QuestionChecked {
		var row []tgbotapi.InlineKeyboardButton
		for _, opt := range v.Options {
			label := optionLabel(opt.Index)
			if opt.Status == entities.StatusSelected {
				label = optionMarkers[entities.StatusSelected] + " " + label
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				label,
				buildQuizSelectCallback(v.SessionID, v.QuestionIndex, opt.Index),
			))
		}
		rows = append(rows, row)
	}

	var actions []tgbotapi.InlineKeyboardButton
	if v.CanCheck {
		actions = append(actions, tgbotapi.NewInlineKeyboardButtonData("✔️ Проверить", buildQuizActionCallback(quizCheck, v.SessionID)))
	}
	if v.CanNext {
		actions = append(actions, tgbotapi.NewInlineKeyboardButtonData("Далее ▶️", buildQuizActionCallback(quizNext, v.SessionID)))
	}
	if v.CanFinish {
		actions = append(actions, tgbotapi.NewInlineKeyboardButtonData("🏁 Результат", buildQuizActionCallback(quizFinish, v.SessionID)))
	}
	if len(actions) > 0 {
		rows = append(rows, actions)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 Заново", buildQuizActionCallback(quizRestart, v.SessionID)),
		tgbotapi.NewInlineKeyboardButtonData("✖️ Выйти", buildQuizActionCallback(quizQuit, v.SessionID)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// renderQuizResult renders the summary of a finished quiz.
func renderQuizResult(r *entities.QuizResult) (string, tgbotapi.InlineKeyboardMarkup) {
	score := r.ScorePercent()

	text := fmt.Sprintf(
		"<b>🏁 Квиз завершён</b>\n\n"+
			"📚 <b>Категория:</b> %s\n"+
			"🎯 <b>Правильных ответов:</b> %d из %d (%s%%)\n"+
			"%s\n\n"+
			"%s",
		esc(categoryTitle(r.Category)),
		r.CorrectCount,
		r.TotalQuestions,
		formatPercent(score),
		buildProgressBar(r.CorrectCount, r.TotalQuestions, resultBarLength),
		scoreVerdict(score),
	)

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Ещё квиз", buildQuizStartCallback(r.Category)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", buildStatsCallback()),
		),
	)

	return text, kb
}

func scoreVerdict(score float64) string {
	switch {
	case score >= 90:
		return "Отлично! 🎉"
	case score >= 70:
		return "Хороший результат 👍"
	case score >= 50:
		return "Неплохо, но есть что повторить."
	default:
		return "Стоит повторить материал 📚"
	}
}

// optionLabel returns A, B, C... for the first options and a number after that.
func optionLabel(i int) string {
	const letters = "ABCDEFGH"
	if i >= 0 && i < len(letters) {
		return letters[i : i+1]
	}
	return strconv.Itoa(i + 1)
}

// formatPercent prints a percentage with at most one decimal place.
func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
