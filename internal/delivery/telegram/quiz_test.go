package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/service"
)

func newCardController(t *testing.T, prompt string) *service.QuizController {
	t.Helper()
	q := newQuestion("q1", 1)
	q.Prompt = prompt
	c, err := service.NewQuizController("sid", entities.CategoryAll, []entities.Question{q, newQuestion("q2", 0)}, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("NewQuizController() error = %v", err)
	}
	return c
}

func callbackDataOf(rows [][]tgbotapi.InlineKeyboardButton) []string {
	var out []string
	for _, row := range rows {
		for _, b := range row {
			if b.CallbackData != nil {
				out = append(out, *b.CallbackData)
			}
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestRenderQuizCardUnanswered(t *testing.T) {
	c := newCardController(t, "a < b & c")
	text, kb := renderQuizCard(c.View())

	if !strings.Contains(text, "Вопрос 1 из 2") {
		t.Fatalf("text misses position:\n%s", text)
	}
	if !strings.Contains(text, "a &lt; b &amp; c") {
		t.Fatalf("prompt is not escaped:\n%s", text)
	}
	if strings.Contains(text, "💡") {
		t.Fatal("explanation shown before check")
	}

	data := callbackDataOf(kb.InlineKeyboard)
	for i := 0; i < 3; i++ {
		if !contains(data, buildQuizSelectCallback("sid", 0, i)) {
			t.Fatalf("missing select button for option %d in %v", i, data)
		}
	}
	if contains(data, buildQuizActionCallback(quizCheck, "sid")) {
		t.Fatal("check button offered without selection")
	}
}

func TestRenderQuizCardSelected(t *testing.T) {
	c := newCardController(t, "p")
	v, err := c.OnOptionClick(2)
	if err != nil {
		t.Fatalf("OnOptionClick() error = %v", err)
	}

	text, kb := renderQuizCard(v)
	if !strings.Contains(text, "🔘 <b>C.</b>") {
		t.Fatalf("selected option not marked:\n%s", text)
	}
	if !contains(callbackDataOf(kb.InlineKeyboard), buildQuizActionCallback(quizCheck, "sid")) {
		t.Fatal("check button missing after selection")
	}
}

func TestRenderQuizCardChecked(t *testing.T) {
	c := newCardController(t, "p")
	_, _ = c.OnOptionClick(0)
	v, err := c.OnCheckClick()
	if err != nil {
		t.Fatalf("OnCheckClick() error = %v", err)
	}

	text, kb := renderQuizCard(v)
	for _, want := range []string{"❌ <b>A.</b>", "✅ <b>B.</b>", "▫️ <b>C.</b>", msgAnswerWrong, "💡 <i>because q1</i>", "50%"} {
		if !strings.Contains(text, want) {
			t.Fatalf("text misses %q:\n%s", want, text)
		}
	}

	data := callbackDataOf(kb.InlineKeyboard)
	if contains(data, buildQuizSelectCallback("sid", 0, 0)) {
		t.Fatal("select buttons offered on a checked question")
	}
	if !contains(data, buildQuizActionCallback(quizNext, "sid")) {
		t.Fatal("next button missing")
	}
	if contains(data, buildQuizActionCallback(quizFinish, "sid")) {
		t.Fatal("finish button offered before the last question")
	}
}

func TestRenderQuizResult(t *testing.T) {
	r := &entities.QuizResult{Category: "behavioral", CorrectCount: 2, TotalQuestions: 3}
	text, kb := renderQuizResult(r)

	for _, want := range []string{"Поведенческие", "2 из 3 (66.7%)"} {
		if !strings.Contains(text, want) {
			t.Fatalf("text misses %q:\n%s", want, text)
		}
	}
	if !contains(callbackDataOf(kb.InlineKeyboard), buildQuizStartCallback("behavioral")) {
		t.Fatal("result keyboard misses a quiz restart in the same category")
	}
}

func TestQuizErrorToast(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{entities.ErrNoSelection, toastSelectFirst},
		{entities.ErrQuestionLocked, toastAlreadyChecked},
		{entities.ErrNotChecked, toastCheckFirst},
		{entities.ErrEndOfQuiz, toastLastQuestion},
		{fmt.Errorf("%w: 9 of 3", entities.ErrOptionOutOfRange), toastNoSuchOption},
		{service.ErrQuizNotFinished, toastNotFinished},
		{errors.New("db down"), ""},
	}

	for _, tt := range tests {
		if got := quizErrorToast(tt.err); got != tt.want {
			t.Errorf("quizErrorToast(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestOptionLabelAndPercent(t *testing.T) {
	if optionLabel(0) != "A" || optionLabel(3) != "D" || optionLabel(8) != "9" {
		t.Fatalf("labels = %s %s %s", optionLabel(0), optionLabel(3), optionLabel(8))
	}
	if got := formatPercent(66.7); got != "66.7" {
		t.Fatalf("formatPercent(66.7) = %q", got)
	}
	if got := formatPercent(100); got != "100" {
		t.Fatalf("formatPercent(100) = %q", got)
	}
}

func TestQuizFlowThroughHandler(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	const userID = 7

	env.handler.handleUpdate(ctx, commandUpdate(userID, "/quiz"))

	msg, ok := env.bot.lastSent().(tgbotapi.MessageConfig)
	if !ok || !strings.Contains(msg.Text, "Вопрос 1 из 2") {
		t.Fatalf("/quiz did not send a quiz card: %#v", env.bot.lastSent())
	}
	cardID, ok := env.quiz.MessageID(userID)
	if !ok {
		t.Fatal("card message ID not remembered")
	}

	ctrl, ok := env.quiz.Active(userID)
	if !ok {
		t.Fatal("no active quiz after /quiz")
	}
	sid := ctrl.ID()

	press := func(data string) string {
		t.Helper()
		env.handler.handleUpdate(ctx, callbackUpdate(userID, cardID, data))
		toast, ok := env.bot.lastToast()
		if !ok {
			t.Fatalf("callback %q was not answered", data)
		}
		return toast
	}

	if toast := press(buildQuizActionCallback(quizCheck, sid)); toast != toastSelectFirst {
		t.Fatalf("check without selection toast = %q", toast)
	}
	if toast := press(buildQuizSelectCallback("other", 0, 1)); toast != msgNoActiveQuiz {
		t.Fatalf("foreign session toast = %q", toast)
	}
	if toast := press(buildQuizSelectCallback(sid, 1, 1)); toast != msgStaleButton {
		t.Fatalf("wrong question toast = %q", toast)
	}

	press(buildQuizSelectCallback(sid, 0, 1))
	if toast := press(buildQuizActionCallback(quizCheck, sid)); toast != msgAnswerRight {
		t.Fatalf("check toast = %q, want %q", toast, msgAnswerRight)
	}
	edit, ok := env.bot.lastSent().(tgbotapi.EditMessageTextConfig)
	if !ok || edit.MessageID != cardID || !strings.Contains(edit.Text, "💡") {
		t.Fatalf("card not edited after check: %#v", env.bot.lastSent())
	}

	if toast := press(buildQuizActionCallback(quizFinish, sid)); toast != toastNotFinished {
		t.Fatalf("early finish toast = %q", toast)
	}

	press(buildQuizActionCallback(quizNext, sid))
	press(buildQuizSelectCallback(sid, 1, 2))
	if toast := press(buildQuizActionCallback(quizCheck, sid)); toast != msgAnswerWrong {
		t.Fatalf("check toast = %q, want %q", toast, msgAnswerWrong)
	}
	press(buildQuizActionCallback(quizFinish, sid))

	if len(env.saver.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(env.saver.saved))
	}
	if r := env.saver.saved[0]; r.CorrectCount != 1 || r.TotalQuestions != 2 || r.UserID != userID {
		t.Fatalf("saved result = %+v", r)
	}
	edit, ok = env.bot.lastSent().(tgbotapi.EditMessageTextConfig)
	if !ok || !strings.Contains(edit.Text, "Квиз завершён") {
		t.Fatalf("card not replaced by result: %#v", env.bot.lastSent())
	}
	if _, ok := env.quiz.Active(userID); ok {
		t.Fatal("quiz still active after finish")
	}

	if toast := press(buildQuizActionCallback(quizNext, sid)); toast != msgNoActiveQuiz {
		t.Fatalf("button of finished quiz toast = %q", toast)
	}
}

func TestQuizCommandResumesActiveQuiz(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.handler.handleUpdate(ctx, commandUpdate(1, "/quiz"))
	first, _ := env.quiz.Active(1)
	oldCard, _ := env.quiz.MessageID(1)

	env.handler.handleUpdate(ctx, commandUpdate(1, "/quiz"))
	second, _ := env.quiz.Active(1)
	if first != second {
		t.Fatal("/quiz replaced the active quiz instead of resuming it")
	}

	var deleted bool
	for _, r := range env.bot.requests {
		if d, ok := r.(tgbotapi.DeleteMessageConfig); ok && d.MessageID == oldCard {
			deleted = true
		}
	}
	if !deleted {
		t.Fatal("old quiz card was not deleted on resume")
	}
	if newCard, _ := env.quiz.MessageID(1); newCard == oldCard {
		t.Fatal("card message ID not updated on resume")
	}
}

func TestQuizQuitAndCategoryStart(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.handler.handleUpdate(ctx, commandUpdate(1, "/quiz creational"))
	ctrl, ok := env.quiz.Active(1)
	if !ok || ctrl.Category() != "creational" {
		t.Fatal("/quiz creational did not start a creational quiz")
	}

	env.handler.handleUpdate(ctx, commandUpdate(1, "/quiz concurrency"))
	msg, ok := env.bot.lastSent().(tgbotapi.MessageConfig)
	if !ok || msg.Text != msgNoQuestions {
		t.Fatalf("unknown category reply = %#v", env.bot.lastSent())
	}

	cardID, _ := env.quiz.MessageID(1)
	env.handler.handleUpdate(ctx, callbackUpdate(1, cardID, buildQuizActionCallback(quizQuit, ctrl.ID())))
	if _, ok := env.quiz.Active(1); ok {
		t.Fatal("quiz still active after quit")
	}
}

func TestQuizCommandStartsPatternQuiz(t *testing.T) {
	env := newTestEnv()

	env.handler.handleUpdate(context.Background(), commandUpdate(1, "/quiz Singleton"))

	ctrl, ok := env.quiz.Active(1)
	if !ok {
		t.Fatal("/quiz singleton did not start a quiz")
	}
	if ctrl.Category() != "creational" || ctrl.View().Pattern != "singleton" {
		t.Fatalf("quiz category %q pattern %q", ctrl.Category(), ctrl.View().Pattern)
	}
}

func TestCategoriesCommand(t *testing.T) {
	env := newTestEnv()

	env.handler.handleUpdate(context.Background(), commandUpdate(1, "/categories"))

	msg, ok := env.bot.lastSent().(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("/categories reply = %#v", env.bot.lastSent())
	}
	for _, want := range []string{"Порождающие", "Singleton <code>singleton</code>"} {
		if !strings.Contains(msg.Text, want) {
			t.Fatalf("text misses %q:\n%s", want, msg.Text)
		}
	}
	kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok || !contains(callbackDataOf(kb.InlineKeyboard), buildQuizStartCallback("creational")) {
		t.Fatalf("keyboard misses a creational quiz button: %#v", msg.ReplyMarkup)
	}
}
