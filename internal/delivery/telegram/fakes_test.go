package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/repository"
	"github.com/aliskhannn/patterns-quiz-bot/internal/service"
	"github.com/aliskhannn/patterns-quiz-bot/internal/storage"
)

type fakeBot struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	nextID   int
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c)
	b.nextID++
	return tgbotapi.Message{MessageID: b.nextID}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return make(chan tgbotapi.Update)
}

func (b *fakeBot) lastSent() tgbotapi.Chattable {
	if len(b.sent) == 0 {
		return nil
	}
	return b.sent[len(b.sent)-1]
}

// lastToast returns the text of the latest callback answer.
func (b *fakeBot) lastToast() (string, bool) {
	for i := len(b.requests) - 1; i >= 0; i-- {
		if cb, ok := b.requests[i].(tgbotapi.CallbackConfig); ok {
			return cb.Text, true
		}
	}
	return "", false
}

type fakeUserService struct{ ensured []int64 }

func (s *fakeUserService) EnsureUser(_ context.Context, userID, _ int64, _ string) error {
	s.ensured = append(s.ensured, userID)
	return nil
}

type fakeSettingsService struct {
	settings *entities.UserSettings
}

func (s *fakeSettingsService) GetOrCreate(_ context.Context, userID int64) (*entities.UserSettings, error) {
	if s.settings == nil {
		s.settings = entities.NewUserSettings(userID, 10)
	}
	return s.settings, nil
}

func (s *fakeSettingsService) UpdateQuizLength(_ context.Context, _ int64, n int) error {
	if !entities.IsValidQuizLength(n) {
		return service.ErrInvalidQuizLength
	}
	s.settings.QuizLength = n
	return nil
}

func (s *fakeSettingsService) UpdateCategory(_ context.Context, _ int64, category string) error {
	s.settings.Category = category
	return nil
}

type fakeStatsService struct{}

func (fakeStatsService) GetSummary(context.Context, int64) (*service.StatsSummary, error) {
	return &service.StatsSummary{Stats: &entities.QuizStats{}}, nil
}

type fakeResetService struct{ reset []int64 }

func (s *fakeResetService) ResetUser(_ context.Context, userID int64) error {
	s.reset = append(s.reset, userID)
	return nil
}

type fakeBank struct{ questions []entities.Question }

func (b *fakeBank) GetAll(context.Context) ([]entities.Question, error) { return b.questions, nil }

func (b *fakeBank) GetByCategory(_ context.Context, category string) ([]entities.Question, error) {
	if category == entities.CategoryAll {
		return b.questions, nil
	}
	var out []entities.Question
	for _, q := range b.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (b *fakeBank) GetByPattern(_ context.Context, slug string) ([]entities.Question, error) {
	var out []entities.Question
	for _, q := range b.questions {
		if q.Pattern == slug {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return nil, repository.ErrPatternNotFound
	}
	return out, nil
}

func (b *fakeBank) Categories(context.Context) ([]entities.Category, error) {
	return []entities.Category{{Slug: "creational", Patterns: 1, Questions: 2}}, nil
}

func (b *fakeBank) Patterns(context.Context) ([]entities.Pattern, error) {
	return []entities.Pattern{{Slug: "singleton", Name: "Singleton", Category: "creational"}}, nil
}

type fakeSaver struct{ saved []*entities.QuizResult }

func (s *fakeSaver) Save(_ context.Context, r *entities.QuizResult) error {
	s.saved = append(s.saved, r)
	return nil
}

func newQuestion(id string, correct int) entities.Question {
	opts := make([]entities.Option, 3)
	for i := range opts {
		opts[i] = entities.Option{Text: fmt.Sprintf("%s-o%d", id, i), IsCorrect: i == correct}
	}
	return entities.Question{
		ID:          id,
		Pattern:     "singleton",
		Category:    "creational",
		Prompt:      "prompt " + id,
		Options:     opts,
		Explanation: "because " + id,
	}
}

type testEnv struct {
	handler  *Handler
	bot      *fakeBot
	quiz     *service.QuizService
	saver    *fakeSaver
	settings *fakeSettingsService
	reset    *fakeResetService
}

func newTestEnv() *testEnv {
	bank := &fakeBank{questions: []entities.Question{newQuestion("q1", 1), newQuestion("q2", 0)}}
	saver := &fakeSaver{}
	sessions := storage.NewSessionStorage[*service.QuizController]()
	quiz := service.NewQuizService(bank, sessions, saver, service.QuizOptions{DefaultLength: 10}, zap.NewNop())

	bot := &fakeBot{}
	settings := &fakeSettingsService{}
	reset := &fakeResetService{}
	h := NewHandler(bot, zap.NewNop(), &fakeUserService{}, quiz, settings, fakeStatsService{}, reset)

	return &testEnv{handler: h, bot: bot, quiz: quiz, saver: saver, settings: settings, reset: reset}
}

func commandUpdate(userID int64, text string) tgbotapi.Update {
	cmd := strings.Fields(text)[0]
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1000,
		From:      &tgbotapi.User{ID: userID},
		Chat:      &tgbotapi.Chat{ID: userID},
		Date:      int(time.Now().Unix()),
		Text:      text,
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}},
	}}
}

func callbackUpdate(userID int64, messageID int, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: userID},
		Message: &tgbotapi.Message{MessageID: messageID, Chat: &tgbotapi.Chat{ID: userID}},
		Data:    data,
	}}
}
