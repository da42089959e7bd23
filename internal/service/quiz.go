package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/patterns-quiz-bot/internal/repository"
)

var (
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrNoActiveQuiz         = errors.New("no active quiz")
	ErrQuizNotFinished      = errors.New("quiz is not finished")
)

// QuizOptions controls how quizzes are composed from the question bank.
type QuizOptions struct {
	DefaultLength    int
	ShuffleQuestions bool
	ShuffleOptions   bool
}

// StartOptions are per-quiz choices of the learner.
type StartOptions struct {
	Category string // category slug, empty or CategoryAll for every category
	Pattern  string // pattern slug, overrides Category when set
	Length   int    // number of questions, DefaultLength when not positive
}

// QuizService manages the lifecycle of quizzes: composing them from the
// question bank, keeping them live while the learner answers, and saving the
// summary once the last question is checked.
type QuizService struct {
	bank     QuestionBank
	sessions SessionStore
	results  ResultSaver
	opts     QuizOptions
	logger   *zap.Logger

	rng   *rand.Rand
	now   func() time.Time
	newID func() string
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	bank QuestionBank,
	sessions SessionStore,
	results ResultSaver,
	opts QuizOptions,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		bank:     bank,
		sessions: sessions,
		results:  results,
		opts:     opts,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Start composes a new quiz for the user and makes it the user's active quiz,
// replacing any previous one.
func (s *QuizService) Start(ctx context.Context, userID int64, opts StartOptions) (*QuizController, error) {
	category, questions, err := s.questions(ctx, opts)
	if err != nil {
		return nil, err
	}

	length := opts.Length
	if length <= 0 {
		length = s.opts.DefaultLength
	}

	ctrl, err := NewQuizController(s.newID(), category, s.compose(questions, length), s.now())
	if err != nil {
		return nil, err
	}

	s.sessions.Store(userID, ctrl)

	s.logger.Info("quiz started",
		zap.Int64("user_id", userID),
		zap.String("session_id", ctrl.ID()),
		zap.String("category", category),
		zap.String("pattern", opts.Pattern),
		zap.Int("questions", ctrl.View().QuestionCount),
	)

	return ctrl, nil
}

// Active returns the user's live quiz.
func (s *QuizService) Active(userID int64) (*QuizController, bool) {
	return s.sessions.Get(userID)
}

// SetMessageID remembers which message shows the user's quiz.
func (s *QuizService) SetMessageID(userID int64, messageID int) {
	s.sessions.SetMessageID(userID, messageID)
}

// MessageID returns the message that shows the user's quiz.
func (s *QuizService) MessageID(userID int64) (int, bool) {
	return s.sessions.MessageID(userID)
}

// Finish saves the summary of the user's finished quiz and closes it.
// The quiz stays active if saving fails so the learner can retry.
func (s *QuizService) Finish(ctx context.Context, userID int64) (*entities.QuizResult, error) {
	ctrl, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoActiveQuiz
	}
	if !ctrl.Finished() {
		return nil, ErrQuizNotFinished
	}

	result := ctrl.Result(userID, s.now())
	if err := s.results.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("save quiz result: %w", err)
	}

	s.sessions.Delete(userID)

	s.logger.Info("quiz finished",
		zap.Int64("user_id", userID),
		zap.String("session_id", result.SessionID),
		zap.Int("correct", result.CorrectCount),
		zap.Int("total", result.TotalQuestions),
	)

	return result, nil
}

// Abandon drops the user's active quiz without saving it.
func (s *QuizService) Abandon(userID int64) bool {
	ctrl, ok := s.sessions.Get(userID)
	if !ok {
		return false
	}
	s.sessions.Delete(userID)

	s.logger.Info("quiz abandoned",
		zap.Int64("user_id", userID),
		zap.String("session_id", ctrl.ID()),
	)
	return true
}

// Categories lists the categories quizzes can be started for.
func (s *QuizService) Categories(ctx context.Context) ([]entities.Category, error) {
	return s.bank.Categories(ctx)
}

// Patterns lists the patterns quizzes can be started for.
func (s *QuizService) Patterns(ctx context.Context) ([]entities.Pattern, error) {
	return s.bank.Patterns(ctx)
}

// questions resolves the question pool and the category recorded for the quiz.
func (s *QuizService) questions(ctx context.Context, opts StartOptions) (string, []entities.Question, error) {
	var (
		category  = opts.Category
		questions []entities.Question
		err       error
	)

	if opts.Pattern != "" {
		questions, err = s.bank.GetByPattern(ctx, opts.Pattern)
		if err == nil && len(questions) > 0 {
			category = questions[0].Category
		}
	} else {
		if category == "" {
			category = entities.CategoryAll
		}
		questions, err = s.bank.GetByCategory(ctx, category)
	}

	switch {
	case errors.Is(err, repository.ErrCategoryNotFound), errors.Is(err, repository.ErrPatternNotFound):
		return "", nil, fmt.Errorf("%w: %w", ErrNoQuestionsAvailable, err)
	case err != nil:
		return "", nil, fmt.Errorf("get questions: %w", err)
	case len(questions) == 0:
		return "", nil, ErrNoQuestionsAvailable
	}

	return category, questions, nil
}

// compose picks up to length questions and optionally shuffles questions and options.
func (s *QuizService) compose(questions []entities.Question, length int) []entities.Question {
	out := make([]entities.Question, len(questions))
	copy(out, questions)

	if s.opts.ShuffleQuestions {
		s.rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}

	if length < len(out) {
		out = out[:length]
	}

	if s.opts.ShuffleOptions {
		for i := range out {
			out[i] = s.shuffledOptions(out[i])
		}
	}

	return out
}

func (s *QuizService) shuffledOptions(q entities.Question) entities.Question {
	q = q.Clone()
	s.rng.Shuffle(len(q.Options), func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})
	return q
}
