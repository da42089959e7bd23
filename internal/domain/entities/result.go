package entities

import "time"

// QuizResult is the persisted summary of a finished quiz.
type QuizResult struct {
	ID             int64
	SessionID      string // uuid of the in-memory session
	UserID         int64
	Category       string
	TotalQuestions int
	AnsweredCount  int
	CorrectCount   int
	StartedAt      time.Time
	CompletedAt    time.Time
	Answers        []ResultAnswer
}

// ResultAnswer is one checked answer of a finished quiz.
type ResultAnswer struct {
	QuestionID    string
	QuestionOrder int
	SelectedIndex int
	IsCorrect     bool
}

// ScorePercent returns the share of correct answers over all questions.
func (r *QuizResult) ScorePercent() float64 {
	return percent(r.CorrectCount, r.TotalQuestions)
}

// QuizStats aggregates all finished quizzes of a user.
type QuizStats struct {
	QuizzesCompleted  int
	QuestionsAnswered int
	CorrectAnswers    int
	BestScore         float64    // best ScorePercent of a single quiz
	LastCompletedAt   *time.Time // nil when no quiz was finished yet
}

// Accuracy returns the share of correct answers, in percent.
func (s *QuizStats) Accuracy() float64 {
	return percent(s.CorrectAnswers, s.QuestionsAnswered)
}
