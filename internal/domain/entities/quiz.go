package entities

import "fmt"

// NoSelection marks an answer without a selected option.
const NoSelection = -1

// Answer is the learner's answer to a single question.
type Answer struct {
	SelectedIndex int  // selected option index or NoSelection
	Checked       bool // submitted and locked
	Correct       bool // meaningful only once checked
}

// HasSelection reports whether an option is selected.
func (a Answer) HasSelection() bool {
	return a.SelectedIndex != NoSelection
}

// QuizSession is one learner's pass through an ordered list of questions.
//
// Navigation is forward-only: the current index moves by one per Advance and
// only after the current question has been checked. Answers are created on
// first selection and are locked once checked.
//
// A QuizSession is not safe for concurrent use.
type QuizSession struct {
	questions    []Question
	answers      map[int]*Answer // sparse, keyed by question index
	currentIndex int
}

// NewQuizSession creates a session over a copy of questions.
func NewQuizSession(questions []Question) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = q.Clone()
	}

	return &QuizSession{
		questions: qs,
		answers:   make(map[int]*Answer),
	}, nil
}

// QuestionCount returns the number of questions in the session.
func (s *QuizSession) QuestionCount() int {
	return len(s.questions)
}

// CurrentIndex returns the zero-based index of the current question.
func (s *QuizSession) CurrentIndex() int {
	return s.currentIndex
}

// CurrentQuestion returns the question the learner is on.
func (s *QuizSession) CurrentQuestion() Question {
	return s.questions[s.currentIndex]
}

// Question returns the question at index i.
func (s *QuizSession) Question(i int) (Question, bool) {
	if i < 0 || i >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[i], true
}

// Answer returns a copy of the answer for question i, if the learner has
// interacted with it.
func (s *QuizSession) Answer(i int) (Answer, bool) {
	a, ok := s.answers[i]
	if !ok {
		return Answer{SelectedIndex: NoSelection}, false
	}
	return *a, true
}

// CurrentAnswer returns the answer for the current question.
func (s *QuizSession) CurrentAnswer() (Answer, bool) {
	return s.Answer(s.currentIndex)
}

// IsLast reports whether the current question is the last one.
func (s *QuizSession) IsLast() bool {
	return s.currentIndex == len(s.questions)-1
}

// IsFinished reports whether the last question has been checked.
func (s *QuizSession) IsFinished() bool {
	if !s.IsLast() {
		return false
	}
	a, ok := s.CurrentAnswer()
	return ok && a.Checked
}

// SelectOption selects an option of the current question, replacing any
// previous selection.
func (s *QuizSession) SelectOption(optionIndex int) error {
	q := s.CurrentQuestion()
	if !q.HasOption(optionIndex) {
		return fmt.Errorf("%w: %d of %d", ErrOptionOutOfRange, optionIndex, len(q.Options))
	}

	a, ok := s.answers[s.currentIndex]
	if ok && a.Checked {
		return ErrQuestionLocked
	}
	if !ok {
		a = &Answer{}
		s.answers[s.currentIndex] = a
	}
	a.SelectedIndex = optionIndex

	return nil
}

// CheckCurrentAnswer submits the current selection and locks the answer.
func (s *QuizSession) CheckCurrentAnswer() (Evaluation, error) {
	a, ok := s.answers[s.currentIndex]
	if !ok || !a.HasSelection() {
		return Evaluation{}, ErrNoSelection
	}
	if a.Checked {
		return Evaluation{}, ErrQuestionLocked
	}

	eval := Evaluate(s.CurrentQuestion(), a.SelectedIndex)
	a.Checked = true
	a.Correct = eval.Correct

	return eval, nil
}

// Advance moves to the next question.
func (s *QuizSession) Advance() error {
	a, ok := s.answers[s.currentIndex]
	if !ok || !a.Checked {
		return ErrNotChecked
	}
	if s.IsLast() {
		return ErrEndOfQuiz
	}

	s.currentIndex++
	return nil
}

// Reset clears all answers and returns to the first question.
func (s *QuizSession) Reset() {
	s.answers = make(map[int]*Answer)
	s.currentIndex = 0
}
