package service

import (
	"time"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
)

// QuestionState is the state of the current question as seen by the learner.
type QuestionState int

const (
	QuestionUnanswered QuestionState = iota // nothing selected
	QuestionSelected                        // an option is selected but not checked
	QuestionChecked                         // answer submitted and locked
)

func (s QuestionState) String() string {
	switch s {
	case QuestionUnanswered:
		return "unanswered"
	case QuestionSelected:
		return "selected"
	case QuestionChecked:
		return "checked"
	default:
		return "unknown"
	}
}

// OptionView is an option ready to be rendered.
type OptionView struct {
	Index  int
	Text   string
	Status entities.OptionStatus
}

// ViewState is a render-ready snapshot of a quiz.
type ViewState struct {
	SessionID     string
	QuestionIndex int // zero-based
	QuestionCount int
	QuestionID    string
	Pattern       string
	Prompt        string
	Options       []OptionView
	State         QuestionState

	ExplanationVisible bool
	Explanation        string
	AnsweredCorrectly  bool // meaningful only when State is QuestionChecked

	CanCheck  bool
	CanNext   bool
	CanFinish bool // last question checked

	Progress entities.Progress
}

// QuizController drives a quiz session in response to learner actions and
// produces the view state after every action. Out-of-order actions return the
// session's contract errors and leave the session untouched.
type QuizController struct {
	id        string
	category  string
	startedAt time.Time
	session   *entities.QuizSession
}

// NewQuizController creates a controller over a new session of questions.
func NewQuizController(id, category string, questions []entities.Question, startedAt time.Time) (*QuizController, error) {
	session, err := entities.NewQuizSession(questions)
	if err != nil {
		return nil, err
	}

	return &QuizController{
		id:        id,
		category:  category,
		startedAt: startedAt,
		session:   session,
	}, nil
}

// ID returns the session identifier.
func (c *QuizController) ID() string { return c.id }

// Category returns the category the questions were drawn from.
func (c *QuizController) Category() string { return c.category }

// StartedAt returns when the quiz was started.
func (c *QuizController) StartedAt() time.Time { return c.startedAt }

// State returns the state of the current question.
func (c *QuizController) State() QuestionState {
	a, ok := c.session.CurrentAnswer()
	switch {
	case !ok || !a.HasSelection():
		return QuestionUnanswered
	case a.Checked:
		return QuestionChecked
	default:
		return QuestionSelected
	}
}

// Finished reports whether the last question has been checked.
func (c *QuizController) Finished() bool {
	return c.session.IsFinished()
}

// OnOptionClick selects option i of the current question.
func (c *QuizController) OnOptionClick(i int) (ViewState, error) {
	if err := c.session.SelectOption(i); err != nil {
		return ViewState{}, err
	}
	return c.View(), nil
}

// OnCheckClick submits the current selection.
func (c *QuizController) OnCheckClick() (ViewState, error) {
	if _, err := c.session.CheckCurrentAnswer(); err != nil {
		return ViewState{}, err
	}
	return c.View(), nil
}

// OnNextClick moves to the next question.
func (c *QuizController) OnNextClick() (ViewState, error) {
	if err := c.session.Advance(); err != nil {
		return ViewState{}, err
	}
	return c.View(), nil
}

// OnRestartClick clears all answers and returns to the first question.
func (c *QuizController) OnRestartClick() ViewState {
	c.session.Reset()
	return c.View()
}

// View renders the current question.
func (c *QuizController) View() ViewState {
	q := c.session.CurrentQuestion()
	a, _ := c.session.CurrentAnswer()
	state := c.State()

	v := ViewState{
		SessionID:     c.id,
		QuestionIndex: c.session.CurrentIndex(),
		QuestionCount: c.session.QuestionCount(),
		QuestionID:    q.ID,
		Pattern:       q.Pattern,
		Prompt:        q.Prompt,
		Options:       make([]OptionView, len(q.Options)),
		State:         state,
		CanCheck:      state == QuestionSelected,
		Progress:      entities.ComputeProgress(c.session),
	}

	var statuses []entities.OptionStatus
	if state == QuestionChecked {
		eval := entities.Evaluate(q, a.SelectedIndex)
		statuses = eval.Statuses
		v.AnsweredCorrectly = eval.Correct
		v.ExplanationVisible = true
		v.Explanation = q.Explanation
		v.CanNext = !c.session.IsLast()
		v.CanFinish = c.session.IsLast()
	}

	for i, opt := range q.Options {
		status := entities.StatusNeutral
		switch {
		case statuses != nil:
			status = statuses[i]
		case a.HasSelection() && a.SelectedIndex == i:
			status = entities.StatusSelected
		}
		v.Options[i] = OptionView{Index: i, Text: opt.Text, Status: status}
	}

	return v
}

// Result builds the summary of the quiz for userID.
func (c *QuizController) Result(userID int64, completedAt time.Time) *entities.QuizResult {
	p := entities.ComputeProgress(c.session)
	r := &entities.QuizResult{
		SessionID:      c.id,
		UserID:         userID,
		Category:       c.category,
		TotalQuestions: p.Total,
		AnsweredCount:  p.Answered,
		CorrectCount:   p.Correct,
		StartedAt:      c.startedAt,
		CompletedAt:    completedAt,
	}

	for i := 0; i < c.session.QuestionCount(); i++ {
		a, ok := c.session.Answer(i)
		if !ok || !a.Checked {
			continue
		}
		q, _ := c.session.Question(i)
		r.Answers = append(r.Answers, entities.ResultAnswer{
			QuestionID:    q.ID,
			QuestionOrder: i + 1,
			SelectedIndex: a.SelectedIndex,
			IsCorrect:     a.Correct,
		})
	}

	return r
}
