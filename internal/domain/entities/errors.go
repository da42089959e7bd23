package entities

import "errors"

// Quiz session contract violations. Every session method that returns one of
// these leaves the session unchanged.
var (
	ErrEmptyQuiz        = errors.New("quiz has no questions")
	ErrQuestionLocked   = errors.New("question is already checked")
	ErrNoSelection      = errors.New("no option selected")
	ErrNotChecked       = errors.New("current question is not checked")
	ErrEndOfQuiz        = errors.New("already at the last question")
	ErrOptionOutOfRange = errors.New("option index out of range")
)

// IsContractViolation reports whether err is one of the quiz session errors above.
func IsContractViolation(err error) bool {
	switch {
	case errors.Is(err, ErrEmptyQuiz),
		errors.Is(err, ErrQuestionLocked),
		errors.Is(err, ErrNoSelection),
		errors.Is(err, ErrNotChecked),
		errors.Is(err, ErrEndOfQuiz),
		errors.Is(err, ErrOptionOutOfRange):
		return true
	default:
		return false
	}
}
