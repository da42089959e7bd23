package entities

// OptionStatus is the visual state of an option.
type OptionStatus string

const (
	StatusNeutral   OptionStatus = "neutral"   // nothing to highlight
	StatusSelected  OptionStatus = "selected"  // picked by the learner, not yet checked
	StatusCorrect   OptionStatus = "correct"   // the right answer, shown once checked
	StatusIncorrect OptionStatus = "incorrect" // picked by the learner and wrong
)

// Evaluation is the outcome of comparing a selection with the correct answer.
type Evaluation struct {
	Correct  bool
	Statuses []OptionStatus // one entry per option, same order as Question.Options
}

// Evaluate compares selectedIndex with the correct option of q.
// The correct option is always marked correct, so the learner sees the right
// answer even after a wrong pick. A selectedIndex outside the options counts
// as a wrong answer.
func Evaluate(q Question, selectedIndex int) Evaluation {
	statuses := make([]OptionStatus, len(q.Options))
	for i, opt := range q.Options {
		switch {
		case opt.IsCorrect:
			statuses[i] = StatusCorrect
		case i == selectedIndex:
			statuses[i] = StatusIncorrect
		default:
			statuses[i] = StatusNeutral
		}
	}

	return Evaluation{
		Correct:  q.HasOption(selectedIndex) && q.Options[selectedIndex].IsCorrect,
		Statuses: statuses,
	}
}
