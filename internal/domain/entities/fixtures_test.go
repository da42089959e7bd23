package entities

import "fmt"

// newQuestion builds a question whose options are named o0..o(n-1) with the
// option at correct marked as the right answer.
func newQuestion(id string, n, correct int) Question {
	opts := make([]Option, n)
	for i := range opts {
		opts[i] = Option{Text: fmt.Sprintf("o%d", i), IsCorrect: i == correct}
	}
	return Question{
		ID:          id,
		Prompt:      "prompt " + id,
		Options:     opts,
		Explanation: "because " + id,
	}
}

// threeQuestions returns a quiz with correct indices [1, 0, 2].
func threeQuestions() []Question {
	return []Question{
		newQuestion("q1", 3, 1),
		newQuestion("q2", 3, 0),
		newQuestion("q3", 3, 2),
	}
}
