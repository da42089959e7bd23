// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidQuestion = errors.New("invalid question")

// Option is one of the answers a learner can pick for a question.
// Its position in Question.Options is its identity.
type Option struct {
	Text      string `json:"text"`    // option text shown to the learner
	IsCorrect bool   `json:"correct"` // whether this option is the right answer
}

// Question is a single-answer multiple choice question about a design pattern.
// Questions are immutable once loaded from the catalog.
type Question struct {
	ID          string   `json:"id"`                    // stable identifier, unique within the catalog
	Pattern     string   `json:"-"`                     // slug of the pattern the question belongs to
	Category    string   `json:"-"`                     // pattern category: creational, structural, behavioral
	Prompt      string   `json:"prompt"`                // question text
	Options     []Option `json:"options"`               // ordered options
	Explanation string   `json:"explanation,omitempty"` // revealed after the answer is checked
}

// Validate checks that the question has a prompt, at least two options
// and exactly one correct option.
func (q Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidQuestion)
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: %s: empty prompt", ErrInvalidQuestion, q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: %s: expected at least 2 options, got %d", ErrInvalidQuestion, q.ID, len(q.Options))
	}

	correct := 0
	for i, opt := range q.Options {
		if strings.TrimSpace(opt.Text) == "" {
			return fmt.Errorf("%w: %s: option %d is empty", ErrInvalidQuestion, q.ID, i)
		}
		if opt.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w: %s: expected exactly 1 correct option, got %d", ErrInvalidQuestion, q.ID, correct)
	}

	return nil
}

// CorrectIndex returns the index of the correct option, or -1 if there is none.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt.IsCorrect {
			return i
		}
	}
	return -1
}

// HasOption reports whether index addresses one of the question's options.
func (q Question) HasOption(index int) bool {
	return index >= 0 && index < len(q.Options)
}

// Clone returns a copy of the question that does not share the options slice.
func (q Question) Clone() Question {
	out := q
	out.Options = append([]Option(nil), q.Options...)
	return out
}
