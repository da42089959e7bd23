package entities

import (
	"time"
)

// CategoryAll means questions are drawn from every pattern category.
const CategoryAll = "all"

// Allowed quiz lengths offered in the settings menu.
var QuizLengths = []int{5, 10, 15, 20}

// UserSettings stores user-specific quiz preferences.
type UserSettings struct {
	UserID     int64
	QuizLength int    // number of questions per quiz
	Category   string // pattern category slug or CategoryAll
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64, quizLength int) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:     userID,
		QuizLength: quizLength,
		Category:   CategoryAll,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsValidQuizLength reports whether n is one of QuizLengths.
func IsValidQuizLength(n int) bool {
	for _, l := range QuizLengths {
		if l == n {
			return true
		}
	}
	return false
}
