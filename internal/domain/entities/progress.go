package entities

import "math"

// Progress is a read-only projection of a quiz session used for the progress bar.
type Progress struct {
	Answered        int     // checked answers
	Correct         int     // checked answers that were right
	Total           int     // questions in the session
	PercentComplete float64 // Answered / Total * 100, one decimal place
}

// ComputeProgress derives progress from the session's answers.
func ComputeProgress(s *QuizSession) Progress {
	p := Progress{Total: s.QuestionCount()}
	for _, a := range s.answers {
		if !a.Checked {
			continue
		}
		p.Answered++
		if a.Correct {
			p.Correct++
		}
	}
	p.PercentComplete = percent(p.Answered, p.Total)
	return p
}

// Accuracy returns the share of correct answers among checked ones, in percent.
func (p Progress) Accuracy() float64 {
	return percent(p.Correct, p.Answered)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundTenth(float64(part) / float64(total) * 100)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
