package telegram

import (
	"fmt"
	"strings"
)

// buildProgressBar creates a text progress bar.
func buildProgressBar(current, total, length int) string {
	if total <= 0 {
		return fmt.Sprintf("[%s]", strings.Repeat("░", length))
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}
	if filled < 0 {
		filled = 0
	}

	empty := length - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}
