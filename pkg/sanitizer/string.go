package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeRoom only trims: room conflicts compare the stored string exactly,
// and stored rows are read back trimmed.
func NormalizeRoom(room string) string {
	return strings.TrimSpace(room)
}

func NormalizeTrainer(trainer string) string {
	return TrimAndNormalize(trainer)
}

func NormalizeSessionType(sessionType string) string {
	return TrimAndNormalize(sessionType)
}
