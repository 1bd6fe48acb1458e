package logger

import (
	"fmt"
	"strings"
)

// SanitizeText redacts free-text chat input before logging. Everything the
// user types into the assistant is potentially sensitive, so logs carry only
// shape information.
func SanitizeText(text string) string {
	if text == "" {
		return "<empty>"
	}
	words := strings.Fields(text)
	return fmt.Sprintf("<redacted: %d words, %d chars>", len(words), len(text))
}
