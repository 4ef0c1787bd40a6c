package backend

import (
	"strings"
)

// MaxForwardedLength - Forwarded text is cut to this many characters.
const MaxForwardedLength = 5000

var unsafeCharacters = strings.NewReplacer(
	"<", "",
	">", "",
	"{", "",
	"}", "",
	"[", "",
	"]", "",
	"\\", "",
)

// SanitizeInput - Strips characters commonly used for markup or prompt injection, caps the length, then trims
// surrounding whitespace.
func SanitizeInput(text string) string {
	text = unsafeCharacters.Replace(text)
	if runes := []rune(text); len(runes) > MaxForwardedLength {
		text = string(runes[:MaxForwardedLength])
	}
	return strings.TrimSpace(text)
}
