package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Kind string

const (
	KindSpacer    Kind = "spacer"
	KindHeading   Kind = "heading"
	KindBullet    Kind = "bullet"
	KindCategory  Kind = "category"
	KindParagraph Kind = "paragraph"
)

// Block - One rendered line of a guardrail message. Text is empty for spacers.
type Block struct {
	Kind Kind   `json:"type"`
	Text string `json:"text,omitempty"`
}

const boldMarker = "**"
const bulletGlyph = "•"

// categoryMarkers - Emoji which start a category line. Only the first rune is compared, so the trailing
// variation selector (U+FE0F) some of them carry is optional.
var categoryMarkers = map[rune]bool{
	'🏥': true,
	'🌾': true,
	'💰': true,
	'🏛': true,
	'📚': true,
	'🌦': true,
	'⚠': true,
	'🤔': true,
	'👋': true,
}

// Format - Splits text into lines and classifies each one on its own. Never fails: any string, including
// the empty string, produces one block per line.
func Format(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, classifyLine(line))
	}
	return blocks
}

func classifyLine(line string) Block {
	trimmed := trimLine(line)
	if trimmed == "" {
		return Block{Kind: KindSpacer}
	}

	clean := strings.ReplaceAll(trimmed, boldMarker, "")
	if strings.HasPrefix(trimmed, boldMarker) && strings.Contains(trimmed, boldMarker+":") {
		return Block{Kind: KindHeading, Text: clean}
	}
	if strings.HasPrefix(clean, bulletGlyph) {
		return Block{Kind: KindBullet, Text: trimLine(strings.TrimPrefix(clean, bulletGlyph))}
	}
	if r, _ := utf8.DecodeRuneInString(clean); categoryMarkers[r] {
		return Block{Kind: KindCategory, Text: clean}
	}
	return Block{Kind: KindParagraph, Text: clean}
}

// trimLine - Like strings.TrimSpace, but also strips byte order marks, which editors and some backends leave
// at the start of a reply.
func trimLine(line string) string {
	return strings.TrimFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
