package format

import (
	"strings"
)

type Style string

const (
	StylePlain   Style = "plain"
	StyleInfo    Style = "info"
	StyleWarning Style = "warning"
)

const warningMarker = "⚠️"

var infoMarkers = []string{"🤔", "👋"}

// guardrailBulletCount - Replies with at least this many bullets are rendered as guardrail messages.
const guardrailBulletCount = 3

// LooksLikeGuardrail - True if a backend reply should be rendered through Format rather than shown as a
// plain text bubble.
func LooksLikeGuardrail(text string) bool {
	if strings.Contains(text, warningMarker) || hasInfoMarker(text) {
		return true
	}
	return strings.Count(text, bulletGlyph) >= guardrailBulletCount
}

// DetectStyle - Picks the visual style for a guardrail message. Warnings win over info markers.
func DetectStyle(text string) Style {
	if strings.Contains(text, warningMarker) {
		return StyleWarning
	}
	if hasInfoMarker(text) {
		return StyleInfo
	}
	return StylePlain
}

func hasInfoMarker(text string) bool {
	for _, m := range infoMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
