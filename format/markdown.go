package format

import (
	"strings"
)

// Markdown - Renders blocks as a markdown document. Spacers are dropped because every other block already
// becomes its own paragraph, and consecutive bullets form a single list.
func Markdown(blocks []Block) string {
	sb := strings.Builder{}
	var prev Kind
	for _, b := range blocks {
		if b.Kind == KindSpacer {
			continue
		}
		if sb.Len() > 0 {
			if b.Kind == KindBullet && prev == KindBullet {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		switch b.Kind {
		case KindHeading:
			sb.WriteString("**" + b.Text + "**")
		case KindBullet:
			sb.WriteString("- " + b.Text)
		default:
			sb.WriteString(b.Text)
		}
		prev = b.Kind
	}
	return sb.String()
}

// Plain - The text of every block joined by newlines, with spacers as empty lines.
func Plain(blocks []Block) string {
	lines := make([]string, len(blocks))
	for i, b := range blocks {
		lines[i] = b.Text
	}
	return strings.Join(lines, "\n")
}
