package format

import (
	"strings"
	"testing"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	blocks := Format("**Heading**:\nLine one\n\n• Point A\n🏥 Health")
	assert.Equal(t, []Block{
		{Kind: KindHeading, Text: "Heading:"},
		{Kind: KindParagraph, Text: "Line one"},
		{Kind: KindSpacer},
		{Kind: KindBullet, Text: "Point A"},
		{Kind: KindCategory, Text: "🏥 Health"},
	}, blocks)
}

func TestFormatEmpty(t *testing.T) {
	assert.Equal(t, []Block{{Kind: KindSpacer}}, Format(""))
	assert.Equal(t, []Block{{Kind: KindSpacer}, {Kind: KindSpacer}}, Format(" \t\n  "))

	// Byte order marks count as whitespace
	assert.Equal(t, []Block{{Kind: KindSpacer}}, Format("\ufeff"))
	assert.Equal(t, []Block{{Kind: KindParagraph, Text: "Hello"}, {Kind: KindSpacer}}, Format("\ufeffHello\n \ufeff "))
	assert.Equal(t, Block{Kind: KindBullet, Text: "Point A"}, classifyLine("•\ufeff Point A"))
}

func TestFormatHeading(t *testing.T) {
	assert.Equal(t, Block{Kind: KindHeading, Text: "Documents needed:"}, classifyLine("  **Documents needed**:  "))
	assert.Equal(t, Block{Kind: KindHeading, Text: "Step 1: apply online"}, classifyLine("**Step 1**: apply **online**"))

	// Bold text without the closing "**:" is just emphasis
	assert.Equal(t, Block{Kind: KindParagraph, Text: "Important"}, classifyLine("**Important**"))
	assert.Equal(t, Block{Kind: KindParagraph, Text: "Note the colon:"}, classifyLine("Note the **colon**:"))
}

func TestFormatBullet(t *testing.T) {
	assert.Equal(t, Block{Kind: KindBullet, Text: "Aadhaar card"}, classifyLine("• Aadhaar card"))
	assert.Equal(t, Block{Kind: KindBullet, Text: "Bank passbook"}, classifyLine("   •   Bank passbook"))
	assert.Equal(t, Block{Kind: KindBullet, Text: "Income certificate"}, classifyLine("**• Income certificate**"))
	assert.Equal(t, Block{Kind: KindBullet, Text: ""}, classifyLine("•"))

	// Bullets only count at the start of the line
	assert.Equal(t, Block{Kind: KindParagraph, Text: "Bring these • items"}, classifyLine("Bring these • items"))
}

func TestFormatCategory(t *testing.T) {
	for _, line := range []string{
		"🏥 Healthcare", "🌾 Agriculture", "💰 Finance", "🏛️ Government Schemes", "🏛 Government Schemes",
		"📚 Education", "🌦️ Climate", "🌦 Climate", "⚠️ Warning", "⚠ Warning", "🤔 Hmm", "👋 Hello",
	} {
		assert.Equal(t, Block{Kind: KindCategory, Text: line}, classifyLine(line), line)
	}

	// Bold markers are stripped from category lines
	assert.Equal(t, Block{Kind: KindCategory, Text: "🏥 Healthcare"}, classifyLine("**🏥 Healthcare**"))

	// Other emoji are ordinary paragraphs
	assert.Equal(t, Block{Kind: KindParagraph, Text: "📋 Legal documentation help"}, classifyLine("📋 Legal documentation help"))
	assert.Equal(t, Block{Kind: KindParagraph, Text: "😊 Thanks"}, classifyLine("😊 Thanks"))

	// Markers must lead the line
	assert.Equal(t, Block{Kind: KindParagraph, Text: "Hi there! 👋"}, classifyLine("Hi there! 👋"))
}

func TestFormatRejectionMessages(t *testing.T) {
	blocks := Format(classification.TooShort.Message())
	assert.Equal(t, []Block{
		{Kind: KindParagraph, Text: "Hi there! 👋"},
		{Kind: KindSpacer},
		{Kind: KindParagraph, Text: "Your message seems a bit short. Could you please describe your question in a little more detail? I'm here to help!"},
	}, blocks)

	blocks = Format(classification.Inappropriate.Message())
	kinds := make([]Kind, len(blocks))
	for i, b := range blocks {
		kinds[i] = b.Kind
	}
	assert.Equal(t, []Kind{
		KindParagraph, KindSpacer, KindParagraph, KindSpacer,
		KindCategory, KindCategory, KindCategory, KindCategory, KindCategory,
		KindParagraph,
		KindSpacer, KindParagraph,
	}, kinds)
	assert.Equal(t, "🏛️ Government schemes and welfare", blocks[7].Text)

	// Every template formats to one block per line
	for _, cls := range classification.All() {
		if !cls.IsRejection() {
			continue
		}
		msg := cls.Message()
		assert.Len(t, Format(msg), strings.Count(msg, "\n")+1, cls.String())
	}
}

func TestFormatIdempotent(t *testing.T) {
	for _, text := range []string{
		"Line one\nLine two",
		"Your application is pending.\n\nPlease check again tomorrow.",
		"   padded line   \nanother",
		"नमस्ते\nआपका आवेदन स्वीकार हो गया है",
	} {
		first := Format(text)
		for _, b := range first {
			assert.Contains(t, []Kind{KindParagraph, KindSpacer}, b.Kind)
		}
		assert.Equal(t, first, Format(Plain(first)), "%q", text)
	}

	// Bullets and categories also survive a round trip once bold markers are gone
	first := Format("🏥 Health\n• Point A")
	assert.Equal(t, first, Format(Plain([]Block{first[0], {Kind: KindBullet, Text: "• " + first[1].Text}})))
}

func TestFormatNeverPanics(t *testing.T) {
	for _, text := range []string{"\x00", "**", "**:", "•", "\xff\xfe", "\r\n\r\n", strings.Repeat("**", 1000)} {
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, Format(text))
		})
	}
}
