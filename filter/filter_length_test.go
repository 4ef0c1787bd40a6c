package filter

import (
	"strings"
	"testing"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
	"github.com/stretchr/testify/assert"
)

func TestLengthFilter(t *testing.T) {
	set, err := NewSet(&SetConfig{
		Order: []classification.Classification{classification.TooShort, classification.TooLong},
	})
	assert.NoError(t, err)
	assert.NotNil(t, set)

	assertCategory := func(message string, expected classification.Classification) {
		res := set.Validate(message)
		assert.Equal(t, expected, res.Category, "message of %d bytes", len(message))
		assert.Equal(t, expected == classification.Accepted, res.IsValid)
		assert.Equal(t, expected.Message(), res.Message)
	}

	assertCategory("", classification.TooShort)
	assertCategory("a", classification.TooShort)
	assertCategory("ab", classification.TooShort)
	assertCategory("abc", classification.Accepted)
	assertCategory(strings.Repeat("a", MaxLength), classification.Accepted)
	assertCategory(strings.Repeat("a", MaxLength+1), classification.TooLong)

	// Length is counted in characters, not bytes
	assertCategory("कख", classification.TooShort)
	assertCategory("कखग", classification.Accepted)
	assertCategory(strings.Repeat("क", MaxLength), classification.Accepted)
	assertCategory(strings.Repeat("क", MaxLength+1), classification.TooLong)
}

func TestLengthFilterDoesNotTrim(t *testing.T) {
	// The caller trims. Whitespace counts towards the length.
	res := Validate("  ")
	assert.Equal(t, classification.TooShort, res.Category)

	set, err := NewSet(&SetConfig{Order: []classification.Classification{classification.TooShort}})
	assert.NoError(t, err)
	assert.True(t, set.Validate("   ").IsValid)
	assert.True(t, set.Validate(" a ").IsValid)
}

func TestLengthWinsOverEverythingElse(t *testing.T) {
	// Two character prefixes of blocked terms, emoji and whitespace are all too short before anything else
	for _, message := range []string{"", " ", "\n\n", "gu", "xx", "se", "🔫", "!!", "आ"} {
		res := Validate(message)
		assert.False(t, res.IsValid, "%q", message)
		assert.Equal(t, classification.TooShort, res.Category, "%q", message)
		assert.Equal(t, classification.TooShort.Message(), res.Message, "%q", message)
	}

	// Long messages are TooLong even when they would also be spam or inappropriate
	for _, message := range []string{
		strings.Repeat("a", MaxLength+1),
		strings.Repeat("gun ", 1251),
		strings.Repeat("loan ", 1001),
	} {
		res := Validate(message)
		assert.Equal(t, classification.TooLong, res.Category)
	}
}
