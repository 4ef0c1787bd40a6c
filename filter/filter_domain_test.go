package filter

import (
	"strings"
	"testing"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
	"github.com/stretchr/testify/assert"
)

func TestDomainFilter(t *testing.T) {
	set, err := NewSet(&SetConfig{
		Order: []classification.Classification{classification.NoDomainContent},
	})
	assert.NoError(t, err)
	assert.NotNil(t, set)

	res, stages := set.Explain("please help me")
	assert.Equal(t, classification.NoDomainContent, res.Category)
	assert.Equal(t, classification.NoDomainContent.Message(), res.Message)
	assert.Len(t, stages, 1)
	assert.Equal(t, DomainFilterName, stages[0].Filter)
	assert.True(t, stages[0].Rejected)
	assert.Equal(t, GenericWordsDetail, stages[0].Detail)

	// Rejected, but not only for generic words
	res, stages = set.Explain("hello there, friend")
	assert.Equal(t, classification.NoDomainContent, res.Category)
	assert.True(t, stages[0].Rejected)
	assert.Equal(t, "", stages[0].Detail)

	res, stages = set.Explain("Am I eligible for PM-KISAN?")
	assert.True(t, res.IsValid)
	assert.Len(t, stages, 1)
	assert.False(t, stages[0].Rejected)
	assert.Equal(t, "kisan", stages[0].Detail)
}

func TestDomainFilterDefaultOrder(t *testing.T) {
	for _, message := range []string{
		"Am I eligible for PM-KISAN?",
		"How do I get Ayushman Bharat card?",
		"What scholarships are available for students?",
		"How to get flood relief assistance?",
		"How can I open a Jan Dhan account?",
		"What loans are available for farmers?",
		"मुझे बैंक loan चाहिए",
	} {
		res := Validate(message)
		assert.True(t, res.IsValid, "%q", message)
		assert.Equal(t, classification.Accepted, res.Category, "%q", message)
		assert.Equal(t, "", res.Message, "%q", message)
	}

	assert.Equal(t, classification.NoDomainContent, Validate("please help me").Category)
	assert.Equal(t, classification.NoDomainContent, Validate("नमस्ते").Category)
}

func TestStopwordsNeverSatisfyDomainCheck(t *testing.T) {
	stopwords := []string{
		"how", "what", "where", "when", "why", "help", "need", "want",
		"apply", "get", "find", "information", "about", "tell", "explain",
		"please", "can", "you", "me", "my", "i", "is", "are", "the",
	}
	for _, word := range stopwords {
		assert.True(t, DefaultPatterns().IsStopword(word), word)
		_, ok := DefaultPatterns().DomainKeyword(word)
		assert.False(t, ok, word)
	}

	res := Validate(strings.Join(stopwords, " "))
	assert.Equal(t, classification.NoDomainContent, res.Category)

	assert.True(t, DefaultPatterns().OnlyStopwords("Please, HELP me?"))
	assert.False(t, DefaultPatterns().OnlyStopwords("please help me with a loan"))
	assert.False(t, DefaultPatterns().OnlyStopwords("?!"))
}
