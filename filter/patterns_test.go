package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPatternConfig() *PatternConfig {
	return &PatternConfig{
		Blocklist:      []string{"Lottery", "lottery", "jackpot"},
		OffTopic:       []OffTopicGroup{{Theme: "sports", Terms: []string{"Cricket", "c++ match"}}},
		DomainKeywords: []string{"loan", "LOAN", "ration"},
		Stopwords:      []string{"Please", "help"},
	}
}

func TestNewPatternSet(t *testing.T) {
	p, err := NewPatternSet(validPatternConfig())
	assert.NoError(t, err)
	assert.NotNil(t, p)

	// Lists are lower-cased and deduplicated, keeping first-seen order
	assert.Equal(t, []string{"lottery", "jackpot"}, p.blocklist)
	assert.Equal(t, []string{"loan", "ration"}, p.domainKeywords)

	assert.True(t, p.IsStopword("please"))
	assert.True(t, p.IsStopword("HELP"))
	assert.False(t, p.IsStopword("loan"))

	term, ok := p.BlockedTerm("big jackpot")
	assert.True(t, ok)
	assert.Equal(t, "jackpot", term)

	theme, ok := p.OffTopicTheme("cricket")
	assert.True(t, ok)
	assert.Equal(t, "sports", theme)

	// Terms are quoted, not interpreted as regex
	theme, ok = p.OffTopicTheme("c++ match")
	assert.True(t, ok)
	assert.Equal(t, "sports", theme)
	_, ok = p.OffTopicTheme("cc match")
	assert.False(t, ok)

	keyword, ok := p.DomainKeyword("my ration card")
	assert.True(t, ok)
	assert.Equal(t, "ration", keyword)
	_, ok = p.DomainKeyword("nothing here")
	assert.False(t, ok)
}

func TestNewPatternSetStopwordConflict(t *testing.T) {
	cnf := validPatternConfig()
	cnf.Stopwords = append(cnf.Stopwords, "loans")
	p, err := NewPatternSet(cnf)
	assert.ErrorContains(t, err, "satisfies the domain check")
	assert.Nil(t, p)
}

func TestNewPatternSetEmptyLists(t *testing.T) {
	cnf := validPatternConfig()
	cnf.Blocklist = nil
	_, err := NewPatternSet(cnf)
	assert.Error(t, err)

	cnf = validPatternConfig()
	cnf.OffTopic = nil
	_, err = NewPatternSet(cnf)
	assert.Error(t, err)

	cnf = validPatternConfig()
	cnf.DomainKeywords = nil
	_, err = NewPatternSet(cnf)
	assert.Error(t, err)

	cnf = validPatternConfig()
	cnf.OffTopic = []OffTopicGroup{{Theme: "empty"}}
	_, err = NewPatternSet(cnf)
	assert.ErrorContains(t, err, "has no terms")

	// Stopwords are optional
	cnf = validPatternConfig()
	cnf.Stopwords = nil
	_, err = NewPatternSet(cnf)
	assert.NoError(t, err)
}

func TestHasPermittedRune(t *testing.T) {
	p := DefaultPatterns()
	assert.True(t, p.HasPermittedRune("a"))
	assert.True(t, p.HasPermittedRune("Z"))
	assert.True(t, p.HasPermittedRune("7"))
	assert.True(t, p.HasPermittedRune("🙂 क"))
	assert.False(t, p.HasPermittedRune(""))
	assert.False(t, p.HasPermittedRune("?!. "))
	assert.False(t, p.HasPermittedRune("éü"))
	assert.False(t, p.HasPermittedRune("你好"))
}

func TestDefaultPatternsDomainKeywordsAreDeduplicated(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range DefaultPatterns().domainKeywords {
		assert.False(t, seen[k], k)
		seen[k] = true
	}
	assert.True(t, seen["pension"])
	assert.True(t, seen["ayushman"])
}
