package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	goSet "github.com/deckarep/golang-set"
)

const MinLength = 3
const MaxLength = 5000

// MaxCharacterRun - A single character repeated this many times in a row marks a message as spam.
const MaxCharacterRun = 11

// OffTopicGroup - A themed list of terms matched on word boundaries.
type OffTopicGroup struct {
	Theme string
	Terms []string
}

// PatternConfig - The raw lists a PatternSet is compiled from.
type PatternConfig struct {
	// Lower-case substrings which mark a message as inappropriate.
	Blocklist []string

	// Theme groups which mark a message as off-topic. Each group becomes one word-boundary regex.
	OffTopic []OffTopicGroup

	// Lower-case substrings, at least one of which must appear for a message to be on-topic.
	DomainKeywords []string

	// Generic words which must never satisfy the domain check on their own.
	Stopwords []string
}

type offTopicPattern struct {
	theme string
	regex *regexp.Regexp
}

// PatternSet - The compiled, read-only form of a PatternConfig. Safe for concurrent use because nothing
// mutates it after NewPatternSet returns.
type PatternSet struct {
	scripts        *unicode.RangeTable
	blocklist      []string
	offTopic       []offTopicPattern
	domainKeywords []string
	stopwords      goSet.Set
}

// NewPatternSet - Compiles the config. Returns an error if a regex fails to compile, a list is empty, or a
// stopword would satisfy the domain check by itself.
func NewPatternSet(cnf *PatternConfig) (*PatternSet, error) {
	if len(cnf.Blocklist) == 0 || len(cnf.OffTopic) == 0 || len(cnf.DomainKeywords) == 0 {
		return nil, errors.New("blocklist, off-topic groups and domain keywords must all be non-empty")
	}

	p := &PatternSet{
		scripts:        permittedScripts,
		blocklist:      dedupeLower(cnf.Blocklist),
		offTopic:       make([]offTopicPattern, 0, len(cnf.OffTopic)),
		domainKeywords: dedupeLower(cnf.DomainKeywords),
		stopwords:      goSet.NewThreadUnsafeSet(),
	}

	for _, group := range cnf.OffTopic {
		if len(group.Terms) == 0 {
			return nil, fmt.Errorf("off-topic group %s has no terms", group.Theme)
		}
		quoted := make([]string, len(group.Terms))
		for i, term := range group.Terms {
			quoted[i] = regexp.QuoteMeta(strings.ToLower(term))
		}
		regex, err := regexp.Compile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("error compiling off-topic group %s", group.Theme), err)
		}
		p.offTopic = append(p.offTopic, offTopicPattern{theme: group.Theme, regex: regex})
	}

	for _, word := range cnf.Stopwords {
		word = strings.ToLower(word)
		if keyword, ok := p.DomainKeyword(word); ok {
			return nil, fmt.Errorf("stopword %q satisfies the domain check via keyword %q", word, keyword)
		}
		p.stopwords.Add(word)
	}

	return p, nil
}

func mustNewPatternSet(cnf *PatternConfig) *PatternSet {
	p, err := NewPatternSet(cnf)
	if err != nil {
		panic(err)
	}
	return p
}

func dedupeLower(values []string) []string {
	seen := goSet.NewThreadUnsafeSet()
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(v)
		if v == "" || !seen.Add(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// HasPermittedRune - True if any rune is an ASCII letter or digit, or belongs to a supported script.
func (p *PatternSet) HasPermittedRune(text string) bool {
	for _, r := range text {
		if unicode.Is(p.scripts, r) {
			return true
		}
	}
	return false
}

// BlockedTerm - Returns the first blocklist entry contained in the lower-cased text.
func (p *PatternSet) BlockedTerm(lower string) (string, bool) {
	for _, term := range p.blocklist {
		if strings.Contains(lower, term) {
			return term, true
		}
	}
	return "", false
}

// OffTopicTheme - Returns the theme of the first off-topic group matching the lower-cased text.
func (p *PatternSet) OffTopicTheme(lower string) (string, bool) {
	for _, pattern := range p.offTopic {
		if pattern.regex.MatchString(lower) {
			return pattern.theme, true
		}
	}
	return "", false
}

// DomainKeyword - Returns the first domain keyword contained in the lower-cased text.
func (p *PatternSet) DomainKeyword(lower string) (string, bool) {
	for _, keyword := range p.domainKeywords {
		if strings.Contains(lower, keyword) {
			return keyword, true
		}
	}
	return "", false
}

func (p *PatternSet) IsStopword(word string) bool {
	return p.stopwords.Contains(strings.ToLower(word))
}

// OnlyStopwords - True if the text has at least one word and every word is a stopword.
func (p *PatternSet) OnlyStopwords(text string) bool {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
	})
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !p.IsStopword(w) {
			return false
		}
	}
	return true
}

// DefaultPatterns - The process-wide pattern set used by the default filter Set.
func DefaultPatterns() *PatternSet {
	return defaultPatterns
}

// ASCII alphanumerics plus Arabic, Devanagari, Bengali, Gurmukhi, Gujarati, Oriya, Telugu and Malayalam.
var permittedScripts = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '0', Hi: '9', Stride: 1},
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1},
		{Lo: 0x0900, Hi: 0x097F, Stride: 1},
		{Lo: 0x0980, Hi: 0x09FF, Stride: 1},
		{Lo: 0x0A00, Hi: 0x0A7F, Stride: 1},
		{Lo: 0x0A80, Hi: 0x0AFF, Stride: 1},
		{Lo: 0x0B00, Hi: 0x0B7F, Stride: 1},
		{Lo: 0x0C00, Hi: 0x0C7F, Stride: 1},
		{Lo: 0x0D00, Hi: 0x0D7F, Stride: 1},
	},
	LatinOffset: 3,
}

var defaultPatterns = mustNewPatternSet(&PatternConfig{
	Blocklist: []string{
		"porn", "xxx", "sex", "nude", "naked",
		"hack", "crack", "pirate", "torrent",
		"drug", "cocaine", "heroin", "marijuana",
		"weapon", "gun", "bomb", "explosive",
		"suicide", "kill yourself",
		"scam", "fraud scheme", "money laundering",
		"casino", "gambling", "betting",
	},
	OffTopic: []OffTopicGroup{
		{Theme: "entertainment", Terms: []string{"movie", "film", "cinema", "song", "music", "singer", "actor", "actress", "celebrity", "bollywood", "hollywood"}},
		{Theme: "entertainment", Terms: []string{"game", "video game", "gaming", "xbox", "playstation", "pubg", "fortnite", "minecraft"}},
		{Theme: "entertainment", Terms: []string{"netflix", "amazon prime", "hotstar", "youtube", "tiktok", "instagram", "facebook", "twitter", "snapchat", "whatsapp"}},
		{Theme: "entertainment", Terms: []string{"tv show", "series", "episode", "season", "anime", "cartoon"}},
		{Theme: "sports", Terms: []string{"cricket", "football", "soccer", "hockey", "tennis", "basketball", "badminton", "ipl", "world cup"}},
		{Theme: "sports", Terms: []string{"match", "player", "team", "tournament", "score", "champion", "league"}},
		{Theme: "food", Terms: []string{"recipe", "cook", "cooking", "restaurant", "cafe", "pizza", "burger", "biryani", "chai", "coffee"}},
		{Theme: "food", Terms: []string{"food delivery", "swiggy", "zomato", "uber eats", "dominos", "mcdonalds", "kfc"}},
		{Theme: "shopping", Terms: []string{"shopping", "shop", "buy", "amazon", "flipkart", "myntra", "ajio", "meesho"}},
		{Theme: "shopping", Terms: []string{"fashion", "clothes", "dress", "shoes", "jewelry", "makeup", "cosmetic"}},
		{Theme: "shopping", Terms: []string{"mobile phone", "smartphone", "iphone", "samsung", "laptop", "headphone", "gadget"}},
		{Theme: "travel", Terms: []string{"vacation", "holiday", "tour", "travel", "hotel", "resort", "flight", "ticket", "booking"}},
		{Theme: "travel", Terms: []string{"tourist", "destination", "beach", "mountain", "trip"}},
		{Theme: "technology", Terms: []string{"android app", "ios app", "download app", "mobile game", "whatsapp status"}},
		{Theme: "relationships", Terms: []string{"boyfriend", "girlfriend", "relationship", "dating", "love", "marriage proposal", "crush"}},
		{Theme: "astrology", Terms: []string{"horoscope", "astrology", "zodiac", "luck", "fortune", "kundli", "vastu"}},
	},
	DomainKeywords: []string{
		// health
		"health", "hospital", "doctor", "medical", "medicine", "disease", "illness", "treatment",
		"insurance", "ayushman", "clinic", "surgery", "patient", "healthcare", "covid",
		// agriculture
		"farm", "crop", "seed", "fertilizer", "agriculture", "kisan", "irrigation", "harvest",
		"soil", "pesticide", "tractor", "land", "cultivation", "organic", "farmer",
		// finance
		"bank", "loan", "money", "finance", "saving", "account", "credit", "debit",
		"payment", "insurance", "investment", "pension", "subsidy", "mudra", "financial",
		// government schemes
		"scheme", "yojana", "government", "welfare", "benefit", "eligibility",
		"registration", "certificate", "document", "aadhar", "ration", "pension",
		"subsidy", "pradhan mantri", "ayushman", "ujjwala", "awas",
		// education
		"education", "school", "college", "scholarship", "student", "study", "exam",
		"degree", "course", "training", "skill", "learning", "admission", "fees",
		// legal and documentation
		"legal", "law", "court", "certificate", "license", "permit",
		"passport", "voter", "pan", "rights", "complaint", "ration card",
		// climate
		"weather", "rain", "flood", "drought", "disaster", "climate", "cyclone",
		"emergency", "relief", "alert",
	},
	Stopwords: []string{
		"how", "what", "where", "when", "why", "help", "need", "want",
		"apply", "get", "find", "information", "about", "tell", "explain",
		"please", "can", "you", "me", "my", "i", "is", "are", "the",
	},
})
