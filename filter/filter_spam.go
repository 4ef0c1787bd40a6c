package filter

import (
	"unicode"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
)

const SpamFilterName = "SpamFilter"

func init() {
	mustRegister(classification.Spam, &SpamFilter{})
}

// SpamFilter - Rejects long runs of one character ("aaaaaaaaaaa", "!!!!!!!!!!!") and messages written
// entirely outside the permitted scripts ("🙂🙂🙂", "???").
type SpamFilter struct {
}

func (s *SpamFilter) MakeFor(set *Set) (Instanced, error) {
	return &InstancedSpamFilter{
		set:     set,
		maxRun:  MaxCharacterRun,
		scripts: set.patterns,
	}, nil
}

type InstancedSpamFilter struct {
	set     *Set
	maxRun  int
	scripts *PatternSet
}

func (f *InstancedSpamFilter) Name() string {
	return SpamFilterName
}

func (f *InstancedSpamFilter) Classification() classification.Classification {
	return classification.Spam
}

func (f *InstancedSpamFilter) CheckText(input *Input) (bool, string) {
	if hasCharacterRun(input.Text, f.maxRun) {
		return true, "repeated character"
	}
	if !f.scripts.HasPermittedRune(input.Text) {
		return true, "no supported script"
	}
	return false, ""
}

// hasCharacterRun - True if some character appears at least n times consecutively. Characters are compared
// case-insensitively and line terminators never form part of a run.
func hasCharacterRun(text string, n int) bool {
	var runeOfRun rune
	run := 0
	for _, r := range text {
		if isLineTerminator(r) {
			run = 0
			continue
		}
		if run > 0 && equalFold(runeOfRun, r) {
			run++
		} else {
			runeOfRun = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func equalFold(a rune, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
