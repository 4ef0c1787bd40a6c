package filter

import (
	"github.com/neha-maurya01/SahaayAI/filter/classification"
)

const KeywordFilterName = "KeywordFilter"

func init() {
	mustRegister(classification.Inappropriate, &KeywordFilter{})
}

// KeywordFilter - Rejects messages containing any blocklist term. This is a plain substring match, so "gun"
// also catches "guns" and "shotgun".
type KeywordFilter struct {
}

func (k *KeywordFilter) MakeFor(set *Set) (Instanced, error) {
	return &InstancedKeywordFilter{
		set:      set,
		patterns: set.patterns,
	}, nil
}

type InstancedKeywordFilter struct {
	set      *Set
	patterns *PatternSet
}

func (f *InstancedKeywordFilter) Name() string {
	return KeywordFilterName
}

func (f *InstancedKeywordFilter) Classification() classification.Classification {
	return classification.Inappropriate
}

func (f *InstancedKeywordFilter) CheckText(input *Input) (bool, string) {
	term, ok := f.patterns.BlockedTerm(input.Lower)
	return ok, term
}
