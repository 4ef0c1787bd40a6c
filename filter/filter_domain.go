package filter

import (
	"github.com/neha-maurya01/SahaayAI/filter/classification"
)

const DomainFilterName = "DomainFilter"

// GenericWordsDetail - Reported by Explain when a message was rejected for containing nothing but stopwords.
const GenericWordsDetail = "generic words only"

func init() {
	mustRegister(classification.NoDomainContent, &DomainFilter{})
}

// DomainFilter - Rejects messages that mention none of the domain keywords. Only domain keywords count:
// a message made of generic words ("please help me") never passes.
type DomainFilter struct {
}

func (d *DomainFilter) MakeFor(set *Set) (Instanced, error) {
	return &InstancedDomainFilter{
		set:      set,
		patterns: set.patterns,
	}, nil
}

type InstancedDomainFilter struct {
	set      *Set
	patterns *PatternSet
}

func (f *InstancedDomainFilter) Name() string {
	return DomainFilterName
}

func (f *InstancedDomainFilter) Classification() classification.Classification {
	return classification.NoDomainContent
}

func (f *InstancedDomainFilter) CheckText(input *Input) (bool, string) {
	keyword, ok := f.patterns.DomainKeyword(input.Lower)
	if !ok && f.patterns.OnlyStopwords(input.Lower) {
		return true, GenericWordsDetail
	}
	return !ok, keyword
}
