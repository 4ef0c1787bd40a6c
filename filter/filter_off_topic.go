package filter

import (
	"github.com/neha-maurya01/SahaayAI/filter/classification"
)

const OffTopicFilterName = "OffTopicFilter"

func init() {
	mustRegister(classification.OffTopic, &OffTopicFilter{})
}

// OffTopicFilter - Rejects messages matching any themed word list on word boundaries, so "score" matches
// but "scorecard" does not.
type OffTopicFilter struct {
}

func (o *OffTopicFilter) MakeFor(set *Set) (Instanced, error) {
	return &InstancedOffTopicFilter{
		set:      set,
		patterns: set.patterns,
	}, nil
}

type InstancedOffTopicFilter struct {
	set      *Set
	patterns *PatternSet
}

func (f *InstancedOffTopicFilter) Name() string {
	return OffTopicFilterName
}

func (f *InstancedOffTopicFilter) Classification() classification.Classification {
	return classification.OffTopic
}

func (f *InstancedOffTopicFilter) CheckText(input *Input) (bool, string) {
	theme, ok := f.patterns.OffTopicTheme(input.Lower)
	return ok, theme
}
