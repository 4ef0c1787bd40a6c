package filter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
)

// priority - The order filters run in. The first filter to reject a message decides its classification, so
// e.g. a two character message containing a blocked term is TooShort, and an off-topic message that also
// mentions a domain keyword is OffTopic.
var priority = []classification.Classification{
	classification.TooShort,
	classification.TooLong,
	classification.Spam,
	classification.Inappropriate,
	classification.OffTopic,
	classification.NoDomainContent,
}

// Priority - A copy of the default filter order.
func Priority() []classification.Classification {
	return append([]classification.Classification(nil), priority...)
}

type SetConfig struct {
	// The filters to run, by the classification they report, in evaluation order.
	Order []classification.Classification

	// The patterns filters match against. If nil, DefaultPatterns() is used.
	Patterns *PatternSet
}

type Set struct {
	patterns *PatternSet
	filters  []Instanced
}

func NewSet(config *SetConfig) (*Set, error) {
	patterns := config.Patterns
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	set := &Set{
		patterns: patterns,
		filters:  make([]Instanced, 0, len(config.Order)),
	}
	seen := make(map[classification.Classification]bool)
	for _, cls := range config.Order {
		if seen[cls] {
			return nil, fmt.Errorf("filter for %s listed more than once", cls)
		}
		seen[cls] = true

		f, err := findByClassification(cls)
		if err != nil {
			return nil, err
		}
		instanced, err := f.MakeFor(set)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("error making filter for: %s", cls), err)
		}
		set.filters = append(set.filters, instanced)
	}
	return set, nil
}

var defaultSet = sync.OnceValue(func() *Set {
	set, err := NewSet(&SetConfig{Order: priority})
	if err != nil {
		panic(err) // "should never happen"
	}
	return set
})

// Default - The process-wide Set built from Priority() and DefaultPatterns().
func Default() *Set {
	return defaultSet()
}

// Validate - Runs the message through the default Set.
func Validate(message string) ValidationResult {
	return Default().Validate(message)
}

// Validate - Runs the message through the filters in order, stopping at the first rejection. The message is
// not trimmed: callers are expected to have done that already.
func (s *Set) Validate(message string) ValidationResult {
	input := newInput(message)
	for _, f := range s.filters {
		if rejected, _ := f.CheckText(input); rejected {
			return rejectionFor(f.Classification())
		}
	}
	return ValidationResult{
		IsValid:  true,
		Message:  "",
		Category: classification.Accepted,
	}
}

// Explain - Like Validate, but also returns the verdict of every filter that ran.
func (s *Set) Explain(message string) (ValidationResult, []StageResult) {
	input := newInput(message)
	stages := make([]StageResult, 0, len(s.filters))
	for _, f := range s.filters {
		rejected, detail := f.CheckText(input)
		stages = append(stages, StageResult{
			Filter:         f.Name(),
			Classification: f.Classification(),
			Rejected:       rejected,
			Detail:         detail,
		})
		if rejected {
			return rejectionFor(f.Classification()), stages
		}
	}
	return ValidationResult{IsValid: true, Category: classification.Accepted}, stages
}

func rejectionFor(cls classification.Classification) ValidationResult {
	return ValidationResult{
		IsValid:  false,
		Message:  cls.Message(),
		Category: cls,
	}
}
