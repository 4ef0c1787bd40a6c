package filter

import (
	"strconv"
	"unicode/utf8"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
)

const MinLengthFilterName = "MinLengthFilter"
const MaxLengthFilterName = "MaxLengthFilter"

func init() {
	mustRegister(classification.TooShort, &LengthFilter{min: true})
	mustRegister(classification.TooLong, &LengthFilter{min: false})
}

// LengthFilter - Rejects messages outside [MinLength, MaxLength] characters. Length is counted in runes.
type LengthFilter struct {
	min bool
}

func (l *LengthFilter) MakeFor(set *Set) (Instanced, error) {
	return &InstancedLengthFilter{
		set: set,
		min: l.min,
	}, nil
}

type InstancedLengthFilter struct {
	set *Set
	min bool
}

func (f *InstancedLengthFilter) Name() string {
	if f.min {
		return MinLengthFilterName
	}
	return MaxLengthFilterName
}

func (f *InstancedLengthFilter) Classification() classification.Classification {
	if f.min {
		return classification.TooShort
	}
	return classification.TooLong
}

func (f *InstancedLengthFilter) CheckText(input *Input) (bool, string) {
	length := utf8.RuneCountInString(input.Text)
	if f.min {
		return length < MinLength, strconv.Itoa(length)
	}
	return length > MaxLength, strconv.Itoa(length)
}
