package filter

import (
	"strings"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
)

// ValidationResult - The outcome of running a message through a Set. Message is empty when IsValid is true,
// otherwise it is the template for Category.
type ValidationResult struct {
	IsValid  bool                          `json:"is_valid"`
	Message  string                        `json:"message"`
	Category classification.Classification `json:"category"`
}

// StageResult - One filter's verdict, as reported by Set.Explain.
type StageResult struct {
	Filter         string                        `json:"filter"`
	Classification classification.Classification `json:"classification"`
	Rejected       bool                          `json:"rejected"`

	// What the filter matched on, if anything (a blocked term, an off-topic theme, a domain keyword).
	Detail string `json:"detail,omitempty"`
}

// Input - A filter input. Built once per message so filters share the lower-cased form.
type Input struct {
	// The message exactly as the caller supplied it.
	Text string

	// strings.ToLower(Text)
	Lower string
}

func newInput(text string) *Input {
	return &Input{
		Text:  text,
		Lower: strings.ToLower(text),
	}
}

// Instanced - A Set-specific filter.
type Instanced interface {
	// Name - The name of the filter for logging and diagnostics.
	Name() string

	// Classification - The rejection category this filter reports.
	Classification() classification.Classification

	// CheckText - Returns true if the input should be rejected, along with what the filter matched on (may be
	// empty). Must not panic for any input.
	CheckText(input *Input) (bool, string)
}

// CanBeInstanced - The base filter type, registered at init time and used by Sets to create a long-lived
// Instanced instance.
type CanBeInstanced interface {
	// MakeFor - Creates a long-lived Instanced for the provided Set. If an error occurred, the Instanced will
	// be nil.
	MakeFor(set *Set) (Instanced, error)
}
