package config

import (
	"fmt"

	"github.com/openai/openai-go/v3/shared"
)

type BackendKind string // Implements envconfig.Decoder

const (
	BackendKindHttp   BackendKind = "http"
	BackendKindOpenAI BackendKind = "openai"
)

func (k *BackendKind) Decode(value string) error {
	switch value {
	case "":
		fallthrough
	case "http":
		*k = BackendKindHttp
		return nil
	case "openai":
		*k = BackendKindOpenAI
		return nil
	}

	return fmt.Errorf("unsupported backend kind '%s'", value)
}

type OpenAIReasoningEffort shared.ReasoningEffort // Implements envconfig.Decoder

func (e *OpenAIReasoningEffort) Decode(value string) error {
	switch value {
	case "":
		*e = ""
		return nil
	case "low":
		*e = OpenAIReasoningEffort(shared.ReasoningEffortLow)
		return nil
	case "medium":
		*e = OpenAIReasoningEffort(shared.ReasoningEffortMedium)
		return nil
	case "high":
		*e = OpenAIReasoningEffort(shared.ReasoningEffortHigh)
		return nil
	}

	return fmt.Errorf("unsupported reasoning effort '%s'", value)
}
