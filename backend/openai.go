package backend

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/neha-maurya01/SahaayAI/config"
	"github.com/neha-maurya01/SahaayAI/internal"
	"github.com/neha-maurya01/SahaayAI/metrics"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const BackendNameOpenAI = "openai"

// OpenAIClient - Answers messages directly with an OpenAI-compatible chat completions API instead of a dedicated
// backend. Replies never carry an action plan or audio.
type OpenAIClient struct {
	// Implements Client

	client          openai.Client
	modelName       string
	reasoningEffort shared.ReasoningEffort
	systemPrompt    string
}

func NewOpenAIClient(cnf *config.InstanceConfig, additionalClientOptions ...option.RequestOption) (*OpenAIClient, error) {
	if cnf.OpenAIModelName == "" {
		return nil, errors.New("openai model name is required")
	}
	options := []option.RequestOption{
		option.WithBaseURL(cnf.OpenAIApiUrl),
		option.WithRequestTimeout(time.Duration(cnf.BackendTimeoutSeconds) * time.Second),
		option.WithMaxRetries(int(cnf.BackendMaxRetries)),
	}
	if cnf.OpenAIApiKey != "" {
		options = append(options, option.WithAPIKey(cnf.OpenAIApiKey))
	}
	options = append(options, additionalClientOptions...)

	prompt := cnf.OpenAISystemPrompt
	if prompt == "" {
		prompt = defaultSystemPrompt
	}
	return &OpenAIClient{
		client:          openai.NewClient(options...),
		modelName:       cnf.OpenAIModelName,
		reasoningEffort: shared.ReasoningEffort(cnf.OpenAIReasoningEffort),
		systemPrompt:    strings.TrimSpace(prompt),
	}, nil
}

func (c *OpenAIClient) Name() string {
	return BackendNameOpenAI
}

func (c *OpenAIClient) Send(ctx context.Context, req *Request) (*Response, error) {
	t := metrics.StartBackendTimer(c.Name())
	defer t.ObserveDuration()

	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:           c.modelName,
		ReasoningEffort: c.reasoningEffort,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Role: "system",
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(c.promptFor(req.Language)),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Role: "user",
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(SanitizeInput(req.Message)),
					},
				},
			},
		},
	})
	if err != nil {
		metrics.RecordBackendRequest(c.Name(), metrics.BackendStatusError)
		return nil, errors.Join(ErrUpstream, err)
	}

	for _, choice := range res.Choices {
		text := strings.TrimSpace(choice.Message.Content)
		if text == "" {
			continue
		}
		metrics.RecordBackendRequest(c.Name(), metrics.BackendStatusOk)
		return &Response{
			Success:  true,
			Response: Reply{Text: internal.Pointer(text)},
		}, nil
	}

	// Note: we don't log message contents
	log.Printf("Completion %s had no usable choices", res.ID)
	metrics.RecordBackendRequest(c.Name(), metrics.BackendStatusUnsuccessful)
	return &Response{Success: false}, nil
}

func (c *OpenAIClient) promptFor(language string) string {
	if language == "" {
		return c.systemPrompt
	}
	return c.systemPrompt + "\n\nReply in the language with ISO 639-1 code: " + language
}

const defaultSystemPrompt = `
You are SahaayAI, a friendly assistant helping people in India access essential services: healthcare,
agriculture, banking and finance, government schemes, education, legal documentation, and climate or disaster
support. Give short, practical answers in simple language. When a process has steps, list them with the "•"
bullet. Never ask for passwords, OTPs, or full Aadhaar numbers.
`
