package backend

import (
	"context"
	"testing"

	"github.com/neha-maurya01/SahaayAI/config"
	"github.com/neha-maurya01/SahaayAI/internal"
	"github.com/neha-maurya01/SahaayAI/test"
	"github.com/stretchr/testify/assert"
)

func TestOpenAIClient(t *testing.T) {
	t.Parallel()

	apiKey := "test_key"
	server := test.MakeOpenAIChatServer(t, apiKey)
	defer server.Close()

	c, err := NewOpenAIClient(&config.InstanceConfig{
		OpenAIApiUrl:          server.URL,
		OpenAIApiKey:          apiKey,
		OpenAIModelName:       "test-model",
		BackendTimeoutSeconds: 5,
	})
	assert.NoError(t, err)
	assert.NotNil(t, c)

	res, err := c.Send(context.Background(), &Request{Message: "What is [PM-KISAN]?", Language: "hi"})
	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, test.OpenAIReply("What is PM-KISAN?"), internal.Dereference(res.Response.Text))
	assert.Nil(t, res.Response.ActionPlan)
	assert.Nil(t, res.Response.AudioUrl)

	res, err = c.Send(context.Background(), &Request{Message: "loan " + test.KeywordBackendFail})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestOpenAIClientPrompt(t *testing.T) {
	t.Parallel()

	c, err := NewOpenAIClient(&config.InstanceConfig{
		OpenAIModelName:    "test-model",
		OpenAIApiKey:       "key",
		OpenAISystemPrompt: "  Be helpful.  ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Be helpful.", c.promptFor(""))
	assert.Equal(t, "Be helpful.\n\nReply in the language with ISO 639-1 code: ta", c.promptFor("ta"))

	c, err = NewOpenAIClient(&config.InstanceConfig{OpenAIModelName: "test-model", OpenAIApiKey: "key"})
	assert.NoError(t, err)
	assert.Contains(t, c.promptFor(""), "SahaayAI")
}

func TestNewOpenAIClientRequiresModel(t *testing.T) {
	t.Parallel()

	c, err := NewOpenAIClient(&config.InstanceConfig{})
	assert.Nil(t, c)
	assert.ErrorContains(t, err, "model name is required")
}
