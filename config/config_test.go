package config

import (
	"strings"
	"testing"

	"github.com/openai/openai-go/v3/shared"
	"github.com/stretchr/testify/assert"
)

func TestNewInstanceConfigDefaults(t *testing.T) {
	cnf, err := NewInstanceConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cnf)

	assert.Equal(t, "0.0.0.0:8080", cnf.HttpBind)
	assert.Equal(t, BackendKindHttp, cnf.BackendKind)
	assert.Equal(t, "en", cnf.DefaultLanguage)
	assert.Equal(t, []string{"en", "hi", "bn", "ta", "te", "mr", "gu", "kn", "ml", "pa", "or", "as"}, cnf.SupportedLanguages)
	assert.Equal(t, 90, cnf.DataRetentionDays)
	assert.Equal(t, uint64(2), cnf.BackendMaxRetries)
	assert.Equal(t, OpenAIReasoningEffort(""), cnf.OpenAIReasoningEffort)
}

func TestNewInstanceConfigFromEnv(t *testing.T) {
	t.Setenv("SAHAAY_BACKEND_KIND", "openai")
	t.Setenv("SAHAAY_OPENAI_REASONING_EFFORT", "high")
	t.Setenv("SAHAAY_SUPPORTED_LANGUAGES", "hi,en")
	t.Setenv("SAHAAY_DEFAULT_LANGUAGE", "hi")
	t.Setenv("SAHAAY_CORS_ALLOWED_ORIGINS", "https://*.example.org")

	cnf, err := NewInstanceConfig()
	assert.NoError(t, err)
	assert.Equal(t, BackendKindOpenAI, cnf.BackendKind)
	assert.Equal(t, OpenAIReasoningEffort(shared.ReasoningEffortHigh), cnf.OpenAIReasoningEffort)
	assert.Equal(t, []string{"hi", "en"}, cnf.SupportedLanguages)
	assert.Equal(t, "hi", cnf.DefaultLanguage)
	assert.Equal(t, []string{"https://*.example.org"}, cnf.CorsAllowedOrigins)
}

func TestNewInstanceConfigInvalid(t *testing.T) {
	t.Setenv("SAHAAY_BACKEND_KIND", "carrier-pigeon")
	_, err := NewInstanceConfig()
	assert.ErrorContains(t, err, "unsupported backend kind")

	t.Setenv("SAHAAY_BACKEND_KIND", "")
	t.Setenv("SAHAAY_DEFAULT_LANGUAGE", "fr")
	_, err = NewInstanceConfig()
	assert.ErrorContains(t, err, "not a supported language")

	t.Setenv("SAHAAY_DEFAULT_LANGUAGE", "en")
	t.Setenv("SAHAAY_IDENTIFIER_HASH_KEY", strings.Repeat("k", 65))
	_, err = NewInstanceConfig()
	assert.ErrorContains(t, err, "at most 64 bytes")
}

func TestLanguagesResolve(t *testing.T) {
	cnf := &InstanceConfig{SupportedLanguages: []string{"en", "hi"}, DefaultLanguage: "en"}
	languages := cnf.Languages()
	assert.Equal(t, "hi", languages.Resolve("hi"))
	assert.Equal(t, "en", languages.Resolve("fr"))
	assert.Equal(t, "en", languages.Resolve(""))
	assert.Equal(t, "en", languages.Resolve("HI"))
}
