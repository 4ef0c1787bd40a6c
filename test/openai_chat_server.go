package test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

// OpenAIReply - The completion text the OpenAI chat server returns for an ordinary request.
func OpenAIReply(message string) string {
	return "Assistant reply to: " + message
}

// MakeOpenAIChatServer - Creates a mock OpenAI Chat Completions API server. Messages containing KeywordBackendFail
// get a 400 error; everything else is answered with OpenAIReply.
func MakeOpenAIChatServer(t *testing.T, apiKey string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))

		// Dev note: this handler is sensitive to changes in the OpenAI library, in the same way the library's
		// request body shape may change between versions.
		assert.Equal(t, "/chat/completions", r.URL.Path)

		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatal(err) // "should never happen"
		}
		body := string(b)
		assert.Equal(t, "system", gjson.Get(body, "messages.0.role").String())
		assert.NotEmpty(t, gjson.Get(body, "messages.0.content").String())
		assert.Equal(t, "user", gjson.Get(body, "messages.1.role").String())
		message := gjson.Get(body, "messages.1.content").String()

		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(message, KeywordBackendFail) {
			w.WriteHeader(http.StatusBadRequest) // 4xx so the library doesn't retry
			_, _ = w.Write([]byte(`{"error":{"code": "X-ERROR","message":"Intentional fail","param":"x","type":"x"}}`))
			return
		}

		res := map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 0,
			"model":   gjson.Get(body, "model").String(),
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": OpenAIReply(message),
				},
			}},
		}
		b, err = json.Marshal(res)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}))
}
