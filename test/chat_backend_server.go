package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Dev note: the servers in this file are covered by the backend and api tests which use them.

// KeywordBackendFail - Messages containing this always get a 500 Internal Server Error.
const KeywordBackendFail = "SAHAAY_FAIL"

// KeywordBackendFlaky - Messages containing this get a 503 Service Unavailable on the first request to the server,
// then succeed.
const KeywordBackendFlaky = "SAHAAY_FLAKY"

// KeywordBackendReject - Messages containing this get a 400 Bad Request.
const KeywordBackendReject = "SAHAAY_REJECT"

// KeywordBackendGuardrail - Messages containing this get a guardrail-style warning reply.
const KeywordBackendGuardrail = "SAHAAY_GUARDRAIL"

// KeywordBackendActionPlan - Messages containing this get a reply with an action plan and audio URL.
const KeywordBackendActionPlan = "SAHAAY_PLAN"

// KeywordBackendUnsuccessful - Messages containing this get a 200 OK with success=false.
const KeywordBackendUnsuccessful = "SAHAAY_UNSUCCESSFUL"

// GuardrailReply - The reply text used for KeywordBackendGuardrail.
const GuardrailReply = "⚠️ **Important**:\nPlease visit your nearest Common Service Centre.\n\n• Carry your Aadhaar\n• Carry your bank passbook\n• Carry a photo"

// ActionPlanJson - The action plan used for KeywordBackendActionPlan.
const ActionPlanJson = `{"steps":[{"step":1,"title":"Visit the CSC"}]}`

const ActionPlanAudioUrl = "https://cdn.example.org/audio/1.mp3"

// BackendRequest - A request as seen by the ChatBackendServer.
type BackendRequest struct {
	Message    string `json:"message"`
	Identifier string `json:"identifier"`
	Language   string `json:"language"`
}

type ChatBackendServer struct {
	*httptest.Server

	requests atomic.Int64
	lock     sync.Mutex
	received []BackendRequest
}

// EchoReply - The reply text the ChatBackendServer sends for an ordinary request.
func EchoReply(language string, message string) string {
	return "[" + language + "] You asked: " + message
}

// MakeChatBackendServer - Creates a mock messaging backend. Ordinary requests are answered with EchoReply.
func MakeChatBackendServer(t *testing.T) *ChatBackendServer {
	s := &ChatBackendServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := s.requests.Add(1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		req := BackendRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			t.Fatal(err) // "should never happen"
		}
		s.lock.Lock()
		s.received = append(s.received, req)
		s.lock.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(req.Message, KeywordBackendFail):
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"Intentional fail"}`))
		case strings.Contains(req.Message, KeywordBackendFlaky) && n == 1:
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"detail":"Try again"}`))
		case strings.Contains(req.Message, KeywordBackendReject):
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail":"Invalid message"}`))
		case strings.Contains(req.Message, KeywordBackendUnsuccessful):
			writeJson(t, w, map[string]any{"success": false, "response": map[string]any{}})
		case strings.Contains(req.Message, KeywordBackendGuardrail):
			writeJson(t, w, map[string]any{"success": true, "response": map[string]any{"text": GuardrailReply}})
		case strings.Contains(req.Message, KeywordBackendActionPlan):
			writeJson(t, w, map[string]any{"success": true, "response": map[string]any{
				"text":        EchoReply(req.Language, req.Message),
				"action_plan": json.RawMessage(ActionPlanJson),
				"audio_url":   ActionPlanAudioUrl,
			}})
		default:
			writeJson(t, w, map[string]any{"success": true, "response": map[string]any{"text": EchoReply(req.Language, req.Message)}})
		}
	}))
	return s
}

func writeJson(t *testing.T, w http.ResponseWriter, val any) {
	b, err := json.Marshal(val)
	assert.NoError(t, err)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// RequestCount - The number of requests the server has received, including failed ones.
func (s *ChatBackendServer) RequestCount() int {
	return int(s.requests.Load())
}

// Received - Every decoded request body, in arrival order.
func (s *ChatBackendServer) Received() []BackendRequest {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]BackendRequest(nil), s.received...)
}
