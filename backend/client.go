package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/neha-maurya01/SahaayAI/config"
)

// ErrUpstream - Wrapped by errors caused by the backend itself (bad status codes, unusable replies) rather than by
// the network or the caller.
var ErrUpstream = errors.New("backend returned an error")

// Request - A validated message being forwarded to the backend.
type Request struct {
	Message    string `json:"message"`
	Identifier string `json:"identifier"`
	Language   string `json:"language"`
}

type Reply struct {
	Text       *string         `json:"text,omitempty"`
	ActionPlan json.RawMessage `json:"action_plan,omitempty"`
	AudioUrl   *string         `json:"audio_url,omitempty"`
}

type Response struct {
	Success  bool  `json:"success"`
	Response Reply `json:"response"`
}

type Client interface {
	// Name - A short name for metrics and logs.
	Name() string

	// Send - Forwards the request, returning the backend's reply. The message is sanitized before it leaves the
	// process.
	Send(ctx context.Context, req *Request) (*Response, error)
}

// NewClient - Creates the Client selected by cnf.BackendKind.
func NewClient(cnf *config.InstanceConfig) (Client, error) {
	switch cnf.BackendKind {
	case config.BackendKindHttp:
		return NewHttpClient(cnf)
	case config.BackendKindOpenAI:
		return NewOpenAIClient(cnf)
	}
	return nil, fmt.Errorf("unsupported backend kind: %s", cnf.BackendKind)
}
