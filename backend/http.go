package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/neha-maurya01/SahaayAI/config"
	"github.com/neha-maurya01/SahaayAI/metrics"
	"github.com/sethvargo/go-retry"
)

const BackendNameHttp = "http"

// maxReplyBytes - Replies larger than this are treated as unusable.
const maxReplyBytes = 1024 * 1024

// HttpClient - Forwards messages as JSON to a chat backend over HTTP. Network errors and 5xx responses are retried
// with exponential backoff; 4xx responses are not.
type HttpClient struct {
	// Implements Client

	url        string
	httpClient *http.Client
	maxRetries uint64
	baseDelay  time.Duration
}

func NewHttpClient(cnf *config.InstanceConfig) (*HttpClient, error) {
	if cnf.BackendUrl == "" {
		return nil, errors.New("backend url is required")
	}
	return &HttpClient{
		url: cnf.BackendUrl,
		httpClient: &http.Client{
			Timeout: time.Duration(cnf.BackendTimeoutSeconds) * time.Second,
		},
		maxRetries: cnf.BackendMaxRetries,
		baseDelay:  250 * time.Millisecond,
	}, nil
}

func (c *HttpClient) Name() string {
	return BackendNameHttp
}

func (c *HttpClient) Send(ctx context.Context, req *Request) (*Response, error) {
	t := metrics.StartBackendTimer(c.Name())
	defer t.ObserveDuration()

	body, err := json.Marshal(&Request{
		Message:    SanitizeInput(req.Message),
		Identifier: req.Identifier,
		Language:   req.Language,
	})
	if err != nil {
		return nil, err // "should never happen"
	}

	var res *Response
	b := retry.NewExponential(c.baseDelay)
	err = retry.Do(ctx, retry.WithMaxRetries(c.maxRetries, b), func(ctx context.Context) error {
		res, err = c.sendOnce(ctx, body)
		var retryable *retryableStatusError
		if errors.As(err, &retryable) || (err != nil && !errors.Is(err, ErrUpstream)) {
			metrics.RecordBackendRequest(c.Name(), metrics.BackendStatusRetry)
			log.Printf("Retryable error from backend: %s", err)
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		metrics.RecordBackendRequest(c.Name(), metrics.BackendStatusError)
		return nil, err
	}
	if !res.Success {
		metrics.RecordBackendRequest(c.Name(), metrics.BackendStatusUnsuccessful)
	} else {
		metrics.RecordBackendRequest(c.Name(), metrics.BackendStatusOk)
	}
	return res, nil
}

type retryableStatusError struct {
	status int
}

func (e *retryableStatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.status)
}

func (e *retryableStatusError) Unwrap() error {
	return ErrUpstream
}

func (c *HttpClient) sendOnce(ctx context.Context, body []byte) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrUpstream, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxReplyBytes))
		return nil, &retryableStatusError{status: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	res := &Response{}
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxReplyBytes)).Decode(res); err != nil {
		return nil, errors.Join(ErrUpstream, fmt.Errorf("error decoding reply"), err)
	}
	return res, nil
}
