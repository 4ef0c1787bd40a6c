package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/neha-maurya01/SahaayAI/backend"
	"github.com/neha-maurya01/SahaayAI/filter"
	"github.com/neha-maurya01/SahaayAI/format"
	"github.com/neha-maurya01/SahaayAI/internal"
	"github.com/neha-maurya01/SahaayAI/metrics"
	"github.com/neha-maurya01/SahaayAI/queue"
	"github.com/neha-maurya01/SahaayAI/storage"
)

type webMessageRequest struct {
	Message    string `json:"message"`
	Identifier string `json:"identifier"`
	Language   string `json:"language"`
}

type webReply struct {
	Text       *string         `json:"text,omitempty"`
	Language   string          `json:"language"`
	ActionPlan json.RawMessage `json:"action_plan,omitempty"`
	AudioUrl   *string         `json:"audio_url,omitempty"`
	Style      format.Style    `json:"style,omitempty"`
	Blocks     []format.Block  `json:"blocks,omitempty"`
}

type webMessageResponse struct {
	Success   bool     `json:"success"`
	Guardrail bool     `json:"guardrail"`
	CheckId   string   `json:"check_id"`
	Cached    bool     `json:"cached"`
	Response  webReply `json:"response"`
}

func httpWebMessageApi(api *Api, w http.ResponseWriter, r *http.Request) {
	metrics.RecordHttpRequest(r.Method, "httpWebMessageApi")
	t := metrics.StartRequestTimer(r.Method, "httpWebMessageApi")
	defer t.ObserveDuration()

	errs := newErrorResponder("httpWebMessageApi", w, r)

	if r.Method != http.MethodPost {
		errs.text(http.StatusMethodNotAllowed, "SAHAAY_UNRECOGNIZED", "Method not allowed")
		return
	}

	req := &webMessageRequest{}
	if !parseRequestBody(errs, req) {
		return
	}

	message := strings.TrimSpace(req.Message)
	language := api.languages.Resolve(req.Language)
	identifierHash, err := storage.HashIdentifier(api.hashKey, req.Identifier)
	if err != nil {
		errs.err(http.StatusInternalServerError, "SAHAAY_UNKNOWN", err)
		return
	}

	result := api.validator.Validate(message)
	metrics.RecordGuardrailCheck(result.Category, "web")

	check := &storage.StoredCheck{
		CheckId:        storage.NextId(),
		IdentifierHash: identifierHash,
		Language:       language,
		Category:       result.Category,
		Forwarded:      result.IsValid,
		CreatedAt:      time.Now().UTC(),
	}
	api.recordCheck(r.Context(), check)

	if !result.IsValid {
		respondGuardrail(w, r, errs, check, result)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), api.forwardTimeout)
	defer cancel()
	ch := make(chan *queue.PoolResult, 1)
	err = api.pool.Submit(ctx, &backend.Request{
		Message:    message,
		Identifier: req.Identifier,
		Language:   language,
	}, ch)
	if err != nil {
		errs.err(http.StatusServiceUnavailable, "SAHAAY_UNAVAILABLE", err)
		return
	}

	var res *queue.PoolResult
	select {
	case res = <-ch:
	case <-ctx.Done():
		errs.err(http.StatusGatewayTimeout, "SAHAAY_BACKEND_TIMEOUT", ctx.Err())
		return
	}
	if res.Err != nil {
		if errors.Is(res.Err, context.DeadlineExceeded) {
			errs.err(http.StatusGatewayTimeout, "SAHAAY_BACKEND_TIMEOUT", res.Err)
		} else {
			errs.err(http.StatusBadGateway, "SAHAAY_BACKEND_UNAVAILABLE", res.Err)
		}
		return
	}

	reply := webReply{
		Text:       res.Response.Response.Text,
		Language:   language,
		ActionPlan: res.Response.Response.ActionPlan,
		AudioUrl:   res.Response.Response.AudioUrl,
	}
	if text := internal.Dereference(reply.Text); format.LooksLikeGuardrail(text) {
		reply.Style = format.DetectStyle(text)
		reply.Blocks = format.Format(text)
	}

	err = respondJson("httpWebMessageApi", r, w, &webMessageResponse{
		Success:   res.Response.Success,
		Guardrail: false,
		CheckId:   check.CheckId,
		Cached:    res.Cached,
		Response:  reply,
	})
	if err != nil {
		errs.err(http.StatusInternalServerError, "SAHAAY_UNKNOWN", err)
		return
	}
}

func respondGuardrail(w http.ResponseWriter, r *http.Request, errs *errorResponder, check *storage.StoredCheck, result filter.ValidationResult) {
	err := respondJson("httpWebMessageApi", r, w, &webMessageResponse{
		Success:   true,
		Guardrail: true,
		CheckId:   check.CheckId,
		Cached:    false,
		Response: webReply{
			Text:     internal.Pointer(result.Message),
			Language: check.Language,
			Style:    format.DetectStyle(result.Message),
			Blocks:   format.Format(result.Message),
		},
	})
	if err != nil {
		errs.err(http.StatusInternalServerError, "SAHAAY_UNKNOWN", err)
		return
	}
}

// recordCheck - Failing to record a check doesn't fail the request: the user still gets their answer.
func (a *Api) recordCheck(ctx context.Context, check *storage.StoredCheck) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := a.storage.InsertCheck(ctx, check); err != nil {
		log.Printf("Error recording check %s (%s): %s", check.CheckId, check.Category, err)
	}
}
