package api

import (
	"net/http"

	"github.com/neha-maurya01/SahaayAI/filter"
	"github.com/neha-maurya01/SahaayAI/filter/classification"
	"github.com/neha-maurya01/SahaayAI/format"
	"github.com/neha-maurya01/SahaayAI/metrics"
)

type validateRequest struct {
	Message string `json:"message"`
	Explain bool   `json:"explain"`
}

type validateResponse struct {
	IsValid  bool                          `json:"is_valid"`
	Category classification.Classification `json:"category"`
	Message  string                        `json:"message"`
	Blocks   []format.Block                `json:"blocks,omitempty"`
	Stages   []filter.StageResult          `json:"stages,omitempty"`
}

func httpValidateApi(api *Api, w http.ResponseWriter, r *http.Request) {
	metrics.RecordHttpRequest(r.Method, "httpValidateApi")
	t := metrics.StartRequestTimer(r.Method, "httpValidateApi")
	defer t.ObserveDuration()

	errs := newErrorResponder("httpValidateApi", w, r)

	if r.Method != http.MethodPost {
		errs.text(http.StatusMethodNotAllowed, "SAHAAY_UNRECOGNIZED", "Method not allowed")
		return
	}

	req := &validateRequest{}
	if !parseRequestBody(errs, req) {
		return
	}

	var result filter.ValidationResult
	var stages []filter.StageResult
	if req.Explain {
		result, stages = api.validator.Explain(req.Message)
	} else {
		result = api.validator.Validate(req.Message)
	}
	metrics.RecordGuardrailCheck(result.Category, "validate")

	res := &validateResponse{
		IsValid:  result.IsValid,
		Category: result.Category,
		Message:  result.Message,
		Stages:   stages,
	}
	if !result.IsValid {
		res.Blocks = format.Format(result.Message)
	}

	err := respondJson("httpValidateApi", r, w, res)
	if err != nil {
		errs.err(http.StatusInternalServerError, "SAHAAY_UNKNOWN", err)
		return
	}
}
