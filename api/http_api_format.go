package api

import (
	"net/http"

	"github.com/neha-maurya01/SahaayAI/format"
	"github.com/neha-maurya01/SahaayAI/metrics"
)

type formatRequest struct {
	Text string `json:"text"`
}

type formatResponse struct {
	Style       format.Style   `json:"style"`
	IsGuardrail bool           `json:"is_guardrail"`
	Blocks      []format.Block `json:"blocks"`
}

func httpFormatApi(api *Api, w http.ResponseWriter, r *http.Request) {
	metrics.RecordHttpRequest(r.Method, "httpFormatApi")
	t := metrics.StartRequestTimer(r.Method, "httpFormatApi")
	defer t.ObserveDuration()

	errs := newErrorResponder("httpFormatApi", w, r)

	if r.Method != http.MethodPost {
		errs.text(http.StatusMethodNotAllowed, "SAHAAY_UNRECOGNIZED", "Method not allowed")
		return
	}

	req := &formatRequest{}
	if !parseRequestBody(errs, req) {
		return
	}

	err := respondJson("httpFormatApi", r, w, &formatResponse{
		Style:       format.DetectStyle(req.Text),
		IsGuardrail: format.LooksLikeGuardrail(req.Text),
		Blocks:      format.Format(req.Text),
	})
	if err != nil {
		errs.err(http.StatusInternalServerError, "SAHAAY_UNKNOWN", err)
		return
	}
}
