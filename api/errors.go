package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/neha-maurya01/SahaayAI/metrics"
)

type jsonError struct {
	Errcode string `json:"errcode"`
	Error   string `json:"error"`
}

func writeJsonError(w http.ResponseWriter, httpCode int, errcode string, error string) {
	b, err := json.Marshal(jsonError{Errcode: errcode, Error: error})
	if err != nil {
		// "should never happen"
		log.Printf("Error encoding error response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_, _ = w.Write(b)
}

type errorResponder struct {
	action string
	w      http.ResponseWriter
	r      *http.Request
}

func (e *errorResponder) text(httpCode int, errcode string, error string) {
	defer metrics.RecordHttpResponse(e.r.Method, e.action, httpCode)
	writeJsonError(e.w, httpCode, errcode, error)
}

func (e *errorResponder) err(httpCode int, errcode string, err error) {
	log.Printf("%s error (%d/%s): %v", e.action, httpCode, errcode, err)
	e.text(httpCode, errcode, "Error")
}

func newErrorResponder(action string, w http.ResponseWriter, r *http.Request) *errorResponder {
	return &errorResponder{
		action: action,
		w:      w,
		r:      r,
	}
}
