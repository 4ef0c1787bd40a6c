package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/neha-maurya01/SahaayAI/metrics"
)

// maxBodyBytes - Comfortably above the longest accepted message once JSON escaping is accounted for.
const maxBodyBytes = 256 * 1024

func parseJsonBody(val any, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	err = json.Unmarshal(b, &val)
	if err != nil {
		return err
	}
	return nil
}

// parseRequestBody - Parses the JSON request body into val, responding with an error (and returning false) if
// the body is too large or isn't JSON.
func parseRequestBody(errs *errorResponder, val any) bool {
	err := parseJsonBody(val, http.MaxBytesReader(errs.w, errs.r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errs.text(http.StatusRequestEntityTooLarge, "SAHAAY_TOO_LARGE", "Request body too large")
		} else {
			errs.text(http.StatusBadRequest, "SAHAAY_BAD_JSON", "Invalid JSON")
		}
		return false
	}
	return true
}

func respondJson(action string, r *http.Request, w http.ResponseWriter, val any) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}

	defer metrics.RecordHttpResponse(r.Method, action, http.StatusOK)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
	return nil
}
