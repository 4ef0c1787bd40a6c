package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/neha-maurya01/SahaayAI/filter/classification"
	"github.com/neha-maurya01/SahaayAI/metrics"
)

const defaultStatsHours = 24
const maxStatsHours = 24 * 365

type statsResponse struct {
	Since      time.Time                               `json:"since"`
	Hours      int                                     `json:"hours"`
	Total      int64                                   `json:"total"`
	Categories map[classification.Classification]int64 `json:"categories"`
}

func httpGetCheckApi(api *Api, w http.ResponseWriter, r *http.Request) {
	metrics.RecordHttpRequest(r.Method, "httpGetCheckApi")
	t := metrics.StartRequestTimer(r.Method, "httpGetCheckApi")
	defer t.ObserveDuration()

	errs := newErrorResponder("httpGetCheckApi", w, r)

	if r.Method != http.MethodGet {
		errs.text(http.StatusMethodNotAllowed, "SAHAAY_UNRECOGNIZED", "Method not allowed")
		return
	}

	check, err := api.storage.GetCheck(r.Context(), r.PathValue("id"))
	if err != nil {
		errs.err(http.StatusInternalServerError, "SAHAAY_UNKNOWN", err)
		return
	}
	if check == nil {
		errs.text(http.StatusNotFound, "SAHAAY_NOT_FOUND", "Check not found")
		return
	}

	err = respondJson("httpGetCheckApi", r, w, check)
	if err != nil {
		errs.err(http.StatusInternalServerError, "SAHAAY_UNKNOWN", err)
		return
	}
}

func httpGetStatsApi(api *Api, w http.ResponseWriter, r *http.Request) {
	metrics.RecordHttpRequest(r.Method, "httpGetStatsApi")
	t := metrics.StartRequestTimer(r.Method, "httpGetStatsApi")
	defer t.ObserveDuration()

	errs := newErrorResponder("httpGetStatsApi", w, r)

	if r.Method != http.MethodGet {
		errs.text(http.StatusMethodNotAllowed, "SAHAAY_UNRECOGNIZED", "Method not allowed")
		return
	}

	hours := defaultStatsHours
	if val := r.URL.Query().Get("hours"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed <= 0 || parsed > maxStatsHours {
			errs.text(http.StatusBadRequest, "SAHAAY_INVALID_PARAM", "hours must be between 1 and 8760")
			return
		}
		hours = parsed
	}

	since := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	counts, err := api.storage.CountChecksByCategory(r.Context(), since)
	if err != nil {
		errs.err(http.StatusInternalServerError, "SAHAAY_UNKNOWN", err)
		return
	}

	res := &statsResponse{
		Since:      since,
		Hours:      hours,
		Categories: make(map[classification.Classification]int64),
	}
	for _, cls := range classification.All() {
		res.Categories[cls] = counts[cls]
		res.Total += counts[cls]
	}

	err = respondJson("httpGetStatsApi", r, w, res)
	if err != nil {
		errs.err(http.StatusInternalServerError, "SAHAAY_UNKNOWN", err)
		return
	}
}
