package api

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/neha-maurya01/SahaayAI/config"
	"github.com/neha-maurya01/SahaayAI/filter"
	"github.com/neha-maurya01/SahaayAI/metrics"
	"github.com/neha-maurya01/SahaayAI/queue"
	"github.com/neha-maurya01/SahaayAI/storage"
	"github.com/rs/cors"
)

type Config struct {
	// Optional. If empty, the check and stats endpoints will be disabled.
	ApiKey string

	// Glob patterns matched against the Origin header of browser requests.
	CorsAllowedOrigins []string

	// Keys the identifier hashes stored alongside checks. May be empty.
	IdentifierHashKey string

	Languages *config.Languages

	// How long a web message may wait for the backend, including time spent queued.
	ForwardTimeout time.Duration
}

type Api struct {
	storage        storage.PersistentStorage
	pool           *queue.Pool
	validator      *filter.Set
	languages      *config.Languages
	hashKey        []byte
	apiKey         string
	forwardTimeout time.Duration
	cors           *cors.Cors
}

// NewApi - Creates a new Api. If validator is nil, filter.Default() is used.
func NewApi(config *Config, storage storage.PersistentStorage, pool *queue.Pool, validator *filter.Set) (*Api, error) {
	if config.Languages == nil || config.Languages.Default == "" {
		return nil, errors.New("a default language is required")
	}
	if len(config.IdentifierHashKey) > 64 {
		return nil, errors.New("identifier hash key must be at most 64 bytes")
	}
	if validator == nil {
		validator = filter.Default()
	}
	forwardTimeout := config.ForwardTimeout
	if forwardTimeout <= 0 {
		forwardTimeout = 30 * time.Second
	}
	a := &Api{
		storage:        storage,
		pool:           pool,
		validator:      validator,
		languages:      config.Languages,
		hashKey:        []byte(config.IdentifierHashKey),
		apiKey:         config.ApiKey,
		forwardTimeout: forwardTimeout,
	}
	a.cors = newCors(config.CorsAllowedOrigins)
	return a, nil
}

func (a *Api) httpRequestHandler(upstream func(api *Api, w http.ResponseWriter, r *http.Request)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstream(a, w, r)
	})
}

func (a *Api) httpBrowserRequestHandler(upstream func(api *Api, w http.ResponseWriter, r *http.Request)) http.Handler {
	return a.cors.Handler(a.httpRequestHandler(upstream))
}

func (a *Api) httpAuthenticatedRequestHandler(upstream func(api *Api, w http.ResponseWriter, r *http.Request)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := []byte("Bearer " + a.apiKey)
		if a.apiKey == "" || subtle.ConstantTimeCompare([]byte(r.Header.Get("Authorization")), expected) != 1 {
			defer metrics.RecordHttpResponse(r.Method, "httpAuthenticatedRequestHandler", http.StatusUnauthorized)
			writeJsonError(w, http.StatusUnauthorized, "SAHAAY_UNAUTHORIZED", "Not allowed")
			return
		}

		upstream(a, w, r)
	})
}

func (a *Api) BindTo(mux *http.ServeMux) error {
	mux.Handle("/", a.httpRequestHandler(httpCatchAll))
	mux.Handle("/health", a.httpRequestHandler(httpHealth))
	mux.Handle("/ready", a.httpRequestHandler(httpReady))

	mux.Handle("/api/v1/validate", a.httpBrowserRequestHandler(httpValidateApi))
	mux.Handle("/api/v1/format", a.httpBrowserRequestHandler(httpFormatApi))
	mux.Handle("/api/v1/message/web", a.httpBrowserRequestHandler(httpWebMessageApi))

	if a.apiKey != "" {
		log.Println("Enabling check and stats API")
		mux.Handle("/api/v1/checks/{id}", a.httpAuthenticatedRequestHandler(httpGetCheckApi))
		mux.Handle("/api/v1/stats", a.httpAuthenticatedRequestHandler(httpGetStatsApi))
	}

	return nil
}
