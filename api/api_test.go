package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/neha-maurya01/SahaayAI/backend"
	"github.com/neha-maurya01/SahaayAI/config"
	"github.com/neha-maurya01/SahaayAI/queue"
	"github.com/neha-maurya01/SahaayAI/test"
	"github.com/stretchr/testify/assert"
)

const testApiKey = "do_not_use_in_production_otherwise_sadness_will_be_created"

func makeApi(t *testing.T) *Api {
	api, _ := makeApiWithBackend(t)
	return api
}

func makeApiWithBackend(t *testing.T) (*Api, *test.ChatBackendServer) {
	server := test.MakeChatBackendServer(t)
	t.Cleanup(server.Close)

	cnf, err := config.NewInstanceConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cnf)
	cnf.BackendUrl = server.URL
	cnf.BackendTimeoutSeconds = 5
	cnf.BackendMaxRetries = 1

	client, err := backend.NewHttpClient(cnf)
	assert.NoError(t, err)

	return makeApiWithClient(t, client, &Config{ApiKey: testApiKey}), server
}

func makeApiWithClient(t *testing.T, client backend.Client, apiConfig *Config) *Api {
	db := test.NewMemoryStorage(t)
	assert.NotNil(t, db)

	pool, err := queue.NewPool(&queue.PoolConfig{
		ConcurrentPools: 2,
		SizePerPool:     5,
		ReplyCacheTtl:   time.Minute,
		RequestTimeout:  5 * time.Second,
	}, client)
	assert.NoError(t, err)
	assert.NotNil(t, pool)
	t.Cleanup(func() {
		_ = pool.Close()
	})

	if apiConfig.Languages == nil {
		apiConfig.Languages = &config.Languages{
			Supported: []string{"en", "hi", test.ErrorLanguage},
			Default:   "en",
		}
	}
	if apiConfig.CorsAllowedOrigins == nil {
		apiConfig.CorsAllowedOrigins = []string{"http://localhost:*", "https://*.sahaay.example"}
	}
	if apiConfig.ForwardTimeout == 0 {
		apiConfig.ForwardTimeout = 5 * time.Second
	}

	api, err := NewApi(apiConfig, db, pool, nil)
	assert.NoError(t, err)
	assert.NotNil(t, api)

	return api
}

func memoryStorage(t *testing.T, api *Api) *test.MemoryStorage {
	db, ok := api.storage.(*test.MemoryStorage)
	assert.True(t, ok)
	return db
}

func makeMux(t *testing.T, api *Api) *http.ServeMux {
	mux := http.NewServeMux()
	err := api.BindTo(mux)
	assert.NoError(t, err)
	return mux
}

func TestNewApiRequiresLanguages(t *testing.T) {
	t.Parallel()

	api, err := NewApi(&Config{}, test.NewMemoryStorage(t), nil, nil)
	assert.Nil(t, api)
	assert.ErrorContains(t, err, "default language")
}

func TestNewApiHashKeyTooLong(t *testing.T) {
	t.Parallel()

	api, err := NewApi(&Config{
		Languages:         &config.Languages{Supported: []string{"en"}, Default: "en"},
		IdentifierHashKey: string(make([]byte, 65)),
	}, test.NewMemoryStorage(t), nil, nil)
	assert.Nil(t, api)
	assert.ErrorContains(t, err, "at most 64 bytes")
}

func TestAuthenticatedApiNoAuth(t *testing.T) {
	t.Parallel()

	api := makeApi(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/example", nil)
	//r.Header.Set("Authorization", "Bearer WRONG_TOKEN") // we don't want auth on this test, so don't set it
	upstream := func(a *Api, w http.ResponseWriter, r *http.Request) {
		assert.Fail(t, "should not be called")
	}
	handler := api.httpAuthenticatedRequestHandler(upstream)
	handler.ServeHTTP(w, r)
	assert.Equal(t, w.Code, http.StatusUnauthorized)
	test.AssertApiError(t, w, "SAHAAY_UNAUTHORIZED", "Not allowed")
}

func TestAuthenticatedApiWrongAuth(t *testing.T) {
	t.Parallel()

	api := makeApi(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/example", nil)
	r.Header.Set("Authorization", "Bearer WRONG_TOKEN")
	upstream := func(a *Api, w http.ResponseWriter, r *http.Request) {
		assert.Fail(t, "should not be called")
	}
	handler := api.httpAuthenticatedRequestHandler(upstream)
	handler.ServeHTTP(w, r)
	assert.Equal(t, w.Code, http.StatusUnauthorized)
	test.AssertApiError(t, w, "SAHAAY_UNAUTHORIZED", "Not allowed")
}

func TestAuthenticatedApi(t *testing.T) {
	t.Parallel()

	api := makeApi(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/example", nil)
	r.Header.Set("Authorization", "Bearer "+api.apiKey)
	called := false
	upstream := func(a *Api, w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}
	handler := api.httpAuthenticatedRequestHandler(upstream)
	handler.ServeHTTP(w, r)
	assert.Equal(t, w.Code, http.StatusOK)
	assert.True(t, called)
}

func TestAuthenticatedApiDisabledWithoutKey(t *testing.T) {
	t.Parallel()

	api := makeApiWithClient(t, &blockingClient{}, &Config{ApiKey: ""})
	mux := makeMux(t, api)

	for _, path := range []string{"/api/v1/stats", "/api/v1/checks/abc"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, path, nil)
		r.Header.Set("Authorization", "Bearer ")
		mux.ServeHTTP(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
		test.AssertApiError(t, w, "SAHAAY_UNRECOGNIZED", "not implemented")
	}
}

func TestCors(t *testing.T) {
	t.Parallel()

	api := makeApi(t)
	mux := makeMux(t, api)

	preflight := func(origin string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodOptions, "/api/v1/message/web", nil)
		r.Header.Set("Origin", origin)
		r.Header.Set("Access-Control-Request-Method", http.MethodPost)
		r.Header.Set("Access-Control-Request-Headers", "content-type") // browsers send these lower-cased
		mux.ServeHTTP(w, r)
		return w
	}

	w := preflight("http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	w = preflight("https://app.sahaay.example")
	assert.Equal(t, "https://app.sahaay.example", w.Header().Get("Access-Control-Allow-Origin"))
	w = preflight("https://evil.example.org")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestIsAllowedOrigin(t *testing.T) {
	t.Parallel()

	patterns := []string{"http://localhost:*", "https://sahaay.example"}
	assert.True(t, isAllowedOrigin(patterns, "http://localhost:8080"))
	assert.True(t, isAllowedOrigin(patterns, "https://sahaay.example"))
	assert.False(t, isAllowedOrigin(patterns, "https://sahaay.example.evil.org"))
	assert.False(t, isAllowedOrigin(patterns, ""))
	assert.False(t, isAllowedOrigin(nil, "http://localhost:8080"))
}
