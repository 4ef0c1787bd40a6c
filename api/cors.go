package api

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/ryanuber/go-glob"
)

func newCors(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return isAllowedOrigin(allowedOrigins, origin)
		},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         600,
	})
}

func isAllowedOrigin(patterns []string, origin string) bool {
	if origin == "" {
		return false
	}
	for _, pattern := range patterns {
		if glob.Glob(pattern, origin) {
			return true
		}
	}
	return false
}
