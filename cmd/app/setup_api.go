package main

import (
	"time"

	"github.com/neha-maurya01/SahaayAI/api"
	"github.com/neha-maurya01/SahaayAI/config"
	"github.com/neha-maurya01/SahaayAI/filter"
	"github.com/neha-maurya01/SahaayAI/queue"
	"github.com/neha-maurya01/SahaayAI/storage"
)

func setupApi(instanceConfig *config.InstanceConfig, storage storage.PersistentStorage, pool *queue.Pool) (*api.Api, error) {
	apiConfig := &api.Config{
		ApiKey:             instanceConfig.ApiKey,
		CorsAllowedOrigins: instanceConfig.CorsAllowedOrigins,
		IdentifierHashKey:  instanceConfig.IdentifierHashKey,
		Languages:          instanceConfig.Languages(),
		// Leave room for the message to wait in the queue before the backend sees it
		ForwardTimeout: forwardTimeout(instanceConfig) + 5*time.Second,
	}
	return api.NewApi(apiConfig, storage, pool, filter.Default())
}
