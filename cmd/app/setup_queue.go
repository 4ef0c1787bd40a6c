package main

import (
	"errors"
	"log"
	"time"

	"github.com/neha-maurya01/SahaayAI/backend"
	"github.com/neha-maurya01/SahaayAI/config"
	"github.com/neha-maurya01/SahaayAI/queue"
)

func setupQueue(instanceConfig *config.InstanceConfig) (*queue.Pool, error) {
	client, err := backend.NewClient(instanceConfig)
	if err != nil {
		return nil, errors.Join(errors.New("NewClient: failed create"), err)
	}
	log.Printf("Forwarding accepted messages to the %s backend", client.Name())

	poolConfig := &queue.PoolConfig{
		ConcurrentPools: instanceConfig.ConcurrentPools,
		SizePerPool:     instanceConfig.SizePerPool,
		ReplyCacheTtl:   time.Duration(instanceConfig.ReplyCacheTtlSeconds) * time.Second,
		RequestTimeout:  forwardTimeout(instanceConfig),
	}
	return queue.NewPool(poolConfig, client)
}

// forwardTimeout - How long a single forwarded message may take, covering every backend attempt.
func forwardTimeout(instanceConfig *config.InstanceConfig) time.Duration {
	attempts := time.Duration(instanceConfig.BackendMaxRetries + 1)
	return attempts * time.Duration(instanceConfig.BackendTimeoutSeconds) * time.Second
}
