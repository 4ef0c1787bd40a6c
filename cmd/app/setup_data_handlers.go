package main

import (
	"errors"

	"github.com/neha-maurya01/SahaayAI/config"
	"github.com/neha-maurya01/SahaayAI/storage"
)

func setupDataHandlers(instanceConfig *config.InstanceConfig) (storage.PersistentStorage, error) {
	dbConfig := &storage.PostgresStorageConfig{
		RWDatabase: &storage.PostgresStorageConnectionConfig{
			Uri:          instanceConfig.Database,
			MaxOpenConns: instanceConfig.DatabaseMaxOpenConns,
			MaxIdleConns: instanceConfig.DatabaseMaxIdleConns,
		},
		MigrationsPath: instanceConfig.DatabaseMigrationsDir,
	}
	if instanceConfig.DatabaseReadonlyUri != "" {
		dbConfig.RODatabase = &storage.PostgresStorageConnectionConfig{
			Uri:          instanceConfig.DatabaseReadonlyUri,
			MaxOpenConns: instanceConfig.DatabaseReadonlyMaxOpen,
			MaxIdleConns: instanceConfig.DatabaseReadonlyMaxIdle,
		}
	}
	psqlDb, err := storage.NewPostgresStorage(dbConfig)
	if err != nil {
		return nil, errors.Join(errors.New("NewPostgresStorage: failed create"), err)
	}
	return psqlDb, nil
}
