package tasks

import (
	"context"
	"log"
	"time"

	"github.com/neha-maurya01/SahaayAI/config"
	"github.com/neha-maurya01/SahaayAI/storage"
)

// PruneChecks - Deletes stored checks older than the configured retention window.
func PruneChecks(db storage.PersistentStorage, cnf *config.InstanceConfig) {
	if cnf.DataRetentionDays <= 0 {
		log.Println("Skipping check pruning: no retention window configured")
		return // nothing to do
	}

	before := time.Now().Add(-1 * time.Duration(cnf.DataRetentionDays) * 24 * time.Hour)
	log.Printf("Pruning checks created before %s...", before.Format(time.RFC3339))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	deleted, err := db.DeleteChecksBefore(ctx, before)
	if err != nil {
		log.Printf("Non-fatal error pruning checks: %v", err)
		return
	}

	log.Printf("Finished pruning checks: %d deleted", deleted)
}
