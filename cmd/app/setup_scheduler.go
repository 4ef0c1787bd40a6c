package main

import (
	"crypto/rand"
	"log"
	"math/big"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/neha-maurya01/SahaayAI/config"
	"github.com/neha-maurya01/SahaayAI/storage"
	"github.com/neha-maurya01/SahaayAI/tasks"
)

func setupScheduler(scheduler gocron.Scheduler, db storage.PersistentStorage, instanceConfig *config.InstanceConfig) error {
	return schedulePruneTask(scheduler, db, instanceConfig)
}

func schedulePruneTask(scheduler gocron.Scheduler, db storage.PersistentStorage, instanceConfig *config.InstanceConfig) error {
	// We do the math in seconds to get a slightly more accurate number (10% of 1 minute is 6 seconds, but if we did our
	// math in minutes then we'd end up with a range of 1 minute).
	variance := time.Duration(float64(instanceConfig.PruneIntervalMinutes*60)*0.1) * time.Second
	minInterval := (time.Duration(instanceConfig.PruneIntervalMinutes) * time.Minute) - variance
	maxInterval := (time.Duration(instanceConfig.PruneIntervalMinutes) * time.Minute) + variance

	// "should never happen" clauses
	if minInterval <= 0 {
		minInterval = 1 * time.Minute
	}
	if maxInterval < minInterval {
		maxInterval = minInterval + time.Minute
	}

	pruneTask, err := scheduler.NewJob(gocron.DurationRandomJob(minInterval, maxInterval), gocron.NewTask(tasks.PruneChecks, db, instanceConfig), gocron.WithName("PruneChecks"))
	if err != nil {
		return err
	}

	log.Printf("Scheduled check pruning task every ~%d minutes: %s", instanceConfig.PruneIntervalMinutes, pruneTask.ID())
	runTaskNowish(pruneTask)

	return nil
}

// runTaskNowish - Runs a gocron task as quickly as possible, with a small delay to avoid overlapping calls. The task will
// wait asynchronously to run, so this will return immediately regardless of whether the task is running.
func runTaskNowish(task gocron.Job) {
	go func() {
		// we don't *need* a cryptographic random number here, but security audits might complain if we don't
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			log.Printf("Non-fatal error generating jitter for task %s: %v", task.ID(), err)
			n = big.NewInt(4)
		}
		<-time.After(time.Duration(n.Int64()) * time.Second)
		if err = task.RunNow(); err != nil {
			log.Printf("Non-fatal error trying to run task %s immediately: %v", task.ID(), err)
		}
	}()
}
