// Package jobs provides scheduled background tasks for the warehouse service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second and publishes pending outbox messages to RabbitMQ
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayOutboxHandler, cfg.OutboxBatchSize, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *" (every second). Overlapping
// runs are skipped, so a slow broker delays the outbox instead of piling up
// relays that compete for the same rows.
//
// # Error Handling
//
// A failed publish is recorded on the message and retried on a later tick.
// A failed run (database unavailable) is logged and the batch stays pending.
package jobs
