// Package scheduler wires up the cron job that prunes old verification
// submissions so the table doesn't grow without bound.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"jobshield/verify-service/internal/store"
)

// Scheduler wraps robfig/cron and manages the retention loop.
type Scheduler struct {
	cron      *cron.Cron
	subs      *store.Submissions
	retention time.Duration
}

// New creates a Scheduler that deletes submissions older than
// retentionDays, once a day.
func New(subs *store.Submissions, retentionDays int) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLogger(cron.DefaultLogger)),
		subs:      subs,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Start registers the job and starts the scheduler. Also runs one prune
// immediately so a long-stopped service catches up without waiting for
// the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc("@every 24h", func() {
		s.runPrune(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — retention: %s", s.retention)

	// Run immediately on startup (non-blocking)
	go s.runPrune(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) runPrune(ctx context.Context) {
	deleted, err := s.subs.PruneOlderThan(ctx, s.retention)
	if err != nil {
		log.Printf("[scheduler] prune error: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("[scheduler] pruned %d old submission(s)", deleted)
	}
}
