package dating

import (
	"context"
	"log"
	"time"
)

// Scheduler refreshes directory gauges in the background
type Scheduler struct {
	repo     Repository
	interval time.Duration
}

func NewScheduler(repo Repository, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{repo: repo, interval: interval}
}

// Start runs until ctx is cancelled
func (s *Scheduler) Start(ctx context.Context) {
	go s.runEvery(ctx, s.interval, s.refreshActiveProfiles)
}

// RefreshNow runs every task once
func (s *Scheduler) RefreshNow(ctx context.Context) error {
	return s.refreshActiveProfiles(ctx)
}

func (s *Scheduler) refreshActiveProfiles(ctx context.Context) error {
	n, err := s.repo.CountActiveProfiles(ctx)
	if err != nil {
		return err
	}
	SetActiveProfiles(n)
	return nil
}

func (s *Scheduler) runEvery(ctx context.Context, interval time.Duration, task func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := task(ctx); err != nil {
			log.Printf("Scheduled task failed: %v", err)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}
