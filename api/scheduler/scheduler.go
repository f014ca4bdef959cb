package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pruner drops state for clients that went quiet
type Pruner interface {
	Prune(idle time.Duration) int
}

// Scheduler handles periodic background jobs
type Scheduler struct {
	cron    *cron.Cron
	Limiter Pruner
	Idle    time.Duration
	Spec    string
}

// NewScheduler creates a scheduler that prunes limiter entries idle for
// longer than idle every ten minutes
func NewScheduler(limiter Pruner, idle time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		Limiter: limiter,
		Idle:    idle,
		Spec:    "@every 10m",
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.Spec, s.pruneLimiters); err != nil {
		zap.S().Errorw("failed to register limiter prune job", "error", err)
		return err
	}

	s.cron.Start()
	zap.S().Info("Scheduler started")
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Scheduler stopped")
}

func (s *Scheduler) pruneLimiters() {
	n := s.Limiter.Prune(s.Idle)
	if n > 0 {
		zap.S().Debugw("pruned idle rate limiters", "count", n)
	}
}
