package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type outboxProcessor interface {
	ProcessDue(ctx context.Context) (int, error)
}

// Scheduler retries outbox messages whose inline delivery failed or was
// interrupted.
type Scheduler struct {
	outbox   outboxProcessor
	interval time.Duration
	logger   logger.Logger
}

func New(
	outbox outboxProcessor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		outbox:   outbox,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	delivered, err := s.outbox.ProcessDue(ctx)
	if err != nil {
		s.logger.Error("failed to process outbox",
			logger.String("error", err.Error()),
		)
		return
	}

	if delivered > 0 {
		s.logger.Info("outbox messages delivered",
			logger.Int("count", delivered),
		)
	}
}
