package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/metrics"
	"github.com/Onahi7/portfolio-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type OutboxOptions struct {
	BatchSize   int
	Lease       time.Duration
	MaxAttempts int
	Backoff     time.Duration
	SendTimeout time.Duration
}

// OutboxService delivers side effects recorded by committed transactions.
// Callers deliver their own messages right after commit; the scheduler
// picks up whatever is still pending once the lease runs out.
type OutboxService struct {
	repo   ports.OutboxRepo
	mailer ports.Mailer
	social ports.SocialSharer
	opts   OutboxOptions
	logger logger.Logger
	now    func() time.Time
}

func NewOutboxService(
	repo ports.OutboxRepo,
	mailer ports.Mailer,
	social ports.SocialSharer,
	opts OutboxOptions,
	logger logger.Logger,
) *OutboxService {
	return &OutboxService{
		repo:   repo,
		mailer: mailer,
		social: social,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

func (s *OutboxService) Deliver(ctx context.Context, msgs []domain.OutboxMessage) domain.DeliveryReport {
	var report domain.DeliveryReport
	if len(msgs) == 0 {
		return report
	}

	ctx = context.WithoutCancel(ctx)
	for _, m := range msgs {
		platforms, err := s.send(ctx, m)
		if err != nil {
			report.Failed++
			metrics.OutboxDeliveries.WithLabelValues(string(m.Kind), metrics.OutcomeError).Inc()
			s.markFailed(ctx, m, err)
			continue
		}

		switch m.Kind {
		case domain.OutboxEmail:
			report.Emailed = true
		case domain.OutboxSocial:
			report.Platforms = append(report.Platforms, platforms...)
		}
		metrics.OutboxDeliveries.WithLabelValues(string(m.Kind), metrics.OutcomeOK).Inc()

		if err = s.repo.MarkSent(ctx, m.ID); err != nil {
			s.logger.Error("failed to mark outbox message sent",
				logger.String("message_id", m.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return report
}

// ProcessDue claims due messages and delivers them. It returns the number
// of messages delivered successfully.
func (s *OutboxService) ProcessDue(ctx context.Context) (int, error) {
	msgs, err := s.repo.Claim(ctx, s.opts.BatchSize, s.opts.Lease)
	if err != nil {
		return 0, fmt.Errorf("claim outbox: %w", err)
	}
	if len(msgs) == 0 {
		return 0, nil
	}

	report := s.Deliver(ctx, msgs)
	return len(msgs) - report.Failed, nil
}

func (s *OutboxService) send(ctx context.Context, m domain.OutboxMessage) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.SendTimeout)
	defer cancel()

	switch m.Kind {
	case domain.OutboxEmail:
		var p domain.EmailPayload
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode email payload: %w", err)
		}
		if err := s.mailer.Send(ctx, p); err != nil {
			return nil, fmt.Errorf("%w: send email: %v", domain.ErrUpstream, err)
		}
		return nil, nil

	case domain.OutboxSocial:
		var p domain.SocialPayload
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode social payload: %w", err)
		}
		platforms, err := s.social.Share(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("%w: share: %v", domain.ErrUpstream, err)
		}
		return platforms, nil
	}

	return nil, fmt.Errorf("unknown outbox kind %q", m.Kind)
}

func (s *OutboxService) markFailed(ctx context.Context, m domain.OutboxMessage, cause error) {
	attempts := m.Attempts + 1
	status := domain.OutboxPending
	if attempts >= s.opts.MaxAttempts {
		status = domain.OutboxFailed
	}
	next := s.now().Add(s.backoff(attempts))

	s.logger.Warn("outbox delivery failed",
		logger.String("message_id", m.ID),
		logger.String("kind", string(m.Kind)),
		logger.String("topic", m.Topic),
		logger.Int("attempts", attempts),
		logger.String("status", string(status)),
		logger.String("error", cause.Error()),
	)

	if err := s.repo.MarkFailed(ctx, m.ID, status, cause.Error(), next); err != nil {
		s.logger.Error("failed to record outbox failure",
			logger.String("message_id", m.ID),
			logger.String("error", err.Error()),
		)
	}
}

// backoff doubles the base delay per attempt, capped at one hour.
func (s *OutboxService) backoff(attempts int) time.Duration {
	d := s.opts.Backoff
	for i := 1; i < attempts && d < time.Hour; i++ {
		d *= 2
	}
	return min(d, time.Hour)
}
