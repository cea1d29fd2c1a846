package ports

import (
	"context"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
)

type OutboxRepo interface {
	Claim(ctx context.Context, limit int, lease time.Duration) ([]domain.OutboxMessage, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, status domain.OutboxStatus, lastErr string, nextAttempt time.Time) error
}

// Deliverer sends committed outbox messages and records their outcome.
type Deliverer interface {
	Deliver(ctx context.Context, msgs []domain.OutboxMessage) domain.DeliveryReport
}
