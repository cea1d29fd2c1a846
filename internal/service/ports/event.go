package ports

import (
	"context"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
)

type EventRepo interface {
	CreateWithPayment(ctx context.Context, e *domain.Event, p *domain.Payment, audit *domain.AdminAction, outbox []domain.OutboxMessage) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Mutate(ctx context.Context, id string, fn func(current *domain.Event) (*domain.Mutation, error)) (*domain.Event, error)
	ListPublic(ctx context.Context, now time.Time) ([]*domain.Event, error)
	ListPublicByKeywords(ctx context.Context, now time.Time, keywords []string) ([]*domain.Event, error)
	ListAll(ctx context.Context) ([]*domain.Event, error)
}
