package ports

import (
	"context"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
)

type PaymentRepo interface {
	GetByReference(ctx context.Context, reference string) (*domain.Payment, error)
	Settle(ctx context.Context, reference string, fn func(p *domain.Payment) (*domain.Settlement, error)) (*domain.Payment, bool, error)
}
