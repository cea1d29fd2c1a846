package ports

import (
	"context"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
)

type AnalyticsRepo interface {
	InsertView(ctx context.Context, v *domain.EventView) error
	InsertClick(ctx context.Context, c *domain.EventClick) error
	InsertAdminAction(ctx context.Context, a *domain.AdminAction) error
	Summary(ctx context.Context, eventID string) (*domain.EventSummary, error)
	TopByViews(ctx context.Context, limit int) ([]*domain.EventRank, error)
	RecentActions(ctx context.Context, limit int) ([]*domain.AdminAction, error)
}
