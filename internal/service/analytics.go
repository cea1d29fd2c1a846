package service

import (
	"context"
	"fmt"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type AnalyticsService struct {
	repo   ports.AnalyticsRepo
	events ports.EventRepo
	logger logger.Logger
}

func NewAnalyticsService(repo ports.AnalyticsRepo, events ports.EventRepo, logger logger.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, events: events, logger: logger}
}

func (s *AnalyticsService) RecordView(ctx context.Context, eventID string, meta domain.VisitMeta) error {
	err := s.repo.InsertView(ctx, &domain.EventView{
		EventID:   eventID,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		Referer:   meta.Referer,
	})
	if err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

func (s *AnalyticsService) RecordClick(ctx context.Context, eventID string, target domain.ClickTarget, meta domain.VisitMeta) error {
	if !target.Valid() {
		return fmt.Errorf("%w: unknown click target %q", domain.ErrValidation, target)
	}

	err := s.repo.InsertClick(ctx, &domain.EventClick{
		EventID:   eventID,
		Target:    target,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		Referer:   meta.Referer,
	})
	if err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	return nil
}

// Summary aggregates counters for an existing event.
func (s *AnalyticsService) Summary(ctx context.Context, eventID string) (*domain.EventSummary, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repo.Summary(ctx, eventID)
}

func (s *AnalyticsService) TopByViews(ctx context.Context, limit int) ([]*domain.EventRank, error) {
	return s.repo.TopByViews(ctx, clampLimit(limit))
}

func (s *AnalyticsService) RecentActions(ctx context.Context, limit int) ([]*domain.AdminAction, error) {
	return s.repo.RecentActions(ctx, clampLimit(limit))
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	}
	return limit
}
