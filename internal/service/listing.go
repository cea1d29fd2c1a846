package service

import (
	"context"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/metrics"
	"github.com/Onahi7/portfolio-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	cacheKeyPublic   = "public"
	cacheKeyFrontend = "frontend"
)

var DefaultFrontendKeywords = []string{
	"frontend", "react", "javascript", "typescript", "vue", "angular", "next.js", "css", "html",
}

type ListingService struct {
	repo     ports.EventRepo
	cache    ports.ListingCache
	keywords []string
	logger   logger.Logger
	now      func() time.Time
}

// NewListingService builds the listing queries. cache may be nil, in which
// case every query goes to the database.
func NewListingService(repo ports.EventRepo, cache ports.ListingCache, keywords []string, logger logger.Logger) *ListingService {
	if len(keywords) == 0 {
		keywords = DefaultFrontendKeywords
	}
	return &ListingService{
		repo:     repo,
		cache:    cache,
		keywords: keywords,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns public events, or every event when showAll is set.
func (s *ListingService) List(ctx context.Context, showAll bool) ([]*domain.Event, error) {
	if showAll {
		return s.repo.ListAll(ctx)
	}
	return s.cached(ctx, cacheKeyPublic, func(now time.Time) ([]*domain.Event, error) {
		return s.repo.ListPublic(ctx, now)
	})
}

func (s *ListingService) ListFrontend(ctx context.Context) ([]*domain.Event, error) {
	return s.cached(ctx, cacheKeyFrontend, func(now time.Time) ([]*domain.Event, error) {
		return s.repo.ListPublicByKeywords(ctx, now, s.keywords)
	})
}

// GetPublic hides events that are not approved or have already ended.
func (s *ListingService) GetPublic(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !e.IsPublic(s.now()) {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

func (s *ListingService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ListingService) cached(ctx context.Context, key string, load func(now time.Time) ([]*domain.Event, error)) ([]*domain.Event, error) {
	now := s.now()

	var (
		gen   int64
		store bool
	)
	if s.cache != nil {
		events, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			metrics.ListingCache.WithLabelValues("error").Inc()
			s.logger.Warn("listing cache read failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		case ok:
			metrics.ListingCache.WithLabelValues("hit").Inc()
			return stillPublic(events, now), nil
		default:
			metrics.ListingCache.WithLabelValues("miss").Inc()
			// The generation is read before loading so a moderation commit
			// landing in between makes the write below a no-op.
			if gen, err = s.cache.Generation(ctx); err != nil {
				s.logger.Warn("listing cache generation read failed",
					logger.String("key", key),
					logger.String("error", err.Error()),
				)
			} else {
				store = true
			}
		}
	}

	events, err := load(now)
	if err != nil {
		return nil, err
	}

	if store {
		if err = s.cache.Set(ctx, key, events, gen); err != nil {
			s.logger.Warn("listing cache write failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}

	return events, nil
}

// stillPublic drops cached events that expired after they were cached.
func stillPublic(events []*domain.Event, now time.Time) []*domain.Event {
	out := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if e.IsPublic(now) {
			out = append(out, e)
		}
	}
	return out
}
