package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/metrics"
	"github.com/Onahi7/portfolio-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ModerationConfig struct {
	PublicBaseURL string
	Lease         time.Duration
	ShareTimeout  time.Duration
}

// ModerationService implements the admin transitions. State changes and
// their audit entries commit together under the event row lock; emails and
// social posts are delivered afterwards and reported separately.
type ModerationService struct {
	events    ports.EventRepo
	analytics ports.AnalyticsRepo
	deliverer ports.Deliverer
	social    ports.SocialSharer
	cache     ports.ListingCache
	cfg       ModerationConfig
	logger    logger.Logger
	now       func() time.Time
}

func NewModerationService(
	events ports.EventRepo,
	analytics ports.AnalyticsRepo,
	deliverer ports.Deliverer,
	social ports.SocialSharer,
	cache ports.ListingCache,
	cfg ModerationConfig,
	logger logger.Logger,
) *ModerationService {
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	return &ModerationService{
		events:    events,
		analytics: analytics,
		deliverer: deliverer,
		social:    social,
		cache:     cache,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Approve publishes a paid event. Approving an approved event is a no-op
// and does not resend the email or repost.
func (s *ModerationService) Approve(ctx context.Context, id string) (*domain.ModerationResult, error) {
	var (
		outbox  []domain.OutboxMessage
		already bool
	)

	_, err := s.events.Mutate(ctx, id, func(cur *domain.Event) (*domain.Mutation, error) {
		if cur.Approved {
			already = true
			return nil, nil
		}
		if cur.PaymentStatus != domain.PaymentPaid {
			return nil, domain.ErrNotPaid
		}

		now := s.now().UTC()
		next := *cur
		next.Approved = true
		next.ApprovedAt = &now
		next.RejectedAt = nil
		next.RejectionReason = nil

		audit, err := domain.NewAdminAction(domain.ActionEventApproved, cur.ID, map[string]any{
			"eventId":        cur.ID,
			"title":          cur.Title,
			"organizerEmail": cur.OrganizerEmail,
			"featured":       cur.Featured,
		})
		if err != nil {
			return nil, fmt.Errorf("build audit entry: %w", err)
		}

		outbox, err = s.approvalEffects(&next)
		if err != nil {
			return nil, err
		}

		return &domain.Mutation{Event: &next, Audit: audit, Outbox: outbox}, nil
	})
	if err != nil {
		s.observe("approve", err)
		return nil, err
	}

	res := &domain.ModerationResult{EventID: id, Approved: true, AlreadyApplied: already}
	if already {
		metrics.ModerationActions.WithLabelValues("approve", metrics.OutcomeNoop).Inc()
		return res, nil
	}

	s.revalidate(ctx)
	report := s.deliverer.Deliver(ctx, outbox)
	res.Notified = report.Emailed
	res.Platforms = report.Platforms
	res.PendingEffects = report.Failed

	metrics.ModerationActions.WithLabelValues("approve", metrics.OutcomeOK).Inc()
	s.logger.Info("event approved",
		logger.String("event_id", id),
		logger.Any("notified", report.Emailed),
		logger.Any("platforms", report.Platforms),
	)

	return res, nil
}

// Reject unpublishes an event and tells the organizer why. Repeating a
// rejection with the same reason changes nothing.
func (s *ModerationService) Reject(ctx context.Context, id, reason string) (*domain.ModerationResult, error) {
	reason = strings.TrimSpace(reason)

	var (
		outbox  []domain.OutboxMessage
		already bool
	)

	_, err := s.events.Mutate(ctx, id, func(cur *domain.Event) (*domain.Mutation, error) {
		if !cur.Approved && cur.RejectedAt != nil && deref(cur.RejectionReason) == reason {
			already = true
			return nil, nil
		}

		now := s.now().UTC()
		next := *cur
		next.Approved = false
		next.ApprovedAt = nil
		next.RejectedAt = &now
		next.RejectionReason = nil
		if reason != "" {
			next.RejectionReason = &reason
		}

		audit, err := domain.NewAdminAction(domain.ActionEventRejected, cur.ID, map[string]any{
			"eventId":        cur.ID,
			"title":          cur.Title,
			"organizerEmail": cur.OrganizerEmail,
			"reason":         reason,
		})
		if err != nil {
			return nil, fmt.Errorf("build audit entry: %w", err)
		}

		msg, err := domain.NewEmailMessage(domain.EmailPayload{
			Template: domain.EmailRejection,
			To:       cur.OrganizerEmail,
			Data: map[string]string{
				"event_id":       cur.ID,
				"title":          cur.Title,
				"organizer_name": cur.OrganizerName,
				"reason":         reason,
			},
		}, s.cfg.Lease)
		if err != nil {
			return nil, fmt.Errorf("build rejection email: %w", err)
		}
		outbox = []domain.OutboxMessage{msg}

		return &domain.Mutation{Event: &next, Audit: audit, Outbox: outbox}, nil
	})
	if err != nil {
		s.observe("reject", err)
		return nil, err
	}

	res := &domain.ModerationResult{EventID: id, Approved: false, AlreadyApplied: already}
	if already {
		metrics.ModerationActions.WithLabelValues("reject", metrics.OutcomeNoop).Inc()
		return res, nil
	}

	s.revalidate(ctx)
	report := s.deliverer.Deliver(ctx, outbox)
	res.Notified = report.Emailed
	res.PendingEffects = report.Failed

	metrics.ModerationActions.WithLabelValues("reject", metrics.OutcomeOK).Inc()
	s.logger.Info("event rejected",
		logger.String("event_id", id),
		logger.String("reason", reason),
		logger.Any("notified", report.Emailed),
	)

	return res, nil
}

// Delete removes the event. Its views and clicks go with it; the admin
// action log and payment rows are kept.
func (s *ModerationService) Delete(ctx context.Context, id string) (*domain.ModerationResult, error) {
	_, err := s.events.Mutate(ctx, id, func(cur *domain.Event) (*domain.Mutation, error) {
		audit, err := domain.NewAdminAction(domain.ActionEventDeleted, cur.ID, map[string]any{
			"eventId":        cur.ID,
			"title":          cur.Title,
			"organizerEmail": cur.OrganizerEmail,
			"paymentStatus":  cur.PaymentStatus,
		})
		if err != nil {
			return nil, fmt.Errorf("build audit entry: %w", err)
		}
		return &domain.Mutation{Delete: true, Audit: audit}, nil
	})
	if err != nil {
		s.observe("delete", err)
		return nil, err
	}

	s.revalidate(ctx)
	metrics.ModerationActions.WithLabelValues("delete", metrics.OutcomeOK).Inc()
	s.logger.Info("event deleted", logger.String("event_id", id))

	return &domain.ModerationResult{EventID: id}, nil
}

// Share posts an approved featured event to the social platforms and logs
// which of them accepted it.
func (s *ModerationService) Share(ctx context.Context, id string) (*domain.ModerationResult, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		s.observe("share", err)
		return nil, err
	}
	if !e.Shareable() {
		s.observe("share", domain.ErrShareNotAllowed)
		return nil, domain.ErrShareNotAllowed
	}

	shareCtx, cancel := context.WithTimeout(ctx, s.cfg.ShareTimeout)
	defer cancel()

	platforms, err := s.social.Share(shareCtx, s.socialPayload(e))
	if err != nil {
		s.observe("share", domain.ErrUpstream)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if len(platforms) == 0 {
		s.observe("share", domain.ErrUpstream)
		return nil, fmt.Errorf("%w: no social platform accepted the post", domain.ErrUpstream)
	}

	audit, err := domain.NewAdminAction(domain.ActionEventShared, e.ID, map[string]any{
		"eventId":   e.ID,
		"title":     e.Title,
		"platforms": platforms,
	})
	if err == nil {
		err = s.analytics.InsertAdminAction(ctx, audit)
	}
	if err != nil {
		s.logger.Error("failed to log event share",
			logger.String("event_id", e.ID),
			logger.String("error", err.Error()),
		)
	}

	metrics.ModerationActions.WithLabelValues("share", metrics.OutcomeOK).Inc()
	s.logger.Info("event shared",
		logger.String("event_id", e.ID),
		logger.Any("platforms", platforms),
	)

	return &domain.ModerationResult{EventID: e.ID, Approved: true, Platforms: platforms}, nil
}

func (s *ModerationService) approvalEffects(e *domain.Event) ([]domain.OutboxMessage, error) {
	email, err := domain.NewEmailMessage(domain.EmailPayload{
		Template: domain.EmailApproval,
		To:       e.OrganizerEmail,
		Data: map[string]string{
			"event_id":       e.ID,
			"title":          e.Title,
			"organizer_name": e.OrganizerName,
			"url":            s.eventURL(e.ID),
		},
	}, s.cfg.Lease)
	if err != nil {
		return nil, fmt.Errorf("build approval email: %w", err)
	}
	msgs := []domain.OutboxMessage{email}

	if e.Featured {
		post, err := domain.NewSocialMessage(s.socialPayload(e), s.cfg.Lease)
		if err != nil {
			return nil, fmt.Errorf("build social post: %w", err)
		}
		msgs = append(msgs, post)
	}

	return msgs, nil
}

func (s *ModerationService) socialPayload(e *domain.Event) domain.SocialPayload {
	return domain.SocialPayload{
		EventID:   e.ID,
		Title:     e.Title,
		Location:  e.Location,
		Mode:      string(e.Mode),
		StartDate: e.StartDate,
		URL:       s.eventURL(e.ID),
	}
}

func (s *ModerationService) eventURL(id string) string {
	return s.cfg.PublicBaseURL + "/trainings/" + id
}

// revalidate drops cached public listings after a committed change.
func (s *ModerationService) revalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate listing cache",
			logger.String("error", err.Error()),
		)
	}
}

func (s *ModerationService) observe(action string, err error) {
	outcome := metrics.OutcomeError
	if errors.Is(err, domain.ErrShareNotAllowed) || errors.Is(err, domain.ErrNotPaid) || errors.Is(err, domain.ErrEventNotFound) {
		outcome = metrics.OutcomeRefused
	}
	metrics.ModerationActions.WithLabelValues(action, outcome).Inc()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
