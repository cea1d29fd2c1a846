package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

// Platform is one social destination for event announcements.
type Platform interface {
	Name() string
	Post(ctx context.Context, p domain.SocialPayload) error
}

// SocialDispatcher posts to every platform and reports which succeeded.
type SocialDispatcher struct {
	platforms []Platform
	logger    logger.Logger
}

func NewSocialDispatcher(logger logger.Logger, platforms ...Platform) *SocialDispatcher {
	return &SocialDispatcher{platforms: platforms, logger: logger}
}

// Share returns an error only when platforms are configured and every one
// of them failed. A partial failure is logged and counted per platform but
// not retried, so platforms that accepted the post never see it twice.
func (d *SocialDispatcher) Share(ctx context.Context, p domain.SocialPayload) ([]string, error) {
	if len(d.platforms) == 0 {
		d.logger.Debug("social share skipped (no platforms)", logger.String("event_id", p.EventID))
		return []string{}, nil
	}

	var (
		posted []string
		errs   []error
	)
	for _, pl := range d.platforms {
		if err := pl.Post(ctx, p); err != nil {
			d.logger.Error("social post failed",
				logger.String("platform", pl.Name()),
				logger.String("event_id", p.EventID),
				logger.String("error", err.Error()),
			)
			metrics.SocialPosts.WithLabelValues(pl.Name(), metrics.OutcomeError).Inc()
			errs = append(errs, fmt.Errorf("%s: %w", pl.Name(), err))
			continue
		}
		metrics.SocialPosts.WithLabelValues(pl.Name(), metrics.OutcomeOK).Inc()
		posted = append(posted, pl.Name())
	}

	if len(posted) == 0 {
		return nil, errors.Join(errs...)
	}
	if len(errs) > 0 {
		d.logger.Warn("social share partially failed",
			logger.String("event_id", p.EventID),
			logger.String("posted", strings.Join(posted, ",")),
			logger.String("error", errors.Join(errs...).Error()),
		)
	}
	return posted, nil
}

func announcement(p domain.SocialPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New training: %s\n", p.Title)
	fmt.Fprintf(&b, "Starts: %s\n", p.StartDate.UTC().Format("02 Jan 2006 15:04 UTC"))
	if p.Location != "" {
		fmt.Fprintf(&b, "Where: %s (%s)\n", p.Location, p.Mode)
	} else if p.Mode != "" {
		fmt.Fprintf(&b, "Mode: %s\n", p.Mode)
	}
	b.WriteString(p.URL)
	return b.String()
}
