package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "training_submissions_total",
			Help: "Submitted training events by package type",
		},
		[]string{"package"},
	)

	ModerationActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "training_moderation_actions_total",
			Help: "Moderation actions by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_webhook_events_total",
			Help: "Payment webhook deliveries by gateway event and outcome",
		},
		[]string{"event", "outcome"},
	)

	OutboxDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_deliveries_total",
			Help: "Outbox delivery attempts by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	SocialPosts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "social_posts_total",
			Help: "Social announcement attempts by platform and outcome",
		},
		[]string{"platform", "outcome"},
	)

	ListingCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_cache_lookups_total",
			Help: "Public listing cache lookups by result",
		},
		[]string{"result"},
	)
)

// Outcome label values.
const (
	OutcomeOK      = "ok"
	OutcomeNoop    = "noop"
	OutcomeRefused = "refused"
	OutcomeError   = "error"
)
