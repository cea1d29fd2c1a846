package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/gateway"
	"github.com/Onahi7/portfolio-sub000/internal/metrics"
	"github.com/Onahi7/portfolio-sub000/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	repo      ports.PaymentRepo
	deliverer ports.Deliverer
	gateway   *gateway.Gateway
	lease     time.Duration
	logger    logger.Logger
	now       func() time.Time
}

func NewPaymentService(
	repo ports.PaymentRepo,
	deliverer ports.Deliverer,
	gw *gateway.Gateway,
	lease time.Duration,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		repo:      repo,
		deliverer: deliverer,
		gateway:   gw,
		lease:     lease,
		logger:    logger,
		now:       time.Now,
	}
}

// InitPayment checks the redirect parameters against the stored payment
// and returns the hosted checkout URL.
func (s *PaymentService) InitPayment(ctx context.Context, input domain.PaymentInitInput) (string, error) {
	if err := validate.Struct(input); err != nil {
		return "", validationError(err)
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() {
		return "", fmt.Errorf("%w: amount must be a positive number", domain.ErrValidation)
	}

	p, err := s.repo.GetByReference(ctx, input.Reference)
	if err != nil {
		return "", err
	}
	if p.RelatedID != input.EventID || !p.Amount.Equal(amount) {
		return "", fmt.Errorf("%w: payment details do not match reference", domain.ErrValidation)
	}
	if p.Status == domain.PaymentRecordSuccessful {
		return "", fmt.Errorf("%w: payment already completed", domain.ErrValidation)
	}

	return s.gateway.CheckoutURL(p.Reference, p.Amount, input.Email, input.EventID)
}

// HandleWebhook verifies and applies a gateway callback. Unknown event
// types are accepted without changes. Replayed successes change nothing
// and send nothing.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) (*domain.WebhookResult, error) {
	if err := s.gateway.Verify(body, signature); err != nil {
		metrics.WebhookEvents.WithLabelValues("unknown", metrics.OutcomeRefused).Inc()
		s.logger.Warn("payment webhook rejected: bad signature")
		return nil, err
	}

	var payload domain.GatewayPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed webhook payload", domain.ErrValidation)
	}
	if payload.Event == "" {
		return nil, fmt.Errorf("%w: webhook event is required", domain.ErrValidation)
	}

	switch payload.Event {
	case domain.GatewayChargeSuccess, domain.GatewayChargeFailed:
		if payload.Data.Reference == "" {
			return nil, fmt.Errorf("%w: data.reference is required", domain.ErrValidation)
		}
		return s.settle(ctx, payload, body)
	}

	metrics.WebhookEvents.WithLabelValues(payload.Event, metrics.OutcomeNoop).Inc()
	s.logger.Info("payment webhook ignored", logger.String("event", payload.Event))

	return &domain.WebhookResult{Event: payload.Event}, nil
}

func (s *PaymentService) settle(ctx context.Context, payload domain.GatewayPayload, body []byte) (*domain.WebhookResult, error) {
	succeeded := payload.Event == domain.GatewayChargeSuccess

	var (
		outbox     []domain.OutboxMessage
		settlement *domain.Settlement
	)
	p, applied, err := s.repo.Settle(ctx, payload.Data.Reference, func(p *domain.Payment) (*domain.Settlement, error) {
		if !succeeded {
			if p.Status != domain.PaymentRecordPending {
				return nil, nil
			}
			return &domain.Settlement{
				Status:          domain.PaymentRecordFailed,
				RelatedStatus:   domain.PaymentFailed,
				GatewayResponse: body,
			}, nil
		}

		if p.Status == domain.PaymentRecordSuccessful {
			return nil, nil
		}

		paidAt := s.now().UTC()
		if payload.Data.PaidAt != nil {
			paidAt = payload.Data.PaidAt.UTC()
		}

		msg, err := domain.NewEmailMessage(domain.EmailPayload{
			Template: domain.EmailPaymentConfirmation,
			To:       p.Email,
			Data: map[string]string{
				"reference":    p.Reference,
				"amount":       p.Amount.StringFixed(2),
				"currency":     string(p.Currency),
				"related_type": string(p.RelatedType),
				"related_id":   p.RelatedID,
				"channel":      payload.Data.Channel,
			},
		}, s.lease)
		if err != nil {
			return nil, fmt.Errorf("build confirmation email: %w", err)
		}
		outbox = []domain.OutboxMessage{msg}

		settlement = &domain.Settlement{
			Status:          domain.PaymentRecordSuccessful,
			RelatedStatus:   domain.PaymentPaid,
			GatewayResponse: body,
			PaidAt:          &paidAt,
			Outbox:          outbox,
		}
		return settlement, nil
	})
	if err != nil {
		metrics.WebhookEvents.WithLabelValues(payload.Event, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("settle payment: %w", err)
	}

	result := &domain.WebhookResult{
		Event:     payload.Event,
		Reference: p.Reference,
		Status:    p.Status,
		Applied:   applied,
	}

	if !applied {
		metrics.WebhookEvents.WithLabelValues(payload.Event, metrics.OutcomeNoop).Inc()
		s.logger.Info("payment webhook replay ignored",
			logger.String("reference", p.Reference),
			logger.String("status", string(p.Status)),
		)
		return result, nil
	}

	metrics.WebhookEvents.WithLabelValues(payload.Event, metrics.OutcomeOK).Inc()

	if settlement != nil && settlement.RelatedMissing {
		result.Orphaned = true
		s.logger.Warn("payment settled for a deleted record, confirmation skipped",
			logger.String("reference", p.Reference),
			logger.String("related_type", string(p.RelatedType)),
			logger.String("related_id", p.RelatedID),
		)
		return result, nil
	}

	s.logger.Info("payment settled",
		logger.String("reference", p.Reference),
		logger.String("status", string(p.Status)),
		logger.String("related_type", string(p.RelatedType)),
		logger.String("related_id", p.RelatedID),
	)

	if len(outbox) > 0 {
		report := s.deliverer.Deliver(ctx, outbox)
		result.Notified = report.Emailed
	}

	return result, nil
}
