package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/gateway"
	"github.com/Onahi7/portfolio-sub000/internal/metrics"
	"github.com/Onahi7/portfolio-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

const maxReferenceAttempts = 3

type SubmissionConfig struct {
	OperatorEmail string
	Currency      domain.Currency
	Lease         time.Duration
}

type SubmissionService struct {
	repo      ports.EventRepo
	deliverer ports.Deliverer
	gateway   *gateway.Gateway
	cfg       SubmissionConfig
	logger    logger.Logger
	now       func() time.Time
}

func NewSubmissionService(
	repo ports.EventRepo,
	deliverer ports.Deliverer,
	gw *gateway.Gateway,
	cfg SubmissionConfig,
	logger logger.Logger,
) *SubmissionService {
	return &SubmissionService{
		repo:      repo,
		deliverer: deliverer,
		gateway:   gw,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit stores a new unapproved, unpaid event with its payment reference
// and returns where the organizer should go to pay the listing fee.
func (s *SubmissionService) Submit(ctx context.Context, input domain.SubmitEventInput) (*domain.SubmitResult, error) {
	if err := validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	now := s.now().UTC()
	if input.EndDate.Before(now) {
		return nil, fmt.Errorf("%w: end_date must be in the future", domain.ErrValidation)
	}

	fee, err := gateway.Fee(input.PackageType)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Description:    input.Description,
		OrganizerName:  input.OrganizerName,
		OrganizerEmail: input.OrganizerEmail,
		OrganizerPhone: input.OrganizerPhone,
		Website:        input.Website,
		StartDate:      input.StartDate.UTC(),
		EndDate:        input.EndDate.UTC(),
		Location:       input.Location,
		Mode:           input.Mode,
		Price:          input.Price,
		Currency:       input.Currency,
		PackageType:    input.PackageType,
		Approved:       false,
		Featured:       input.PackageType.Featured(),
		PaymentStatus:  domain.PaymentPending,
	}

	payment := &domain.Payment{
		ID:          uuid.New().String(),
		RelatedType: domain.RelatedEvent,
		RelatedID:   event.ID,
		Email:       event.OrganizerEmail,
		Amount:      fee,
		Currency:    s.cfg.Currency,
		Status:      domain.PaymentRecordPending,
	}

	audit, err := domain.NewAdminAction(domain.ActionEventSubmitted, event.ID, map[string]any{
		"eventId":     event.ID,
		"packageType": event.PackageType,
		"fee":         fee.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("build audit entry: %w", err)
	}

	outbox, err := s.submissionEffects(event, fee)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		ref := gateway.NewReference(s.now())
		event.PaymentReference = ref
		payment.Reference = ref

		err = s.repo.CreateWithPayment(ctx, event, payment, audit, outbox)
		if !errors.Is(err, domain.ErrDuplicateReference) {
			break
		}
		s.logger.Warn("payment reference collision, regenerating",
			logger.String("reference", ref),
			logger.Int("attempt", attempt+1),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	metrics.Submissions.WithLabelValues(string(event.PackageType)).Inc()
	s.logger.Info("event submitted",
		logger.String("event_id", event.ID),
		logger.String("package_type", string(event.PackageType)),
		logger.String("reference", event.PaymentReference),
		logger.Any("featured", event.Featured),
	)

	res := &domain.SubmitResult{
		EventID:    event.ID,
		Reference:  event.PaymentReference,
		PaymentURL: s.gateway.PaymentInitURL(event.PaymentReference, fee, event.OrganizerEmail, event.ID),
	}
	if len(outbox) > 0 {
		res.Notified = s.deliverer.Deliver(ctx, outbox).Emailed
	}

	return res, nil
}

func (s *SubmissionService) submissionEffects(e *domain.Event, fee decimal.Decimal) ([]domain.OutboxMessage, error) {
	if s.cfg.OperatorEmail == "" {
		return nil, nil
	}

	msg, err := domain.NewEmailMessage(domain.EmailPayload{
		Template: domain.EmailSubmission,
		To:       s.cfg.OperatorEmail,
		Data: map[string]string{
			"event_id":        e.ID,
			"title":           e.Title,
			"organizer_name":  e.OrganizerName,
			"organizer_email": e.OrganizerEmail,
			"package_type":    string(e.PackageType),
			"fee":             fee.String(),
			"currency":        string(s.cfg.Currency),
		},
	}, s.cfg.Lease)
	if err != nil {
		return nil, fmt.Errorf("build submission email: %w", err)
	}

	return []domain.OutboxMessage{msg}, nil
}
