package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const paymentColumns = `id, reference, related_type, related_id, email, amount, currency,
	status, gateway_response, paid_at, created_at, updated_at`

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PaymentRepository) GetByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE reference = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reference)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

// Settle locks the payment identified by reference and applies the
// settlement that fn returns, propagating the payment status to the related
// event or course enrollment. The bool result reports whether anything was
// written.
func (r *PaymentRepository) Settle(
	ctx context.Context,
	reference string,
	fn func(p *domain.Payment) (*domain.Settlement, error),
) (*domain.Payment, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + paymentColumns + ` FROM payments WHERE reference = $1 FOR UPDATE`
	p, err := scanPayment(tx.QueryRowContext(ctx, lockQuery, reference))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, domain.ErrPaymentNotFound
		}
		return nil, false, fmt.Errorf("lock payment: %w", err)
	}

	s, err := fn(p)
	if err != nil {
		return nil, false, err
	}
	if s == nil {
		return p, false, nil
	}

	var gatewayResponse *string
	if len(s.GatewayResponse) > 0 {
		raw := string(s.GatewayResponse)
		gatewayResponse = &raw
	}

	updateQuery := `UPDATE payments
					SET status = $2, gateway_response = $3, paid_at = $4, updated_at = now()
					WHERE id = $1
					RETURNING updated_at`
	if err = tx.QueryRowContext(
		ctx, updateQuery, p.ID, s.Status, gatewayResponse, s.PaidAt,
	).Scan(&p.UpdatedAt); err != nil {
		return nil, false, fmt.Errorf("update payment: %w", err)
	}
	p.Status = s.Status
	p.GatewayResponse = s.GatewayResponse
	p.PaidAt = s.PaidAt

	var relatedQuery string
	switch p.RelatedType {
	case domain.RelatedEvent:
		relatedQuery = `UPDATE events SET payment_status = $2, updated_at = now() WHERE id = $1`
	case domain.RelatedCourse:
		relatedQuery = `UPDATE course_enrollments SET payment_status = $2, updated_at = now() WHERE id = $1`
	default:
		return nil, false, fmt.Errorf("%w: unknown related type %q", domain.ErrValidation, p.RelatedType)
	}
	res, err := tx.ExecContext(ctx, relatedQuery, p.RelatedID, s.RelatedStatus)
	if err != nil {
		return nil, false, fmt.Errorf("update %s payment status: %w", p.RelatedType, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("update %s payment status: %w", p.RelatedType, err)
	}

	// The payment is still recorded when its event was deleted meanwhile,
	// but nothing is promised to the payer about a listing that is gone.
	if n == 0 {
		s.RelatedMissing = true
	} else if err = insertOutbox(ctx, tx, s.Outbox); err != nil {
		return nil, false, err
	}

	if err = tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit: %w", err)
	}

	return p, true, nil
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var (
		p               domain.Payment
		gatewayResponse []byte
	)
	if err := row.Scan(
		&p.ID, &p.Reference, &p.RelatedType, &p.RelatedID, &p.Email, &p.Amount, &p.Currency,
		&p.Status, &gatewayResponse, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(gatewayResponse) > 0 {
		p.GatewayResponse = gatewayResponse
	}
	return &p, nil
}
