package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, title, description, organizer_name, organizer_email, organizer_phone, website,
	start_date, end_date, location, mode, price, currency, package_type,
	approved, featured, payment_status, payment_reference,
	rejection_reason, rejected_at, approved_at, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// CreateWithPayment stores a submitted event together with its payment row,
// the submission audit entry and pending side effects in one transaction.
func (r *EventRepository) CreateWithPayment(
	ctx context.Context,
	e *domain.Event,
	p *domain.Payment,
	audit *domain.AdminAction,
	outbox []domain.OutboxMessage,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now
	p.CreatedAt, p.UpdatedAt = now, now

	eventQuery := `INSERT INTO events (` + eventColumns + `)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
				           $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	if _, err = tx.ExecContext(
		ctx, eventQuery,
		e.ID, e.Title, e.Description, e.OrganizerName, e.OrganizerEmail, e.OrganizerPhone, e.Website,
		e.StartDate, e.EndDate, e.Location, e.Mode, e.Price, e.Currency, e.PackageType,
		e.Approved, e.Featured, e.PaymentStatus, e.PaymentReference,
		e.RejectionReason, e.RejectedAt, e.ApprovedAt, e.CreatedAt, e.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("insert event: %w", err)
	}

	paymentQuery := `INSERT INTO payments (id, reference, related_type, related_id, email, amount, currency, status, created_at, updated_at)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err = tx.ExecContext(
		ctx, paymentQuery,
		p.ID, p.Reference, p.RelatedType, p.RelatedID, p.Email,
		p.Amount, p.Currency, p.Status, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	if audit != nil {
		if err = insertAdminAction(ctx, tx, audit); err != nil {
			return err
		}
	}
	if err = insertOutbox(ctx, tx, outbox); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// Mutate locks the event row, lets fn decide the transition and writes the
// resulting state, audit entry and outbox messages atomically.
func (r *EventRepository) Mutate(
	ctx context.Context,
	id string,
	fn func(current *domain.Event) (*domain.Mutation, error),
) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	current, err := scanEvent(tx.QueryRowContext(ctx, lockQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	m, err := fn(current)
	if err != nil {
		return nil, err
	}
	if m.Noop() {
		return current, nil
	}

	result := current
	switch {
	case m.Delete:
		if _, err = tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
			return nil, fmt.Errorf("delete event: %w", err)
		}
	case m.Event != nil:
		query := `UPDATE events
				  SET approved = $2, featured = $3, payment_status = $4,
				      rejection_reason = $5, rejected_at = $6, approved_at = $7, updated_at = now()
				  WHERE id = $1
				  RETURNING updated_at`
		next := m.Event
		if err = tx.QueryRowContext(
			ctx, query, id,
			next.Approved, next.Featured, next.PaymentStatus,
			next.RejectionReason, next.RejectedAt, next.ApprovedAt,
		).Scan(&next.UpdatedAt); err != nil {
			if isCheckViolation(err) {
				return nil, domain.ErrNotPaid
			}
			return nil, fmt.Errorf("update event: %w", err)
		}
		result = next
	}

	if m.Audit != nil {
		if err = insertAdminAction(ctx, tx, m.Audit); err != nil {
			return nil, err
		}
	}
	if err = insertOutbox(ctx, tx, m.Outbox); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return result, nil
}

func (r *EventRepository) ListPublic(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE approved = true AND end_date >= $1
			  ORDER BY featured DESC, start_date ASC`

	return r.list(ctx, query, now)
}

// ListPublicByKeywords narrows the public listing to events whose title or
// description mentions any of keywords.
func (r *EventRepository) ListPublicByKeywords(ctx context.Context, now time.Time, keywords []string) ([]*domain.Event, error) {
	patterns := make([]string, 0, len(keywords))
	for _, k := range keywords {
		patterns = append(patterns, "%"+k+"%")
	}

	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE approved = true AND end_date >= $1
			    AND (title ILIKE ANY($2) OR description ILIKE ANY($2))
			  ORDER BY featured DESC, start_date ASC`

	return r.list(ctx, query, now, pq.Array(patterns))
}

func (r *EventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY created_at DESC`

	return r.list(ctx, query)
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.OrganizerName, &e.OrganizerEmail, &e.OrganizerPhone, &e.Website,
		&e.StartDate, &e.EndDate, &e.Location, &e.Mode, &e.Price, &e.Currency, &e.PackageType,
		&e.Approved, &e.Featured, &e.PaymentStatus, &e.PaymentReference,
		&e.RejectionReason, &e.RejectedAt, &e.ApprovedAt, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
