package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OutboxRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOutboxRepo(db *dbpg.DB) *OutboxRepository {
	return &OutboxRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Claim leases up to limit due pending messages. Claimed rows are pushed
// lease into the future, so concurrent claimers skip them and no row lock
// is held while the caller delivers.
func (r *OutboxRepository) Claim(ctx context.Context, limit int, lease time.Duration) ([]domain.OutboxMessage, error) {
	query := `UPDATE outbox_messages
			  SET next_attempt_at = now() + make_interval(secs => $3)
			  WHERE id IN (
			      SELECT id FROM outbox_messages
			      WHERE status = $1 AND next_attempt_at <= now()
			      ORDER BY created_at
			      LIMIT $2
			      FOR UPDATE SKIP LOCKED
			  )
			  RETURNING id, kind, topic, payload, status, attempts, last_error, next_attempt_at, created_at, sent_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.OutboxPending, limit, lease.Seconds())
	if err != nil {
		return nil, fmt.Errorf("claim outbox: %w", err)
	}
	defer rows.Close()

	var res []domain.OutboxMessage
	for rows.Next() {
		var (
			m       domain.OutboxMessage
			payload []byte
		)
		if err = rows.Scan(
			&m.ID, &m.Kind, &m.Topic, &payload, &m.Status,
			&m.Attempts, &m.LastError, &m.NextAttemptAt, &m.CreatedAt, &m.SentAt,
		); err != nil {
			return nil, fmt.Errorf("scan outbox message: %w", err)
		}
		m.Payload = payload
		res = append(res, m)
	}

	return res, rows.Err()
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id string) error {
	query := `UPDATE outbox_messages
			  SET status = $2, attempts = attempts + 1, last_error = NULL, sent_at = now()
			  WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.OutboxSent); err != nil {
		return fmt.Errorf("mark outbox sent: %w", err)
	}
	return nil
}

// MarkFailed records a failed attempt. The message stays pending until
// nextAttempt unless status is domain.OutboxFailed.
func (r *OutboxRepository) MarkFailed(
	ctx context.Context,
	id string,
	status domain.OutboxStatus,
	lastErr string,
	nextAttempt time.Time,
) error {
	query := `UPDATE outbox_messages
			  SET status = $2, attempts = attempts + 1, last_error = $3, next_attempt_at = $4
			  WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, lastErr, nextAttempt); err != nil {
		return fmt.Errorf("mark outbox failed: %w", err)
	}
	return nil
}
