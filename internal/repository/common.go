package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

type rowScanner interface {
	Scan(dest ...any) error
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func pqCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool     { return pqCode(err) == pqUniqueViolation }
func isForeignKeyViolation(err error) bool { return pqCode(err) == pqForeignKeyViolation }
func isCheckViolation(err error) bool      { return pqCode(err) == pqCheckViolation }

func insertAdminAction(ctx context.Context, ex execer, a *domain.AdminAction) error {
	query := `INSERT INTO admin_actions (action, event_id, metadata, created_at)
			  VALUES ($1, $2, $3, $4)`
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if _, err := ex.ExecContext(ctx, query, a.Action, a.EventID, string(a.Metadata), a.CreatedAt); err != nil {
		return fmt.Errorf("insert admin action: %w", err)
	}
	return nil
}

func insertOutbox(ctx context.Context, ex execer, msgs []domain.OutboxMessage) error {
	query := `INSERT INTO outbox_messages (id, kind, topic, payload, status, attempts, next_attempt_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, m := range msgs {
		if _, err := ex.ExecContext(
			ctx, query,
			m.ID, m.Kind, m.Topic, string(m.Payload), m.Status, m.Attempts, m.NextAttemptAt, m.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert outbox message: %w", err)
		}
	}
	return nil
}
