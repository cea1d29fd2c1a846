package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// AnalyticsRepository keeps the append-only view, click and admin action
// facts. Aggregates are computed at read time.
type AnalyticsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAnalyticsRepo(db *dbpg.DB) *AnalyticsRepository {
	return &AnalyticsRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *AnalyticsRepository) InsertView(ctx context.Context, v *domain.EventView) error {
	query := `INSERT INTO event_views (event_id, ip, user_agent, referer, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, v.EventID, v.IP, v.UserAgent, v.Referer, v.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert view: %w", err)
	}

	return nil
}

func (r *AnalyticsRepository) InsertClick(ctx context.Context, c *domain.EventClick) error {
	query := `INSERT INTO event_clicks (event_id, target, ip, user_agent, referer, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, c.EventID, c.Target, c.IP, c.UserAgent, c.Referer, c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert click: %w", err)
	}

	return nil
}

func (r *AnalyticsRepository) InsertAdminAction(ctx context.Context, a *domain.AdminAction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = insertAdminAction(ctx, tx, a); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *AnalyticsRepository) Summary(ctx context.Context, eventID string) (*domain.EventSummary, error) {
	countQuery := `SELECT
					   (SELECT COUNT(*) FROM event_views WHERE event_id = $1),
					   (SELECT COUNT(*) FROM event_clicks WHERE event_id = $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("count analytics: %w", err)
	}

	s := &domain.EventSummary{
		EventID:        eventID,
		ClicksByTarget: make(map[domain.ClickTarget]int64),
	}
	if err = row.Scan(&s.Views, &s.Clicks); err != nil {
		return nil, fmt.Errorf("scan counts: %w", err)
	}

	targetQuery := `SELECT target, COUNT(*)
					FROM event_clicks
					WHERE event_id = $1
					GROUP BY target`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, targetQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("clicks by target: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			target domain.ClickTarget
			count  int64
		)
		if err = rows.Scan(&target, &count); err != nil {
			return nil, fmt.Errorf("scan click target: %w", err)
		}
		s.ClicksByTarget[target] = count
	}

	return s, rows.Err()
}

func (r *AnalyticsRepository) TopByViews(ctx context.Context, limit int) ([]*domain.EventRank, error) {
	query := `SELECT e.id, e.title, COUNT(v.id) AS views
			  FROM events e
			  LEFT JOIN event_views v ON v.event_id = e.id
			  GROUP BY e.id, e.title
			  ORDER BY views DESC, e.title ASC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top by views: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.EventRank, 0, limit)
	for rows.Next() {
		var rank domain.EventRank
		if err = rows.Scan(&rank.EventID, &rank.Title, &rank.Views); err != nil {
			return nil, fmt.Errorf("scan rank: %w", err)
		}
		res = append(res, &rank)
	}

	return res, rows.Err()
}

func (r *AnalyticsRepository) RecentActions(ctx context.Context, limit int) ([]*domain.AdminAction, error) {
	query := `SELECT id, action, event_id, metadata, created_at
			  FROM admin_actions
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent actions: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.AdminAction, 0, limit)
	for rows.Next() {
		var (
			a        domain.AdminAction
			metadata []byte
		)
		if err = rows.Scan(&a.ID, &a.Action, &a.EventID, &metadata, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan admin action: %w", err)
		}
		a.Metadata = metadata
		res = append(res, &a)
	}

	return res, rows.Err()
}
