package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var eventCols = []string{
	"id", "title", "description", "organizer_name", "organizer_email", "organizer_phone", "website",
	"start_date", "end_date", "location", "mode", "price", "currency", "package_type",
	"approved", "featured", "payment_status", "payment_reference",
	"rejection_reason", "rejected_at", "approved_at", "created_at", "updated_at",
}

var paymentCols = []string{
	"id", "reference", "related_type", "related_id", "email", "amount", "currency",
	"status", "gateway_response", "paid_at", "created_at", "updated_at",
}

var testTime = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &dbpg.DB{Master: db}, mock
}

func eventRow(approved bool, status domain.PaymentStatus) *sqlmock.Rows {
	return sqlmock.NewRows(eventCols).AddRow(
		"e1", "React Bootcamp", "Hooks", "Ada", "ada@example.com", "+234", nil,
		testTime.Add(24*time.Hour), testTime.Add(48*time.Hour), "Lagos", "online", "50000.00", "NGN", "premium",
		approved, true, string(status), "TRN_1_1",
		nil, nil, nil, testTime, testTime,
	)
}

func paymentRow(status domain.PaymentRecordStatus) *sqlmock.Rows {
	return sqlmock.NewRows(paymentCols).AddRow(
		"p1", "TRN_1_1", "event", "e1", "ada@example.com", "30000.00", "NGN",
		string(status), nil, nil, testTime, testTime,
	)
}

func testOutbox(t *testing.T) []domain.OutboxMessage {
	t.Helper()
	m, err := domain.NewEmailMessage(domain.EmailPayload{Template: domain.EmailApproval, To: "ada@example.com"}, time.Minute)
	require.NoError(t, err)
	return []domain.OutboxMessage{m}
}

// --- Events ---

func TestEventRepository_CreateWithPayment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	e := &domain.Event{ID: "e1", Title: "React Bootcamp", Price: decimal.NewFromInt(50000), PaymentReference: "TRN_1_1"}
	p := &domain.Payment{ID: "p1", Reference: "TRN_1_1", RelatedID: "e1", Amount: decimal.NewFromInt(30000)}
	audit, err := domain.NewAdminAction(domain.ActionEventSubmitted, "e1", map[string]any{"eventId": "e1"})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO events`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO payments`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO admin_actions`).
		WithArgs(domain.ActionEventSubmitted, "e1", `{"eventId":"e1"}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO outbox_messages`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateWithPayment(context.Background(), e, p, audit, testOutbox(t)))
	assert.False(t, e.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_CreateWithPayment_DuplicateReference(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO events`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO payments`).WillReturnError(&pq.Error{Code: pqUniqueViolation})
	mock.ExpectRollback()

	err := repo.CreateWithPayment(context.Background(), &domain.Event{ID: "e1"}, &domain.Payment{ID: "p1"}, nil, nil)

	assert.ErrorIs(t, err, domain.ErrDuplicateReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Mutate_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	updatedAt := testTime.Add(time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM events WHERE id = \$1 FOR UPDATE`).WithArgs("e1").WillReturnRows(eventRow(false, domain.PaymentPaid))
	mock.ExpectQuery(`UPDATE events`).
		WithArgs("e1", true, true, "paid", nil, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))
	mock.ExpectExec(`INSERT INTO admin_actions`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO outbox_messages`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outbox := testOutbox(t)
	got, err := repo.Mutate(context.Background(), "e1", func(cur *domain.Event) (*domain.Mutation, error) {
		assert.Equal(t, domain.ModeOnline, cur.Mode)
		assert.True(t, cur.Price.Equal(decimal.NewFromInt(50000)))
		assert.Nil(t, cur.Website)

		next := *cur
		now := testTime
		next.Approved = true
		next.ApprovedAt = &now
		return &domain.Mutation{
			Event:  &next,
			Audit:  &domain.AdminAction{Action: domain.ActionEventApproved, Metadata: json.RawMessage(`{}`)},
			Outbox: outbox,
		}, nil
	})

	require.NoError(t, err)
	assert.True(t, got.Approved)
	assert.Equal(t, updatedAt, got.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Mutate_CheckViolationIsNotPaid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("e1").WillReturnRows(eventRow(false, domain.PaymentPending))
	mock.ExpectQuery(`UPDATE events`).WillReturnError(&pq.Error{Code: pqCheckViolation})
	mock.ExpectRollback()

	_, err := repo.Mutate(context.Background(), "e1", func(cur *domain.Event) (*domain.Mutation, error) {
		next := *cur
		next.Approved = true
		return &domain.Mutation{Event: &next}, nil
	})

	assert.ErrorIs(t, err, domain.ErrNotPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Mutate_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("e1").WillReturnRows(eventRow(true, domain.PaymentPaid))
	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).WithArgs("e1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO admin_actions`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	_, err := repo.Mutate(context.Background(), "e1", func(*domain.Event) (*domain.Mutation, error) {
		return &domain.Mutation{
			Delete: true,
			Audit:  &domain.AdminAction{Action: domain.ActionEventDeleted, Metadata: json.RawMessage(`{}`)},
		}, nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Mutate_NoopWritesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("e1").WillReturnRows(eventRow(true, domain.PaymentPaid))
	mock.ExpectRollback()

	got, err := repo.Mutate(context.Background(), "e1", func(*domain.Event) (*domain.Mutation, error) {
		return nil, nil
	})

	require.NoError(t, err)
	assert.True(t, got.Approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Mutate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Mutate(context.Background(), "missing", func(*domain.Event) (*domain.Mutation, error) {
		t.Fatal("transition must not run for a missing event")
		return nil, nil
	})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListPublic(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM events WHERE approved = true AND end_date >= $1 ORDER BY featured DESC, start_date ASC`)).
		WithArgs(testTime).
		WillReturnRows(eventRow(true, domain.PaymentPaid))

	events, err := repo.ListPublic(context.Background(), testTime)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
	assert.True(t, events[0].Approved)
	assert.True(t, events[0].Featured)
	assert.True(t, events[0].Price.Equal(decimal.NewFromInt(50000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListPublic_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery(`FROM events WHERE approved = true`).WithArgs(testTime).WillReturnRows(sqlmock.NewRows(eventCols))

	events, err := repo.ListPublic(context.Background(), testTime)

	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListPublicByKeywords(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`WHERE approved = true AND end_date >= $1 AND (title ILIKE ANY($2) OR description ILIKE ANY($2)) ORDER BY featured DESC, start_date ASC`,
	)).
		WithArgs(testTime, pq.Array([]string{"%react%", "%vue%"})).
		WillReturnRows(eventRow(true, domain.PaymentPaid))

	events, err := repo.ListPublicByKeywords(context.Background(), testTime, []string{"react", "vue"})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "React Bootcamp", events[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	rows := eventRow(false, domain.PaymentPending)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM events ORDER BY created_at DESC`)).WillReturnRows(rows)

	events, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Approved)
	assert.Equal(t, domain.PaymentPending, events[0].PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM events WHERE id = $1`)).WithArgs("e1").WillReturnRows(eventRow(true, domain.PaymentPaid))

	e, err := repo.GetByID(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, "TRN_1_1", e.PaymentReference)
	assert.True(t, e.EndDate.Equal(testTime.Add(48*time.Hour)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery(`FROM events WHERE id = \$1`).WithArgs("missing").WillReturnRows(sqlmock.NewRows(eventCols))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- Payments ---

func TestPaymentRepository_Settle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	body := `{"event":"charge.success"}`
	paidAt := testTime

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM payments WHERE reference = \$1 FOR UPDATE`).WithArgs("TRN_1_1").WillReturnRows(paymentRow(domain.PaymentRecordPending))
	mock.ExpectQuery(`UPDATE payments`).
		WithArgs("p1", "successful", body, paidAt).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(testTime))
	mock.ExpectExec(`UPDATE events SET payment_status`).WithArgs("e1", "paid").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO outbox_messages`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outbox := testOutbox(t)
	p, applied, err := repo.Settle(context.Background(), "TRN_1_1", func(p *domain.Payment) (*domain.Settlement, error) {
		assert.True(t, p.Amount.Equal(decimal.NewFromInt(30000)))
		return &domain.Settlement{
			Status:          domain.PaymentRecordSuccessful,
			RelatedStatus:   domain.PaymentPaid,
			GatewayResponse: json.RawMessage(body),
			PaidAt:          &paidAt,
			Outbox:          outbox,
		}, nil
	})

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, domain.PaymentRecordSuccessful, p.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Settle_CourseEnrollment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	row := sqlmock.NewRows(paymentCols).AddRow(
		"p2", "TRN_2_2", "course", "c1", "bob@example.com", "15000.00", "NGN",
		"pending", nil, nil, testTime, testTime,
	)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("TRN_2_2").WillReturnRows(row)
	mock.ExpectQuery(`UPDATE payments`).
		WithArgs("p2", "failed", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(testTime))
	mock.ExpectExec(`UPDATE course_enrollments SET payment_status`).WithArgs("c1", "failed").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	p, applied, err := repo.Settle(context.Background(), "TRN_2_2", func(*domain.Payment) (*domain.Settlement, error) {
		return &domain.Settlement{Status: domain.PaymentRecordFailed, RelatedStatus: domain.PaymentFailed}, nil
	})

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, domain.RelatedCourse, p.RelatedType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Settle_NilSettlementWritesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("TRN_1_1").WillReturnRows(paymentRow(domain.PaymentRecordSuccessful))
	mock.ExpectRollback()

	p, applied, err := repo.Settle(context.Background(), "TRN_1_1", func(*domain.Payment) (*domain.Settlement, error) {
		return nil, nil
	})

	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, domain.PaymentRecordSuccessful, p.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Settle_DeletedEventSkipsOutbox(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	paidAt := testTime

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("TRN_1_1").WillReturnRows(paymentRow(domain.PaymentRecordPending))
	mock.ExpectQuery(`UPDATE payments`).
		WithArgs("p1", "successful", nil, paidAt).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(testTime))
	mock.ExpectExec(`UPDATE events SET payment_status`).WithArgs("e1", "paid").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	st := &domain.Settlement{
		Status:        domain.PaymentRecordSuccessful,
		RelatedStatus: domain.PaymentPaid,
		PaidAt:        &paidAt,
		Outbox:        testOutbox(t),
	}
	p, applied, err := repo.Settle(context.Background(), "TRN_1_1", func(*domain.Payment) (*domain.Settlement, error) {
		return st, nil
	})

	require.NoError(t, err)
	assert.True(t, applied)
	assert.True(t, st.RelatedMissing)
	assert.Equal(t, domain.PaymentRecordSuccessful, p.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Settle_UnknownReference(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("TRN_9_9").WillReturnRows(sqlmock.NewRows(paymentCols))
	mock.ExpectRollback()

	_, _, err := repo.Settle(context.Background(), "TRN_9_9", func(*domain.Payment) (*domain.Settlement, error) {
		return nil, nil
	})

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- Analytics and outbox ---

func TestAnalyticsRepository_InsertAdminAction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	a, err := domain.NewAdminAction(domain.ActionEventShared, "e1", map[string]any{"platforms": []string{"telegram"}})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO admin_actions`).
		WithArgs(domain.ActionEventShared, "e1", `{"platforms":["telegram"]}`, a.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.InsertAdminAction(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_InsertView(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	mock.ExpectExec(`INSERT INTO event_views`).
		WithArgs("e1", "10.0.0.1", "curl/8", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	v := &domain.EventView{EventID: "e1", IP: "10.0.0.1", UserAgent: "curl/8"}
	require.NoError(t, repo.InsertView(context.Background(), v))
	assert.False(t, v.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_InsertClick(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	mock.ExpectExec(`INSERT INTO event_clicks`).
		WithArgs("e1", domain.ClickRegister, "10.0.0.1", "curl/8", "https://t.co", testTime).
		WillReturnResult(sqlmock.NewResult(1, 1))

	c := &domain.EventClick{
		EventID:   "e1",
		Target:    domain.ClickRegister,
		IP:        "10.0.0.1",
		UserAgent: "curl/8",
		Referer:   "https://t.co",
		CreatedAt: testTime,
	}
	require.NoError(t, repo.InsertClick(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_Summary(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`(SELECT COUNT(*) FROM event_views WHERE event_id = $1)`)).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"views", "clicks"}).AddRow(12, 5))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM event_clicks WHERE event_id = $1 GROUP BY target`)).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"target", "count"}).
			AddRow("register", 3).
			AddRow("website", 2))

	s, err := repo.Summary(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", s.EventID)
	assert.Equal(t, int64(12), s.Views)
	assert.Equal(t, int64(5), s.Clicks)
	assert.Equal(t, map[domain.ClickTarget]int64{
		domain.ClickRegister: 3,
		domain.ClickWebsite:  2,
	}, s.ClicksByTarget)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_Summary_NoClicks(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	mock.ExpectQuery(`event_views`).WithArgs("e1").WillReturnRows(sqlmock.NewRows([]string{"views", "clicks"}).AddRow(0, 0))
	mock.ExpectQuery(`GROUP BY target`).WithArgs("e1").WillReturnRows(sqlmock.NewRows([]string{"target", "count"}))

	s, err := repo.Summary(context.Background(), "e1")

	require.NoError(t, err)
	assert.Zero(t, s.Views)
	assert.NotNil(t, s.ClicksByTarget)
	assert.Empty(t, s.ClicksByTarget)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_TopByViews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY views DESC, e.title ASC LIMIT $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "views"}).
			AddRow("e1", "React Bootcamp", 40).
			AddRow("e2", "Go Workshop", 7))

	ranks, err := repo.TopByViews(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, []*domain.EventRank{
		{EventID: "e1", Title: "React Bootcamp", Views: 40},
		{EventID: "e2", Title: "Go Workshop", Views: 7},
	}, ranks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_RecentActions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM admin_actions ORDER BY created_at DESC, id DESC LIMIT $1`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "event_id", "metadata", "created_at"}).
			AddRow(2, "event_approved", "e1", []byte(`{"featured":true}`), testTime).
			AddRow(1, "event_submitted", nil, []byte(`{}`), testTime))

	actions, err := repo.RecentActions(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, int64(2), actions[0].ID)
	assert.Equal(t, domain.ActionEventApproved, actions[0].Action)
	require.NotNil(t, actions[0].EventID)
	assert.Equal(t, "e1", *actions[0].EventID)
	assert.JSONEq(t, `{"featured":true}`, string(actions[0].Metadata))
	assert.Nil(t, actions[1].EventID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Claim(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutboxRepo(db)

	rows := sqlmock.NewRows([]string{
		"id", "kind", "topic", "payload", "status", "attempts", "last_error", "next_attempt_at", "created_at", "sent_at",
	}).AddRow("m1", "email", "approval", []byte(`{"to":"ada@example.com"}`), "pending", 1, "smtp: 421", testTime, testTime, nil)

	mock.ExpectQuery(`FOR UPDATE SKIP LOCKED`).WithArgs("pending", 20, float64(60)).WillReturnRows(rows)

	msgs, err := repo.Claim(context.Background(), 20, time.Minute)

	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.OutboxEmail, msgs[0].Kind)
	assert.Equal(t, 1, msgs[0].Attempts)
	require.NotNil(t, msgs[0].LastError)
	assert.Equal(t, "smtp: 421", *msgs[0].LastError)
	assert.JSONEq(t, `{"to":"ada@example.com"}`, string(msgs[0].Payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutboxRepo(db)

	next := testTime.Add(time.Minute)
	mock.ExpectExec(`UPDATE outbox_messages`).
		WithArgs("m1", "failed", "smtp: 550", next).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkFailed(context.Background(), "m1", domain.OutboxFailed, "smtp: 550", next))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutboxRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`SET status = $2, attempts = attempts + 1, last_error = NULL, sent_at = now() WHERE id = $1`)).
		WithArgs("m1", "sent").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkSent(context.Background(), "m1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
