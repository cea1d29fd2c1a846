package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type moderationMocks struct {
	events    *mocks.MockEventRepo
	analytics *mocks.MockAnalyticsRepo
	deliverer *mocks.MockDeliverer
	social    *mocks.MockSocialSharer
	cache     *mocks.MockListingCache
}

func newModerationService(t *testing.T) (*ModerationService, moderationMocks) {
	t.Helper()
	m := moderationMocks{
		events:    mocks.NewMockEventRepo(t),
		analytics: mocks.NewMockAnalyticsRepo(t),
		deliverer: mocks.NewMockDeliverer(t),
		social:    mocks.NewMockSocialSharer(t),
		cache:     mocks.NewMockListingCache(t),
	}

	svc := NewModerationService(m.events, m.analytics, m.deliverer, m.social, m.cache, ModerationConfig{
		PublicBaseURL: "https://trainings.example.com/",
		Lease:         time.Minute,
		ShareTimeout:  time.Second,
	}, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }

	return svc, m
}

func paidEvent(featured bool) *domain.Event {
	pkg := domain.PackageBasic
	if featured {
		pkg = domain.PackagePremium
	}
	return &domain.Event{
		ID:               "e1",
		Title:            "React Bootcamp",
		OrganizerName:    "Ada",
		OrganizerEmail:   "ada@example.com",
		StartDate:        fixedNow.Add(24 * time.Hour),
		EndDate:          fixedNow.Add(48 * time.Hour),
		Location:         "Lagos",
		Mode:             domain.ModeHybrid,
		Price:            decimal.NewFromInt(50000),
		Currency:         domain.CurrencyNGN,
		PackageType:      pkg,
		Featured:         featured,
		PaymentStatus:    domain.PaymentPaid,
		PaymentReference: "TRN_1_1",
	}
}

// mutateWith applies the transition to current, as the repository does
// under its row lock, and keeps the mutation for inspection.
func mutateWith(current *domain.Event, got **domain.Mutation) func(context.Context, string, func(*domain.Event) (*domain.Mutation, error)) (*domain.Event, error) {
	return func(_ context.Context, _ string, fn func(*domain.Event) (*domain.Mutation, error)) (*domain.Event, error) {
		m, err := fn(current)
		if err != nil {
			return nil, err
		}
		*got = m
		if m.Noop() || m.Delete {
			return current, nil
		}
		return m.Event, nil
	}
}

func auditMetadata(t *testing.T, a *domain.AdminAction) map[string]any {
	t.Helper()
	require.NotNil(t, a)
	var md map[string]any
	require.NoError(t, json.Unmarshal(a.Metadata, &md))
	return md
}

// --- Approve ---

func TestModerationService_Approve_Basic(t *testing.T) {
	svc, m := newModerationService(t)

	var got *domain.Mutation
	m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(paidEvent(false), &got))
	m.cache.EXPECT().Invalidate(mock.Anything).Return(nil)
	m.deliverer.EXPECT().Deliver(mock.Anything, mock.MatchedBy(func(msgs []domain.OutboxMessage) bool {
		return len(msgs) == 1 && msgs[0].Kind == domain.OutboxEmail
	})).Return(domain.DeliveryReport{Emailed: true})

	res, err := svc.Approve(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.False(t, res.AlreadyApplied)
	assert.True(t, res.Notified)
	assert.Empty(t, res.Platforms)

	require.NotNil(t, got)
	require.NotNil(t, got.Event)
	assert.True(t, got.Event.Approved)
	require.NotNil(t, got.Event.ApprovedAt)
	assert.Equal(t, fixedNow, *got.Event.ApprovedAt)
	assert.Equal(t, domain.ActionEventApproved, got.Audit.Action)
	assert.Equal(t, false, auditMetadata(t, got.Audit)["featured"])

	var email domain.EmailPayload
	require.NoError(t, json.Unmarshal(got.Outbox[0].Payload, &email))
	assert.Equal(t, domain.EmailApproval, email.Template)
	assert.Equal(t, "ada@example.com", email.To)
	assert.Equal(t, "https://trainings.example.com/trainings/e1", email.Data["url"])
}

func TestModerationService_Approve_FeaturedPostsToSocial(t *testing.T) {
	svc, m := newModerationService(t)

	var got *domain.Mutation
	m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(paidEvent(true), &got))
	m.cache.EXPECT().Invalidate(mock.Anything).Return(nil)
	m.deliverer.EXPECT().Deliver(mock.Anything, mock.Anything).Return(domain.DeliveryReport{
		Emailed:   true,
		Platforms: []string{"telegram"},
	})

	res, err := svc.Approve(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, []string{"telegram"}, res.Platforms)

	require.Len(t, got.Outbox, 2)
	assert.Equal(t, domain.OutboxSocial, got.Outbox[1].Kind)

	var post domain.SocialPayload
	require.NoError(t, json.Unmarshal(got.Outbox[1].Payload, &post))
	assert.Equal(t, "React Bootcamp", post.Title)
	assert.Equal(t, "hybrid", post.Mode)
}

func TestModerationService_Approve_ClearsRejection(t *testing.T) {
	svc, m := newModerationService(t)

	rejected := paidEvent(false)
	reason := "missing details"
	rejectedAt := fixedNow.Add(-time.Hour)
	rejected.RejectionReason = &reason
	rejected.RejectedAt = &rejectedAt

	var got *domain.Mutation
	m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(rejected, &got))
	m.cache.EXPECT().Invalidate(mock.Anything).Return(nil)
	m.deliverer.EXPECT().Deliver(mock.Anything, mock.Anything).Return(domain.DeliveryReport{Emailed: true})

	_, err := svc.Approve(context.Background(), "e1")

	require.NoError(t, err)
	assert.Nil(t, got.Event.RejectedAt)
	assert.Nil(t, got.Event.RejectionReason)
	assert.Equal(t, domain.StateApproved, got.Event.State())
}

func TestModerationService_Approve_NotPaid(t *testing.T) {
	for _, status := range []domain.PaymentStatus{domain.PaymentPending, domain.PaymentFailed} {
		t.Run(string(status), func(t *testing.T) {
			svc, m := newModerationService(t)

			e := paidEvent(false)
			e.PaymentStatus = status

			var got *domain.Mutation
			m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(e, &got))

			_, err := svc.Approve(context.Background(), "e1")

			assert.ErrorIs(t, err, domain.ErrNotPaid)
			assert.Nil(t, got)
		})
	}
}

func TestModerationService_Approve_AlreadyApproved(t *testing.T) {
	svc, m := newModerationService(t)

	e := paidEvent(true)
	e.Approved = true

	var got *domain.Mutation
	m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(e, &got))

	res, err := svc.Approve(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.True(t, res.AlreadyApplied)
	assert.False(t, res.Notified)
	assert.True(t, got.Noop())
}

func TestModerationService_Approve_NotFound(t *testing.T) {
	svc, m := newModerationService(t)

	m.events.EXPECT().Mutate(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Approve(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestModerationService_Approve_EmailFailureStaysPending(t *testing.T) {
	svc, m := newModerationService(t)

	var got *domain.Mutation
	m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(paidEvent(false), &got))
	m.cache.EXPECT().Invalidate(mock.Anything).Return(errors.New("redis down"))
	m.deliverer.EXPECT().Deliver(mock.Anything, mock.Anything).Return(domain.DeliveryReport{Failed: 1})

	res, err := svc.Approve(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.False(t, res.Notified)
	assert.Equal(t, 1, res.PendingEffects)
}

// --- Reject ---

func TestModerationService_Reject_WithReason(t *testing.T) {
	svc, m := newModerationService(t)

	approved := paidEvent(false)
	approvedAt := fixedNow.Add(-time.Hour)
	approved.Approved = true
	approved.ApprovedAt = &approvedAt

	var got *domain.Mutation
	m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(approved, &got))
	m.cache.EXPECT().Invalidate(mock.Anything).Return(nil)
	m.deliverer.EXPECT().Deliver(mock.Anything, mock.Anything).Return(domain.DeliveryReport{Emailed: true})

	res, err := svc.Reject(context.Background(), "e1", "  incomplete agenda ")

	require.NoError(t, err)
	assert.False(t, res.Approved)
	assert.True(t, res.Notified)

	assert.False(t, got.Event.Approved)
	assert.Nil(t, got.Event.ApprovedAt)
	require.NotNil(t, got.Event.RejectedAt)
	require.NotNil(t, got.Event.RejectionReason)
	assert.Equal(t, "incomplete agenda", *got.Event.RejectionReason)
	assert.Equal(t, domain.StateRejected, got.Event.State())
	assert.Equal(t, "incomplete agenda", auditMetadata(t, got.Audit)["reason"])

	var email domain.EmailPayload
	require.NoError(t, json.Unmarshal(got.Outbox[0].Payload, &email))
	assert.Equal(t, domain.EmailRejection, email.Template)
	assert.Equal(t, "incomplete agenda", email.Data["reason"])
}

func TestModerationService_Reject_WithoutReason(t *testing.T) {
	svc, m := newModerationService(t)

	var got *domain.Mutation
	m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(paidEvent(false), &got))
	m.cache.EXPECT().Invalidate(mock.Anything).Return(nil)
	m.deliverer.EXPECT().Deliver(mock.Anything, mock.Anything).Return(domain.DeliveryReport{Emailed: true})

	_, err := svc.Reject(context.Background(), "e1", "")

	require.NoError(t, err)
	assert.Nil(t, got.Event.RejectionReason)
	assert.NotNil(t, got.Event.RejectedAt)
}

func TestModerationService_Reject_SameReasonIsNoop(t *testing.T) {
	svc, m := newModerationService(t)

	e := paidEvent(false)
	reason := "incomplete agenda"
	rejectedAt := fixedNow.Add(-time.Hour)
	e.RejectionReason = &reason
	e.RejectedAt = &rejectedAt

	var got *domain.Mutation
	m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(e, &got))

	res, err := svc.Reject(context.Background(), "e1", "incomplete agenda")

	require.NoError(t, err)
	assert.True(t, res.AlreadyApplied)
	assert.True(t, got.Noop())
}

// --- Delete ---

func TestModerationService_Delete(t *testing.T) {
	svc, m := newModerationService(t)

	var got *domain.Mutation
	m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(paidEvent(false), &got))
	m.cache.EXPECT().Invalidate(mock.Anything).Return(nil)

	res, err := svc.Delete(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", res.EventID)
	assert.True(t, got.Delete)
	assert.Empty(t, got.Outbox)
	assert.Equal(t, domain.ActionEventDeleted, got.Audit.Action)
	assert.Equal(t, "paid", auditMetadata(t, got.Audit)["paymentStatus"])
}

func TestModerationService_Delete_NotFound(t *testing.T) {
	svc, m := newModerationService(t)

	m.events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Delete(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

// --- Share ---

func TestModerationService_Share_NotAllowed(t *testing.T) {
	tests := []struct {
		name     string
		approved bool
		featured bool
	}{
		{"pending featured", false, true},
		{"approved basic", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newModerationService(t)

			e := paidEvent(tt.featured)
			e.Approved = tt.approved
			m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)

			_, err := svc.Share(context.Background(), "e1")

			assert.ErrorIs(t, err, domain.ErrShareNotAllowed)
		})
	}
}

func TestModerationService_Share_Success(t *testing.T) {
	svc, m := newModerationService(t)

	e := paidEvent(true)
	e.Approved = true
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.social.EXPECT().Share(mock.Anything, mock.MatchedBy(func(p domain.SocialPayload) bool {
		return p.EventID == "e1" && p.URL == "https://trainings.example.com/trainings/e1"
	})).Return([]string{"telegram", "slack"}, nil)

	var audit *domain.AdminAction
	m.analytics.EXPECT().InsertAdminAction(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.AdminAction) { audit = a }).
		Return(nil)

	res, err := svc.Share(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, []string{"telegram", "slack"}, res.Platforms)
	assert.Equal(t, domain.ActionEventShared, audit.Action)
	assert.Equal(t, []any{"telegram", "slack"}, auditMetadata(t, audit)["platforms"])
}

func TestModerationService_Share_Upstream(t *testing.T) {
	tests := []struct {
		name      string
		platforms []string
		err       error
	}{
		{"all platforms failed", nil, errors.New("telegram: 502")},
		{"no platforms configured", []string{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newModerationService(t)

			e := paidEvent(true)
			e.Approved = true
			m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
			m.social.EXPECT().Share(mock.Anything, mock.Anything).Return(tt.platforms, tt.err)

			_, err := svc.Share(context.Background(), "e1")

			assert.ErrorIs(t, err, domain.ErrUpstream)
		})
	}
}

func TestModerationService_Share_AuditFailureStillSucceeds(t *testing.T) {
	svc, m := newModerationService(t)

	e := paidEvent(true)
	e.Approved = true
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(e, nil)
	m.social.EXPECT().Share(mock.Anything, mock.Anything).Return([]string{"telegram"}, nil)
	m.analytics.EXPECT().InsertAdminAction(mock.Anything, mock.Anything).Return(errors.New("db down"))

	res, err := svc.Share(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, []string{"telegram"}, res.Platforms)
}

func TestModerationService_NilCache(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	svc := NewModerationService(events, nil, nil, nil, nil, ModerationConfig{}, newTestLogger(t))

	var got *domain.Mutation
	events.EXPECT().Mutate(mock.Anything, "e1", mock.Anything).RunAndReturn(mutateWith(paidEvent(false), &got))

	_, err := svc.Delete(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, got.Delete)
}
