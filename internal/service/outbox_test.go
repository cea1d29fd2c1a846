package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOutboxService(t *testing.T) (*OutboxService, *mocks.MockOutboxRepo, *mocks.MockMailer, *mocks.MockSocialSharer) {
	t.Helper()
	repo := mocks.NewMockOutboxRepo(t)
	mailer := mocks.NewMockMailer(t)
	social := mocks.NewMockSocialSharer(t)

	svc := NewOutboxService(repo, mailer, social, OutboxOptions{
		BatchSize:   20,
		Lease:       time.Minute,
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		SendTimeout: time.Second,
	}, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }

	return svc, repo, mailer, social
}

func emailMessage(t *testing.T, attempts int) domain.OutboxMessage {
	t.Helper()
	m, err := domain.NewEmailMessage(domain.EmailPayload{
		Template: domain.EmailApproval,
		To:       "ada@example.com",
		Data:     map[string]string{"title": "React Bootcamp"},
	}, time.Minute)
	require.NoError(t, err)
	m.Attempts = attempts
	return m
}

func socialMessage(t *testing.T) domain.OutboxMessage {
	t.Helper()
	m, err := domain.NewSocialMessage(domain.SocialPayload{EventID: "e1", Title: "React Bootcamp"}, time.Minute)
	require.NoError(t, err)
	return m
}

func TestOutboxService_Deliver_Success(t *testing.T) {
	svc, repo, mailer, social := newOutboxService(t)

	email := emailMessage(t, 0)
	post := socialMessage(t)

	mailer.EXPECT().Send(mock.Anything, mock.MatchedBy(func(p domain.EmailPayload) bool {
		return p.Template == domain.EmailApproval && p.To == "ada@example.com"
	})).Return(nil)
	social.EXPECT().Share(mock.Anything, mock.MatchedBy(func(p domain.SocialPayload) bool {
		return p.EventID == "e1"
	})).Return([]string{"telegram"}, nil)
	repo.EXPECT().MarkSent(mock.Anything, email.ID).Return(nil)
	repo.EXPECT().MarkSent(mock.Anything, post.ID).Return(nil)

	report := svc.Deliver(context.Background(), []domain.OutboxMessage{email, post})

	assert.True(t, report.Emailed)
	assert.Equal(t, []string{"telegram"}, report.Platforms)
	assert.Zero(t, report.Failed)
}

func TestOutboxService_Deliver_Empty(t *testing.T) {
	svc, _, _, _ := newOutboxService(t)

	report := svc.Deliver(context.Background(), nil)

	assert.Equal(t, domain.DeliveryReport{}, report)
}

func TestOutboxService_Deliver_SurvivesCancelledRequest(t *testing.T) {
	svc, repo, mailer, _ := newOutboxService(t)

	email := emailMessage(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mailer.EXPECT().Send(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, _ domain.EmailPayload) error {
		return ctx.Err()
	})
	repo.EXPECT().MarkSent(mock.Anything, email.ID).Return(nil)

	report := svc.Deliver(ctx, []domain.OutboxMessage{email})

	assert.True(t, report.Emailed)
}

func TestOutboxService_Deliver_FailureSchedulesRetry(t *testing.T) {
	tests := []struct {
		name       string
		attempts   int
		wantStatus domain.OutboxStatus
		wantDelay  time.Duration
	}{
		{"first failure", 0, domain.OutboxPending, 30 * time.Second},
		{"second failure", 1, domain.OutboxPending, time.Minute},
		{"last attempt", 2, domain.OutboxFailed, 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, mailer, _ := newOutboxService(t)

			email := emailMessage(t, tt.attempts)
			mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("smtp: 421"))
			repo.EXPECT().MarkFailed(mock.Anything, email.ID, tt.wantStatus, mock.MatchedBy(func(msg string) bool {
				return assert.Contains(t, msg, "smtp: 421")
			}), fixedNow.Add(tt.wantDelay)).Return(nil)

			report := svc.Deliver(context.Background(), []domain.OutboxMessage{email})

			assert.False(t, report.Emailed)
			assert.Equal(t, 1, report.Failed)
		})
	}
}

func TestOutboxService_Deliver_MarkErrorsAreLogged(t *testing.T) {
	svc, repo, mailer, social := newOutboxService(t)

	email := emailMessage(t, 0)
	post := socialMessage(t)

	mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().MarkSent(mock.Anything, email.ID).Return(errors.New("db down"))
	social.EXPECT().Share(mock.Anything, mock.Anything).Return(nil, errors.New("telegram: 502"))
	repo.EXPECT().MarkFailed(mock.Anything, post.ID, domain.OutboxPending, mock.Anything, mock.Anything).Return(errors.New("db down"))

	report := svc.Deliver(context.Background(), []domain.OutboxMessage{email, post})

	assert.True(t, report.Emailed)
	assert.Empty(t, report.Platforms)
	assert.Equal(t, 1, report.Failed)
}

func TestOutboxService_Deliver_BadPayload(t *testing.T) {
	svc, repo, _, _ := newOutboxService(t)

	broken := emailMessage(t, 0)
	broken.Payload = []byte("{")
	repo.EXPECT().MarkFailed(mock.Anything, broken.ID, domain.OutboxPending, mock.Anything, mock.Anything).Return(nil)

	report := svc.Deliver(context.Background(), []domain.OutboxMessage{broken})

	assert.Equal(t, 1, report.Failed)
}

func TestOutboxService_ProcessDue(t *testing.T) {
	svc, repo, mailer, _ := newOutboxService(t)

	ok := emailMessage(t, 1)
	bad := emailMessage(t, 1)
	bad.Payload = []byte("{")

	repo.EXPECT().Claim(mock.Anything, 20, time.Minute).Return([]domain.OutboxMessage{ok, bad}, nil)
	mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().MarkSent(mock.Anything, ok.ID).Return(nil)
	repo.EXPECT().MarkFailed(mock.Anything, bad.ID, domain.OutboxPending, mock.Anything, mock.Anything).Return(nil)

	n, err := svc.ProcessDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOutboxService_ProcessDue_NothingDue(t *testing.T) {
	svc, repo, _, _ := newOutboxService(t)

	repo.EXPECT().Claim(mock.Anything, 20, time.Minute).Return(nil, nil)

	n, err := svc.ProcessDue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOutboxService_ProcessDue_ClaimError(t *testing.T) {
	svc, repo, _, _ := newOutboxService(t)

	repo.EXPECT().Claim(mock.Anything, 20, time.Minute).Return(nil, errors.New("db down"))

	_, err := svc.ProcessDue(context.Background())

	assert.Error(t, err)
}

func TestOutboxService_BackoffIsCapped(t *testing.T) {
	svc, _, _, _ := newOutboxService(t)

	assert.Equal(t, 30*time.Second, svc.backoff(1))
	assert.Equal(t, 4*time.Minute, svc.backoff(4))
	assert.Equal(t, time.Hour, svc.backoff(20))
}
