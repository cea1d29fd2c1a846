package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(t *testing.T) (*AnalyticsService, *mocks.MockAnalyticsRepo, *mocks.MockEventRepo) {
	t.Helper()
	repo := mocks.NewMockAnalyticsRepo(t)
	events := mocks.NewMockEventRepo(t)
	return NewAnalyticsService(repo, events, newTestLogger(t)), repo, events
}

var testVisit = domain.VisitMeta{IP: "10.0.0.1", UserAgent: "curl/8", Referer: "https://example.com"}

func TestAnalyticsService_RecordView(t *testing.T) {
	svc, repo, _ := newAnalyticsService(t)

	repo.EXPECT().InsertView(mock.Anything, mock.MatchedBy(func(v *domain.EventView) bool {
		return v.EventID == "e1" && v.IP == "10.0.0.1" && v.UserAgent == "curl/8" && v.Referer == "https://example.com"
	})).Return(nil)

	require.NoError(t, svc.RecordView(context.Background(), "e1", testVisit))
}

func TestAnalyticsService_RecordView_UnknownEvent(t *testing.T) {
	svc, repo, _ := newAnalyticsService(t)

	repo.EXPECT().InsertView(mock.Anything, mock.Anything).Return(domain.ErrEventNotFound)

	err := svc.RecordView(context.Background(), "missing", testVisit)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestAnalyticsService_RecordClick(t *testing.T) {
	svc, repo, _ := newAnalyticsService(t)

	repo.EXPECT().InsertClick(mock.Anything, mock.MatchedBy(func(c *domain.EventClick) bool {
		return c.EventID == "e1" && c.Target == domain.ClickRegister && c.IP == "10.0.0.1"
	})).Return(nil)

	require.NoError(t, svc.RecordClick(context.Background(), "e1", domain.ClickRegister, testVisit))
}

func TestAnalyticsService_RecordClick_InvalidTarget(t *testing.T) {
	svc, _, _ := newAnalyticsService(t)

	err := svc.RecordClick(context.Background(), "e1", domain.ClickTarget("twitter"), testVisit)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAnalyticsService_Summary(t *testing.T) {
	svc, repo, events := newAnalyticsService(t)

	want := &domain.EventSummary{
		EventID:        "e1",
		Views:          12,
		Clicks:         3,
		ClicksByTarget: map[domain.ClickTarget]int64{domain.ClickEmail: 1, domain.ClickRegister: 2},
	}
	events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	repo.EXPECT().Summary(mock.Anything, "e1").Return(want, nil)

	got, err := svc.Summary(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAnalyticsService_Summary_NotFound(t *testing.T) {
	svc, _, events := newAnalyticsService(t)

	events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Summary(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestAnalyticsService_LimitsAreClamped(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 10},
		{-5, 10},
		{25, 25},
		{100, 100},
		{1000, 100},
	}

	for _, tt := range tests {
		svc, repo, _ := newAnalyticsService(t)

		repo.EXPECT().TopByViews(mock.Anything, tt.want).Return([]*domain.EventRank{}, nil).Once()
		repo.EXPECT().RecentActions(mock.Anything, tt.want).Return([]*domain.AdminAction{}, nil).Once()

		_, err := svc.TopByViews(context.Background(), tt.in)
		require.NoError(t, err)
		_, err = svc.RecentActions(context.Background(), tt.in)
		require.NoError(t, err)
	}
}

func TestAnalyticsService_TopByViews_Error(t *testing.T) {
	svc, repo, _ := newAnalyticsService(t)

	repo.EXPECT().TopByViews(mock.Anything, 10).Return(nil, errors.New("db down"))

	_, err := svc.TopByViews(context.Background(), 0)

	assert.Error(t, err)
}
