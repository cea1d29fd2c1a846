package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/gateway"
	"github.com/Onahi7/portfolio-sub000/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const maxWebhookBody = 1 << 20

type SubmissionSvc interface {
	Submit(ctx context.Context, input domain.SubmitEventInput) (*domain.SubmitResult, error)
}

type PaymentSvc interface {
	InitPayment(ctx context.Context, input domain.PaymentInitInput) (string, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) (*domain.WebhookResult, error)
}

type ModerationSvc interface {
	Approve(ctx context.Context, id string) (*domain.ModerationResult, error)
	Reject(ctx context.Context, id, reason string) (*domain.ModerationResult, error)
	Delete(ctx context.Context, id string) (*domain.ModerationResult, error)
	Share(ctx context.Context, id string) (*domain.ModerationResult, error)
}

type ListingSvc interface {
	List(ctx context.Context, showAll bool) ([]*domain.Event, error)
	ListFrontend(ctx context.Context) ([]*domain.Event, error)
	GetPublic(ctx context.Context, id string) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}

type AnalyticsSvc interface {
	RecordView(ctx context.Context, eventID string, meta domain.VisitMeta) error
	RecordClick(ctx context.Context, eventID string, target domain.ClickTarget, meta domain.VisitMeta) error
	Summary(ctx context.Context, eventID string) (*domain.EventSummary, error)
	TopByViews(ctx context.Context, limit int) ([]*domain.EventRank, error)
	RecentActions(ctx context.Context, limit int) ([]*domain.AdminAction, error)
}

type Handler struct {
	submissions SubmissionSvc
	payments    PaymentSvc
	moderation  ModerationSvc
	listings    ListingSvc
	analytics   AnalyticsSvc
}

func NewHandler(
	submissions SubmissionSvc,
	payments PaymentSvc,
	moderation ModerationSvc,
	listings ListingSvc,
	analytics AnalyticsSvc,
) *Handler {
	return &Handler{
		submissions: submissions,
		payments:    payments,
		moderation:  moderation,
		listings:    listings,
		analytics:   analytics,
	}
}

// Public

func (h *Handler) SubmitEvent(c *ginext.Context) {
	var req dto.SubmitEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid start_date format, expected RFC3339"))
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid end_date format, expected RFC3339"))
		return
	}

	input := domain.SubmitEventInput{
		Title:          req.Title,
		Description:    req.Description,
		OrganizerName:  req.OrganizerName,
		OrganizerEmail: req.OrganizerEmail,
		OrganizerPhone: req.OrganizerPhone,
		Website:        req.Website,
		StartDate:      start,
		EndDate:        end,
		Location:       req.Location,
		Mode:           domain.DeliveryMode(req.Mode),
		Price:          req.Price,
		Currency:       domain.Currency(req.Currency),
		PackageType:    domain.PackageType(req.PackageType),
	}

	res, err := h.submissions.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitResponse{
		Success:    true,
		EventID:    res.EventID,
		Reference:  res.Reference,
		PaymentURL: res.PaymentURL,
		Notified:   res.Notified,
	})
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.listings.List(c.Request.Context(), false)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventsResponse(events, false))
}

func (h *Handler) ListFrontendEvents(c *ginext.Context) {
	events, err := h.listings.ListFrontend(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventsResponse(events, false))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.listings.GetPublic(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventEnvelope{Success: true, Event: dto.ToEventResponse(event, false)})
}

func (h *Handler) RecordView(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.analytics.RecordView(c.Request.Context(), id, visitMeta(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{Success: true})
}

func (h *Handler) RecordClick(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	err := h.analytics.RecordClick(c.Request.Context(), id, domain.ClickTarget(req.Target), visitMeta(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{Success: true})
}

// Payments

func (h *Handler) InitPayment(c *ginext.Context) {
	var q dto.PaymentInitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	url, err := h.payments.InitPayment(c.Request.Context(), domain.PaymentInitInput{
		Reference: q.Reference,
		Amount:    q.Amount,
		Email:     q.Email,
		EventID:   q.EventID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, url)
}

func (h *Handler) PaymentWebhook(c *ginext.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("unreadable request body"))
		return
	}

	res, err := h.payments.HandleWebhook(c.Request.Context(), body, c.GetHeader(gateway.SignatureHeader))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{Success: true, Applied: res.Applied, Notified: res.Notified})
}

// Admin

func (h *Handler) AdminListEvents(c *ginext.Context) {
	showAll := false
	if raw := c.Query("show_all"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("show_all must be a boolean"))
			return
		}
		showAll = v
	}

	events, err := h.listings.List(c.Request.Context(), showAll)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventsResponse(events, true))
}

func (h *Handler) AdminGetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.listings.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventEnvelope{Success: true, Event: dto.ToEventResponse(event, true)})
}

func (h *Handler) ApproveEvent(c *ginext.Context) {
	h.moderate(c, h.moderation.Approve)
}

func (h *Handler) RejectEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.RejectRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
			return
		}
	}

	res, err := h.moderation.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModerationResponse(res))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	h.moderate(c, h.moderation.Delete)
}

func (h *Handler) ShareEvent(c *ginext.Context) {
	h.moderate(c, h.moderation.Share)
}

func (h *Handler) moderate(c *ginext.Context, action func(ctx context.Context, id string) (*domain.ModerationResult, error)) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	res, err := action(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModerationResponse(res))
}

func (h *Handler) EventAnalytics(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	summary, err := h.analytics.Summary(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(summary))
}

func (h *Handler) TopEvents(c *ginext.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	ranks, err := h.analytics.TopByViews(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTopEventsResponse(ranks))
}

func (h *Handler) RecentActions(c *ginext.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	actions, err := h.analytics.RecentActions(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActionsResponse(actions))
}

func eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid event id"))
		return "", false
	}
	return id, true
}

// queryLimit reads ?limit=; zero lets the service pick its default.
func queryLimit(c *ginext.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("limit must be an integer"))
		return 0, false
	}
	return limit, true
}

func visitMeta(c *ginext.Context) domain.VisitMeta {
	return domain.VisitMeta{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referer:   c.Request.Referer(),
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	for _, known := range []struct {
		err    error
		status int
	}{
		{domain.ErrEventNotFound, http.StatusNotFound},
		{domain.ErrPaymentNotFound, http.StatusNotFound},
		{domain.ErrShareNotAllowed, http.StatusConflict},
		{domain.ErrNotPaid, http.StatusConflict},
		{domain.ErrInvalidSignature, http.StatusUnauthorized},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
	} {
		if errors.Is(err, known.err) {
			c.JSON(known.status, dto.Fail(known.err.Error()))
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrUpstream):
		c.JSON(http.StatusBadGateway, dto.Fail(err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error"))
	}
}
