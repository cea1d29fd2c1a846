package dto

import (
	"encoding/json"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Fail(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type EventResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	OrganizerName    string  `json:"organizer_name"`
	OrganizerEmail   string  `json:"organizer_email"`
	OrganizerPhone   string  `json:"organizer_phone"`
	Website          *string `json:"website,omitempty"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Location         string  `json:"location"`
	Mode             string  `json:"mode"`
	Price            string  `json:"price"`
	Currency         string  `json:"currency"`
	PackageType      string  `json:"package_type"`
	Approved         bool    `json:"approved"`
	Featured         bool    `json:"featured"`
	PaymentStatus    string  `json:"payment_status"`
	State            string  `json:"state"`
	RejectionReason  *string `json:"rejection_reason,omitempty"`
	PaymentReference string  `json:"payment_reference,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type EventEnvelope struct {
	Success bool          `json:"success"`
	Event   EventResponse `json:"event"`
}

type EventsResponse struct {
	Success bool            `json:"success"`
	Events  []EventResponse `json:"events"`
}

type SubmitResponse struct {
	Success    bool   `json:"success"`
	EventID    string `json:"eventId"`
	Reference  string `json:"reference"`
	PaymentURL string `json:"paymentUrl"`
	Notified   bool   `json:"notified"`
}

type ModerationResponse struct {
	Success         bool     `json:"success"`
	EventID         string   `json:"event_id"`
	Approved        bool     `json:"approved"`
	AlreadyApproved bool     `json:"already_approved,omitempty"`
	AlreadyApplied  bool     `json:"already_applied,omitempty"`
	Notified        bool     `json:"notified"`
	Platforms       []string `json:"platforms,omitempty"`
	PendingEffects  int      `json:"pending_effects,omitempty"`
}

type WebhookResponse struct {
	Success  bool `json:"success"`
	Applied  bool `json:"applied"`
	Notified bool `json:"notified"`
}

type AnalyticsResponse struct {
	Success        bool             `json:"success"`
	EventID        string           `json:"event_id"`
	Views          int64            `json:"views"`
	Clicks         int64            `json:"clicks"`
	ClicksByTarget map[string]int64 `json:"clicks_by_target"`
}

type TopEventsResponse struct {
	Success bool               `json:"success"`
	Events  []domain.EventRank `json:"events"`
}

type ActionResponse struct {
	ID        int64          `json:"id"`
	Action    string         `json:"action"`
	EventID   *string        `json:"event_id,omitempty"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt string         `json:"created_at"`
}

type ActionsResponse struct {
	Success bool             `json:"success"`
	Actions []ActionResponse `json:"actions"`
}

// ToEventResponse renders an event. Admin views include the payment
// reference; public views omit it.
func ToEventResponse(e *domain.Event, admin bool) EventResponse {
	resp := EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		OrganizerName:  e.OrganizerName,
		OrganizerEmail: e.OrganizerEmail,
		OrganizerPhone: e.OrganizerPhone,
		Website:        e.Website,
		StartDate:      e.StartDate.Format(time.RFC3339),
		EndDate:        e.EndDate.Format(time.RFC3339),
		Location:       e.Location,
		Mode:           string(e.Mode),
		Price:          e.Price.StringFixed(2),
		Currency:       string(e.Currency),
		PackageType:    string(e.PackageType),
		Approved:       e.Approved,
		Featured:       e.Featured,
		PaymentStatus:  string(e.PaymentStatus),
		State:          string(e.State()),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
	if admin {
		resp.RejectionReason = e.RejectionReason
		resp.PaymentReference = e.PaymentReference
	}
	return resp
}

func ToEventsResponse(events []*domain.Event, admin bool) EventsResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventResponse(e, admin))
	}
	return EventsResponse{Success: true, Events: out}
}

func ToModerationResponse(r *domain.ModerationResult) ModerationResponse {
	return ModerationResponse{
		Success:         true,
		EventID:         r.EventID,
		Approved:        r.Approved,
		AlreadyApproved: r.Approved && r.AlreadyApplied,
		AlreadyApplied:  r.AlreadyApplied,
		Notified:        r.Notified,
		Platforms:       r.Platforms,
		PendingEffects:  r.PendingEffects,
	}
}

func ToAnalyticsResponse(s *domain.EventSummary) AnalyticsResponse {
	byTarget := make(map[string]int64, len(s.ClicksByTarget))
	for k, v := range s.ClicksByTarget {
		byTarget[string(k)] = v
	}
	return AnalyticsResponse{
		Success:        true,
		EventID:        s.EventID,
		Views:          s.Views,
		Clicks:         s.Clicks,
		ClicksByTarget: byTarget,
	}
}

func ToTopEventsResponse(ranks []*domain.EventRank) TopEventsResponse {
	out := make([]domain.EventRank, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, *r)
	}
	return TopEventsResponse{Success: true, Events: out}
}

func ToActionsResponse(actions []*domain.AdminAction) ActionsResponse {
	out := make([]ActionResponse, 0, len(actions))
	for _, a := range actions {
		var meta map[string]any
		_ = json.Unmarshal(a.Metadata, &meta)
		out = append(out, ActionResponse{
			ID:        a.ID,
			Action:    string(a.Action),
			EventID:   a.EventID,
			Metadata:  meta,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}
	return ActionsResponse{Success: true, Actions: out}
}
