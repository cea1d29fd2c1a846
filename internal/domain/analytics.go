package domain

import (
	"encoding/json"
	"time"
)

type ClickTarget string

const (
	ClickEmail    ClickTarget = "email"
	ClickPhone    ClickTarget = "phone"
	ClickWebsite  ClickTarget = "website"
	ClickRegister ClickTarget = "register"
)

func (t ClickTarget) Valid() bool {
	switch t {
	case ClickEmail, ClickPhone, ClickWebsite, ClickRegister:
		return true
	}
	return false
}

// VisitMeta is the request context captured with every view or click.
type VisitMeta struct {
	IP        string
	UserAgent string
	Referer   string
}

type EventView struct {
	ID        int64     `json:"id"`
	EventID   string    `json:"event_id"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Referer   string    `json:"referer"`
	CreatedAt time.Time `json:"created_at"`
}

type EventClick struct {
	ID        int64       `json:"id"`
	EventID   string      `json:"event_id"`
	Target    ClickTarget `json:"target"`
	IP        string      `json:"ip"`
	UserAgent string      `json:"user_agent"`
	Referer   string      `json:"referer"`
	CreatedAt time.Time   `json:"created_at"`
}

type AdminActionType string

const (
	ActionEventSubmitted AdminActionType = "event_submitted"
	ActionEventApproved  AdminActionType = "event_approved"
	ActionEventRejected  AdminActionType = "event_rejected"
	ActionEventDeleted   AdminActionType = "event_deleted"
	ActionEventShared    AdminActionType = "event_shared"
)

type AdminAction struct {
	ID        int64           `json:"id"`
	Action    AdminActionType `json:"action"`
	EventID   *string         `json:"event_id,omitempty"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewAdminAction marshals metadata into an audit entry for eventID.
func NewAdminAction(action AdminActionType, eventID string, metadata any) (*AdminAction, error) {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, err
	}
	a := &AdminAction{
		Action:    action,
		Metadata:  raw,
		CreatedAt: time.Now().UTC(),
	}
	if eventID != "" {
		a.EventID = &eventID
	}
	return a, nil
}

type EventSummary struct {
	EventID        string                `json:"event_id"`
	Views          int64                 `json:"views"`
	Clicks         int64                 `json:"clicks"`
	ClicksByTarget map[ClickTarget]int64 `json:"clicks_by_target"`
}

type EventRank struct {
	EventID string `json:"event_id"`
	Title   string `json:"title"`
	Views   int64  `json:"views"`
}
