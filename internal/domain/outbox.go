package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OutboxKind string

const (
	OutboxEmail  OutboxKind = "email"
	OutboxSocial OutboxKind = "social"
)

type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxFailed  OutboxStatus = "failed"
)

type EmailTemplate string

const (
	EmailSubmission          EmailTemplate = "submission"
	EmailApproval            EmailTemplate = "approval"
	EmailRejection           EmailTemplate = "rejection"
	EmailPaymentConfirmation EmailTemplate = "payment_confirmation"
)

type OutboxMessage struct {
	ID            string          `json:"id"`
	Kind          OutboxKind      `json:"kind"`
	Topic         string          `json:"topic"`
	Payload       json.RawMessage `json:"payload"`
	Status        OutboxStatus    `json:"status"`
	Attempts      int             `json:"attempts"`
	LastError     *string         `json:"last_error,omitempty"`
	NextAttemptAt time.Time       `json:"next_attempt_at"`
	CreatedAt     time.Time       `json:"created_at"`
	SentAt        *time.Time      `json:"sent_at,omitempty"`
}

// EmailPayload is the outbox body of an email message.
type EmailPayload struct {
	Template EmailTemplate     `json:"template"`
	To       string            `json:"to"`
	Data     map[string]string `json:"data"`
}

// SocialPayload is the outbox body of a social share message.
type SocialPayload struct {
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Mode      string    `json:"mode"`
	StartDate time.Time `json:"start_date"`
	URL       string    `json:"url"`
}

// NewEmailMessage builds a pending email message due after lease.
func NewEmailMessage(p EmailPayload, lease time.Duration) (OutboxMessage, error) {
	return newOutboxMessage(OutboxEmail, string(p.Template), p, lease)
}

// NewSocialMessage builds a pending social share message due after lease.
func NewSocialMessage(p SocialPayload, lease time.Duration) (OutboxMessage, error) {
	return newOutboxMessage(OutboxSocial, "event_share", p, lease)
}

func newOutboxMessage(kind OutboxKind, topic string, payload any, lease time.Duration) (OutboxMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return OutboxMessage{}, err
	}
	now := time.Now().UTC()
	return OutboxMessage{
		ID:            uuid.New().String(),
		Kind:          kind,
		Topic:         topic,
		Payload:       raw,
		Status:        OutboxPending,
		NextAttemptAt: now.Add(lease),
		CreatedAt:     now,
	}, nil
}

// DeliveryReport is the outcome of delivering a batch of outbox messages.
type DeliveryReport struct {
	Emailed   bool
	Platforms []string
	Failed    int
}
