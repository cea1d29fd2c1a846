package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRecordStatus string

const (
	PaymentRecordPending    PaymentRecordStatus = "pending"
	PaymentRecordSuccessful PaymentRecordStatus = "successful"
	PaymentRecordFailed     PaymentRecordStatus = "failed"
)

// RelatedType names the entity a payment settles.
type RelatedType string

const (
	RelatedEvent  RelatedType = "event"
	RelatedCourse RelatedType = "course"
)

type Payment struct {
	ID              string              `json:"id"`
	Reference       string              `json:"reference"`
	RelatedType     RelatedType         `json:"related_type"`
	RelatedID       string              `json:"related_id"`
	Email           string              `json:"email"`
	Amount          decimal.Decimal     `json:"amount"`
	Currency        Currency            `json:"currency"`
	Status          PaymentRecordStatus `json:"status"`
	GatewayResponse json.RawMessage     `json:"gateway_response,omitempty"`
	PaidAt          *time.Time          `json:"paid_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// Gateway webhook event types.
const (
	GatewayChargeSuccess = "charge.success"
	GatewayChargeFailed  = "charge.failed"
)

type GatewayPayload struct {
	Event string      `json:"event"`
	Data  GatewayData `json:"data"`
}

type GatewayData struct {
	Reference string          `json:"reference"`
	Channel   string          `json:"channel"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	PaidAt    *time.Time      `json:"paid_at"`
	Customer  json.RawMessage `json:"customer,omitempty"`
}

// Settlement is the change a webhook applies to a locked payment row.
// A nil Settlement leaves the row untouched.
type Settlement struct {
	Status          PaymentRecordStatus
	RelatedStatus   PaymentStatus
	GatewayResponse json.RawMessage
	PaidAt          *time.Time
	Outbox          []OutboxMessage
	// RelatedMissing is set by the store when the event or enrollment the
	// payment belongs to no longer exists. Outbox is then not written.
	RelatedMissing bool
}

type WebhookResult struct {
	Event     string              `json:"event"`
	Reference string              `json:"reference,omitempty"`
	Status    PaymentRecordStatus `json:"status,omitempty"`
	Applied   bool                `json:"applied"`
	Notified  bool                `json:"notified"`
	Orphaned  bool                `json:"orphaned,omitempty"`
}

type PaymentInitInput struct {
	Reference string `validate:"required"`
	Amount    string `validate:"required"`
	Email     string `validate:"required,email"`
	EventID   string `validate:"required"`
}
