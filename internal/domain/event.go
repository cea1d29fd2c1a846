package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryMode string

const (
	ModeOnline   DeliveryMode = "online"
	ModeInPerson DeliveryMode = "in-person"
	ModeHybrid   DeliveryMode = "hybrid"
)

type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
)

type PackageType string

const (
	PackageBasic    PackageType = "basic"
	PackagePremium  PackageType = "premium"
	PackageExtended PackageType = "extended"
)

// Featured reports whether the tier buys a featured placement.
func (p PackageType) Featured() bool {
	return p == PackagePremium || p == PackageExtended
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// State is the moderation state derived from the approval and payment axes.
type State string

const (
	StatePendingPayment   State = "pending_payment"
	StatePaymentFailed    State = "payment_failed"
	StateAwaitingApproval State = "awaiting_approval"
	StateApproved         State = "approved"
	StateRejected         State = "rejected"
)

type Event struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	OrganizerName    string          `json:"organizer_name"`
	OrganizerEmail   string          `json:"organizer_email"`
	OrganizerPhone   string          `json:"organizer_phone"`
	Website          *string         `json:"website,omitempty"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	Location         string          `json:"location"`
	Mode             DeliveryMode    `json:"mode"`
	Price            decimal.Decimal `json:"price"`
	Currency         Currency        `json:"currency"`
	PackageType      PackageType     `json:"package_type"`
	Approved         bool            `json:"approved"`
	Featured         bool            `json:"featured"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	PaymentReference string          `json:"payment_reference"`
	RejectionReason  *string         `json:"rejection_reason,omitempty"`
	RejectedAt       *time.Time      `json:"rejected_at,omitempty"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (e *Event) State() State {
	switch {
	case e.Approved:
		return StateApproved
	case e.RejectedAt != nil:
		return StateRejected
	case e.PaymentStatus == PaymentPaid:
		return StateAwaitingApproval
	case e.PaymentStatus == PaymentFailed:
		return StatePaymentFailed
	default:
		return StatePendingPayment
	}
}

// IsPublic reports whether the event may appear in public listings at now.
func (e *Event) IsPublic(now time.Time) bool {
	return e.Approved && !e.EndDate.Before(now)
}

// Shareable reports whether the event may be posted to social platforms.
func (e *Event) Shareable() bool {
	return e.Approved && e.Featured
}

type SubmitEventInput struct {
	Title          string          `validate:"required,max=200"`
	Description    string          `validate:"required"`
	OrganizerName  string          `validate:"required,max=120"`
	OrganizerEmail string          `validate:"required,email"`
	OrganizerPhone string          `validate:"required,max=32"`
	Website        *string         `validate:"omitempty,url"`
	StartDate      time.Time       `validate:"required"`
	EndDate        time.Time       `validate:"required,gtefield=StartDate"`
	Location       string          `validate:"required"`
	Mode           DeliveryMode    `validate:"required,oneof=online in-person hybrid"`
	Price          decimal.Decimal `validate:"-"`
	Currency       Currency        `validate:"required,oneof=NGN USD"`
	PackageType    PackageType     `validate:"required,oneof=basic premium extended"`
}

type SubmitResult struct {
	EventID    string `json:"event_id"`
	Reference  string `json:"reference"`
	PaymentURL string `json:"payment_url"`
	Notified   bool   `json:"notified"`
}
