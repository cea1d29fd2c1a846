package dto

import "github.com/shopspring/decimal"

type SubmitEventRequest struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	OrganizerName  string          `json:"organizer_name" binding:"required"`
	OrganizerEmail string          `json:"organizer_email" binding:"required"`
	OrganizerPhone string          `json:"organizer_phone" binding:"required"`
	Website        *string         `json:"website"`
	StartDate      string          `json:"start_date" binding:"required"`
	EndDate        string          `json:"end_date" binding:"required"`
	Location       string          `json:"location" binding:"required"`
	Mode           string          `json:"mode" binding:"required"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency" binding:"required"`
	PackageType    string          `json:"package_type" binding:"required"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type ClickRequest struct {
	Target string `json:"target" binding:"required"`
}

// PaymentInitQuery is the query string of the payment redirect.
type PaymentInitQuery struct {
	Reference string `form:"reference"`
	Amount    string `form:"amount"`
	Email     string `form:"email"`
	EventID   string `form:"event_id"`
}
