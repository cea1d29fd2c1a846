package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("Event not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

var (
	ErrShareNotAllowed = errors.New("Only approved featured events can be shared.")
	ErrNotPaid         = errors.New("Only paid events can be approved.")
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrDuplicateReference = errors.New("payment reference already exists")
)

var (
	ErrValidation = errors.New("validation error")
	ErrUpstream   = errors.New("upstream service failed")
)
