package apperrors

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrTicketTypeNotFound  = errors.New("ticket type not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrExceedsMaxPerUser   = errors.New("exceeds max tickets per user")
	ErrSaleEnded           = errors.New("ticket sale has ended")
	ErrSalesNotOpen        = errors.New("ticket sales are not open")
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrInternalServerError = errors.New("internal server error")
)
