package model

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus 票券狀態類型
type TicketStatus string

const (
	TicketStatusReserved  TicketStatus = "reserved"
	TicketStatusConfirmed TicketStatus = "confirmed"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// IsValid 驗證狀態是否有效
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusReserved, TicketStatusConfirmed, TicketStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	transitions := map[TicketStatus][]TicketStatus{
		TicketStatusReserved:  {TicketStatusConfirmed, TicketStatusCancelled},
		TicketStatusConfirmed: {TicketStatusCancelled},
		TicketStatusCancelled: {},
	}

	for _, status := range transitions[s] {
		if status == target {
			return true
		}
	}
	return false
}

// Ticket 使用者購買的票券
type Ticket struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	EventID      uuid.UUID    `json:"event_id" db:"event_id"`
	TicketTypeID uuid.UUID    `json:"ticket_type_id" db:"ticket_type_id"`
	UserID       uuid.UUID    `json:"user_id" db:"user_id"`
	Quantity     int          `json:"quantity" db:"quantity"`
	AmountPaid   float64      `json:"amount_paid" db:"amount_paid"`
	Status       TicketStatus `json:"status" db:"status"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// PurchaseTicketRequest 購票請求
type PurchaseTicketRequest struct {
	Quantity int `json:"quantity" binding:"omitempty,min=1,max=20"`
}
