package model

import (
	"time"

	"github.com/google/uuid"
)

// TicketType 活動底下的票種；Quantity 為 nil 代表不限量
type TicketType struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	EventID     uuid.UUID  `json:"event_id" db:"event_id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description,omitempty" db:"description"`
	Price       float64    `json:"price" db:"price"`
	Quantity    *int       `json:"quantity,omitempty" db:"quantity"`
	Remaining   *int       `json:"remaining,omitempty" db:"remaining"`
	EndSaleDate *time.Time `json:"end_sale_date,omitempty" db:"end_sale_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// IsUnlimited 檢查票種是否不限量
func (t *TicketType) IsUnlimited() bool {
	return t.Quantity == nil
}

// SaleEnded 檢查在 now 時是否已停止販售
func (t *TicketType) SaleEnded(now time.Time) bool {
	return t.EndSaleDate != nil && !now.Before(*t.EndSaleDate)
}

// TicketTypeDraft 建立活動精靈中的票種設定
type TicketTypeDraft struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity,omitempty"`
	EndSaleDate string   `json:"end_sale_date,omitempty"`
}
