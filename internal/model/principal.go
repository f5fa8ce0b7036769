package model

import "github.com/google/uuid"

// Principal 已登入的使用者
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email,omitempty"`
	Role  string    `json:"role"`
}
