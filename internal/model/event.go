package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	CreatedBy     uuid.UUID  `json:"created_by" db:"created_by"`
	Title         string     `json:"title" db:"title"`
	Description   *string    `json:"description,omitempty" db:"description"`
	Location      *string    `json:"location,omitempty" db:"location"`
	StartDate     time.Time  `json:"start_date" db:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty" db:"end_date"`
	CoverImageURL *string    `json:"cover_image_url,omitempty" db:"cover_image_url"`
	MediaURLs     []string   `json:"media_urls" db:"media_urls"`
	MaxAttendees  *int       `json:"max_attendees,omitempty" db:"max_attendees"`
	IsPublished   bool       `json:"is_published" db:"is_published"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`

	TicketTypes []*TicketType `json:"ticket_types,omitempty" db:"-"`
}

// IsOwnedBy 檢查活動是否屬於該使用者
func (e *Event) IsOwnedBy(userID uuid.UUID) bool {
	return e.CreatedBy == userID
}

// EventDraft 建立活動時由使用者填寫、尚未寫入資料庫的欄位
// StartDate / EndDate 保留原始字串，於驗證階段解析
type EventDraft struct {
	Title        string
	Description  *string
	StartDate    string
	EndDate      string
	Location     *string
	MaxAttendees *int
	IsPublished  *bool
	// FormErrors 表單型別轉換失敗的欄位，與內容規則一併回報
	FormErrors map[string]string
}

type UpdateEventParams struct {
	Title         *string
	Description   *string
	Location      *string
	StartDate     *time.Time
	EndDate       *time.Time
	MaxAttendees  *int
	IsPublished   *bool
	CoverImageURL *string
	MediaURLs     *[]string
}

// IsEmpty 沒有任何欄位需要更新
func (p UpdateEventParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Location == nil &&
		p.StartDate == nil && p.EndDate == nil && p.MaxAttendees == nil &&
		p.IsPublished == nil && p.CoverImageURL == nil && p.MediaURLs == nil
}
