package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ticketee/internal/model"
)

const minTextLength = 3

// 依序嘗試；不含時區的格式以 UTC 解析
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var errUnparseable = errors.New("unparseable timestamp")

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errUnparseable
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// optionalText 空白字串視為未填
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ValidateEventDraft 回傳待寫入的活動（尚未設定 owner）與欄位錯誤
func ValidateEventDraft(draft model.EventDraft, now time.Time) (*model.Event, map[string]string) {
	fields := make(map[string]string, len(draft.FormErrors))
	for field, message := range draft.FormErrors {
		fields[field] = message
	}

	switch n := trimmedLen(draft.Title); {
	case n == 0:
		fields["title"] = "Title is required"
	case n < minTextLength:
		fields["title"] = fmt.Sprintf("Title must be at least %d characters", minTextLength)
	}

	var start time.Time
	if strings.TrimSpace(draft.StartDate) == "" {
		fields["date"] = "Start date is required"
	} else if t, err := parseTimestamp(draft.StartDate); err != nil {
		fields["date"] = "Start date is invalid"
	} else if t.Before(now) {
		fields["date"] = "Start date cannot be in the past"
	} else {
		start = t
	}

	location := optionalText(draft.Location)
	if location != nil && trimmedLen(*location) < minTextLength {
		fields["location"] = fmt.Sprintf("Location must be at least %d characters", minTextLength)
	}

	var end *time.Time
	if strings.TrimSpace(draft.EndDate) != "" {
		t, err := parseTimestamp(draft.EndDate)
		switch {
		case err != nil:
			fields["end_date"] = "End date is invalid"
		case !start.IsZero() && t.Before(start):
			fields["end_date"] = "End date must be after the start date"
		default:
			end = &t
		}
	}

	if draft.MaxAttendees != nil && *draft.MaxAttendees < 1 {
		fields["capacity"] = "Capacity must be at least 1"
	}

	if len(fields) > 0 {
		return nil, fields
	}

	published := true
	if draft.IsPublished != nil {
		published = *draft.IsPublished
	}

	return &model.Event{
		Title:        strings.TrimSpace(draft.Title),
		Description:  optionalText(draft.Description),
		Location:     location,
		StartDate:    start,
		EndDate:      end,
		MediaURLs:    []string{},
		MaxAttendees: draft.MaxAttendees,
		IsPublished:  published,
	}, nil
}

// ValidateTicketDrafts 每個違規一行，以 1 起算的位置標示
func ValidateTicketDrafts(drafts []model.TicketTypeDraft, now time.Time) ([]*model.TicketType, []string) {
	var lines []string
	ticketTypes := make([]*model.TicketType, 0, len(drafts))

	for i, draft := range drafts {
		prefix := fmt.Sprintf("Ticket type #%d: ", i+1)
		before := len(lines)

		if strings.TrimSpace(draft.Name) == "" {
			lines = append(lines, prefix+"name is required")
		}
		switch {
		case draft.Price == nil:
			lines = append(lines, prefix+"price is required")
		case *draft.Price < 0:
			lines = append(lines, prefix+"price must be 0 or greater")
		}
		if draft.Quantity != nil && *draft.Quantity < 1 {
			lines = append(lines, prefix+"quantity must be at least 1")
		}

		var endSale *time.Time
		if strings.TrimSpace(draft.EndSaleDate) != "" {
			t, err := parseTimestamp(draft.EndSaleDate)
			switch {
			case err != nil:
				lines = append(lines, prefix+"sale end date is invalid")
			case !t.After(now):
				lines = append(lines, prefix+"sale end date must be in the future")
			default:
				endSale = &t
			}
		}

		if len(lines) > before {
			continue
		}
		ticketTypes = append(ticketTypes, &model.TicketType{
			Name:        strings.TrimSpace(draft.Name),
			Description: optionalText(draft.Description),
			Price:       *draft.Price,
			Quantity:    draft.Quantity,
			Remaining:   draft.Quantity,
			EndSaleDate: endSale,
		})
	}

	if len(lines) > 0 {
		return nil, lines
	}
	return ticketTypes, nil
}
