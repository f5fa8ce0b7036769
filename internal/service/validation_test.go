package service

import (
	"testing"
	"time"

	"ticketee/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func strPtr(v string) *string     { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func validDraft() model.EventDraft {
	return model.EventDraft{
		Title:     "Spring Gala",
		StartDate: fixedNow.Add(24 * time.Hour).Format(time.RFC3339),
		Location:  strPtr("Main Hall"),
	}
}

func TestValidateEventDraft(t *testing.T) {
	t.Run("Success - normalises fields", func(t *testing.T) {
		draft := validDraft()
		draft.Title = "  Spring Gala  "
		draft.Description = strPtr("   ")
		draft.EndDate = "2026-05-02T23:00"
		draft.MaxAttendees = intPtr(100)

		event, fields := ValidateEventDraft(draft, fixedNow)

		require.Empty(t, fields)
		assert.Equal(t, "Spring Gala", event.Title)
		assert.Nil(t, event.Description)
		assert.Equal(t, "Main Hall", *event.Location)
		assert.Equal(t, fixedNow.Add(24*time.Hour), event.StartDate)
		assert.Equal(t, time.Date(2026, 5, 2, 23, 0, 0, 0, time.UTC), *event.EndDate)
		assert.True(t, event.IsPublished)
		assert.Equal(t, []string{}, event.MediaURLs)
	})

	t.Run("Success - start exactly now is allowed", func(t *testing.T) {
		draft := validDraft()
		draft.StartDate = fixedNow.Format(time.RFC3339)
		draft.IsPublished = boolPtr(false)

		event, fields := ValidateEventDraft(draft, fixedNow)

		require.Empty(t, fields)
		assert.False(t, event.IsPublished)
	})

	t.Run("Success - empty location is absent", func(t *testing.T) {
		draft := validDraft()
		draft.Location = strPtr("")

		event, fields := ValidateEventDraft(draft, fixedNow)

		require.Empty(t, fields)
		assert.Nil(t, event.Location)
	})

	t.Run("Failed - form errors merged with field rules", func(t *testing.T) {
		draft := validDraft()
		draft.Title = "x"
		draft.FormErrors = map[string]string{"is_published": "Published must be true or false"}

		event, fields := ValidateEventDraft(draft, fixedNow)

		assert.Nil(t, event)
		assert.Equal(t, map[string]string{
			"title":        "Title must be at least 3 characters",
			"is_published": "Published must be true or false",
		}, fields)
	})

	tests := []struct {
		name  string
		edit  func(d *model.EventDraft)
		field string
		msg   string
	}{
		{"title missing", func(d *model.EventDraft) { d.Title = "" }, "title", "Title is required"},
		{"title too short after trim", func(d *model.EventDraft) { d.Title = "  ab  " }, "title", "Title must be at least 3 characters"},
		{"start missing", func(d *model.EventDraft) { d.StartDate = "" }, "date", "Start date is required"},
		{"start garbage", func(d *model.EventDraft) { d.StartDate = "next friday" }, "date", "Start date is invalid"},
		{"start in past", func(d *model.EventDraft) { d.StartDate = fixedNow.Add(-time.Minute).Format(time.RFC3339) }, "date", "Start date cannot be in the past"},
		{"location too short", func(d *model.EventDraft) { d.Location = strPtr(" HQ ") }, "location", "Location must be at least 3 characters"},
		{"end before start", func(d *model.EventDraft) { d.EndDate = fixedNow.Add(time.Hour).Format(time.RFC3339) }, "end_date", "End date must be after the start date"},
		{"end garbage", func(d *model.EventDraft) { d.EndDate = "soon" }, "end_date", "End date is invalid"},
		{"capacity zero", func(d *model.EventDraft) { d.MaxAttendees = intPtr(0) }, "capacity", "Capacity must be at least 1"},
		{"capacity not a number", func(d *model.EventDraft) {
			d.FormErrors = map[string]string{"capacity": "Capacity must be a whole number"}
		}, "capacity", "Capacity must be a whole number"},
	}
	for _, tt := range tests {
		t.Run("Failed - "+tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.edit(&draft)

			event, fields := ValidateEventDraft(draft, fixedNow)

			assert.Nil(t, event)
			assert.Equal(t, map[string]string{tt.field: tt.msg}, fields)
		})
	}
}

func TestValidateTicketDrafts(t *testing.T) {
	future := fixedNow.Add(48 * time.Hour).Format(time.RFC3339)

	t.Run("Success", func(t *testing.T) {
		drafts := []model.TicketTypeDraft{
			{Name: " GA ", Price: floatPtr(25), Quantity: intPtr(100)},
			{Name: "Free", Price: floatPtr(0), EndSaleDate: future},
		}

		ticketTypes, lines := ValidateTicketDrafts(drafts, fixedNow)

		require.Empty(t, lines)
		require.Len(t, ticketTypes, 2)
		assert.Equal(t, "GA", ticketTypes[0].Name)
		assert.Equal(t, 100, *ticketTypes[0].Remaining)
		assert.True(t, ticketTypes[1].IsUnlimited())
		assert.Equal(t, fixedNow.Add(48*time.Hour), *ticketTypes[1].EndSaleDate)
	})

	t.Run("Success - empty list", func(t *testing.T) {
		ticketTypes, lines := ValidateTicketDrafts(nil, fixedNow)
		assert.Empty(t, lines)
		assert.Empty(t, ticketTypes)
	})

	t.Run("Failed - second ticket negative price yields one line", func(t *testing.T) {
		drafts := []model.TicketTypeDraft{
			{Name: "GA", Price: floatPtr(25)},
			{Name: "VIP", Price: floatPtr(-5)},
		}

		ticketTypes, lines := ValidateTicketDrafts(drafts, fixedNow)

		assert.Nil(t, ticketTypes)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "Ticket type #2")
		assert.Equal(t, "Ticket type #2: price must be 0 or greater", lines[0])
	})

	t.Run("Failed - accumulates in order", func(t *testing.T) {
		drafts := []model.TicketTypeDraft{
			{Name: "", Price: nil},
			{Name: "OK", Price: floatPtr(1)},
			{Name: "Late", Price: floatPtr(1), Quantity: intPtr(0), EndSaleDate: fixedNow.Add(-time.Hour).Format(time.RFC3339)},
			{Name: "Bad date", Price: floatPtr(1), EndSaleDate: "tomorrow-ish"},
			{Name: "Now", Price: floatPtr(1), EndSaleDate: fixedNow.Format(time.RFC3339)},
		}

		_, lines := ValidateTicketDrafts(drafts, fixedNow)

		assert.Equal(t, []string{
			"Ticket type #1: name is required",
			"Ticket type #1: price is required",
			"Ticket type #3: quantity must be at least 1",
			"Ticket type #3: sale end date must be in the future",
			"Ticket type #4: sale end date is invalid",
			"Ticket type #5: sale end date must be in the future",
		}, lines)
	})
}

func TestParseTimestamp(t *testing.T) {
	for _, in := range []string{"2026-05-02T10:00:00Z", "2026-05-02T12:00:00+02:00", "2026-05-02T10:00:00", "2026-05-02T10:00"} {
		got, err := parseTimestamp(in)
		require.NoError(t, err, in)
		assert.Equal(t, time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC), got, in)
	}

	got, err := parseTimestamp("2026-05-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), got)

	_, err = parseTimestamp("05/02/2026")
	assert.Error(t, err)
}
