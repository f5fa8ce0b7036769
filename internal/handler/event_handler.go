package handler

import (
	"net/http"
	"time"

	"ticketee/internal/model"
	"ticketee/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:id", h.GetByID)
		router.PUT("events/:id", h.Update)
		router.DELETE("events/:id", h.Delete)
		router.POST("events/:id/open", h.OpenForSale)
	}
}

// ListEventsQuery published_only 預設為 true
type ListEventsQuery struct {
	PublishedOnly *bool `form:"published_only"`
}

// UpdateEventRequest 更新活動請求，至少需要一個欄位
type UpdateEventRequest struct {
	Title        *string    `json:"title" binding:"omitempty,notblank"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	MaxAttendees *int       `json:"max_attendees" binding:"omitempty,min=1"`
	IsPublished  *bool      `json:"is_published"`
}

func (r UpdateEventRequest) params() model.UpdateEventParams {
	return model.UpdateEventParams{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		MaxAttendees: r.MaxAttendees,
		IsPublished:  r.IsPublished,
	}
}

func (h *EventHandler) List(c *gin.Context) {
	var query ListEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	publishedOnly := query.PublishedOnly == nil || *query.PublishedOnly

	events, err := h.service.List(c.Request.Context(), publishedOnly)
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}
	handleSuccess(c, events, http.StatusOK)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	event, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "GetEvent")
		return
	}
	handleSuccess(c, event, http.StatusOK)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := req.params()
	if params.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, params)
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}
	handleSuccess(c, updated, http.StatusOK)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "DeleteEvent")
		return
	}
	handleSuccess(c, nil, http.StatusNoContent)
}

func (h *EventHandler) OpenForSale(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	if err := h.service.OpenForSale(c.Request.Context(), id); err != nil {
		handleError(c, err, "OpenForSale")
		return
	}
	handleSuccess(c, nil, http.StatusOK)
}
