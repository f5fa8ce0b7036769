package handler

import (
	"net/http"

	"ticketee/internal/model"
	"ticketee/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events/:id/ticket-types", h.ListTicketTypes)
		router.POST("events/:id/ticket-types", h.CreateTicketType)
		router.POST("ticket-types/:id/purchase", h.Purchase)
		router.GET("tickets", h.ListMine)
		router.PUT("tickets/:id/cancel", h.Cancel)
	}
}

// CreateTicketTypeRequest 新增票種請求
type CreateTicketTypeRequest struct {
	Name        string   `json:"name" binding:"required,notblank"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Quantity    *int     `json:"quantity"`
	EndSaleDate string   `json:"end_sale_date"`
}

func (h *TicketHandler) ListTicketTypes(c *gin.Context) {
	eventID, ok := BindID(c)
	if !ok {
		return
	}
	ticketTypes, err := h.service.ListTicketTypes(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err, "ListTicketTypes")
		return
	}
	handleSuccess(c, ticketTypes, http.StatusOK)
}

func (h *TicketHandler) CreateTicketType(c *gin.Context) {
	eventID, ok := BindID(c)
	if !ok {
		return
	}
	var req CreateTicketTypeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.CreateTicketType(c.Request.Context(), eventID, model.TicketTypeDraft{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		EndSaleDate: req.EndSaleDate,
	})
	if err != nil {
		handleError(c, err, "CreateTicketType")
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

// Purchase body 可省略，預設購買一張
func (h *TicketHandler) Purchase(c *gin.Context) {
	ticketTypeID, ok := BindID(c)
	if !ok {
		return
	}
	req := model.PurchaseTicketRequest{Quantity: 1}
	if c.Request.ContentLength != 0 {
		if err := BindJson(c, &req); err != nil {
			return
		}
	}
	ticket, err := h.service.Purchase(c.Request.Context(), ticketTypeID, req.Quantity)
	if err != nil {
		handleError(c, err, "PurchaseTicket")
		return
	}
	handleSuccess(c, ticket, http.StatusAccepted)
}

func (h *TicketHandler) ListMine(c *gin.Context) {
	tickets, err := h.service.ListMine(c.Request.Context())
	if err != nil {
		handleError(c, err, "ListTickets")
		return
	}
	handleSuccess(c, tickets, http.StatusOK)
}

func (h *TicketHandler) Cancel(c *gin.Context) {
	ticketID, ok := BindID(c)
	if !ok {
		return
	}
	ticket, err := h.service.Cancel(c.Request.Context(), ticketID)
	if err != nil {
		handleError(c, err, "CancelTicket")
		return
	}
	handleSuccess(c, ticket, http.StatusOK)
}
