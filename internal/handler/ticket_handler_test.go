package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketee/internal/handler"
	"ticketee/internal/model"
	"ticketee/internal/service/mocks"
	apperrors "ticketee/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTicketTestRouter(t *testing.T, mockService *mocks.MockTicketService) *gin.Engine {
	router := newTestRouter(t)
	handler.NewTicketHandler(mockService).RegisterRoutes(router)
	return router
}

func TestCreateTicketType(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(t, mockService)
		eventID := uuid.New()

		mockService.EXPECT().CreateTicketType(mock.Anything, eventID, mock.MatchedBy(func(d model.TicketTypeDraft) bool {
			return d.Name == "Early Bird" && *d.Price == 15 && *d.Quantity == 50
		})).Return(&model.TicketType{ID: uuid.New(), EventID: eventID, Name: "Early Bird"}, nil).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events/"+eventID.String()+"/ticket-types", map[string]interface{}{
			"name": "Early Bird", "price": 15, "quantity": 50,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - blank name", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(t, mockService)

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events/"+uuid.NewString()+"/ticket-types", map[string]interface{}{
			"name": "  ", "price": 15,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - ErrInvalidInput", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(t, mockService)

		mockService.EXPECT().CreateTicketType(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrInvalidInput).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events/"+uuid.NewString()+"/ticket-types", map[string]interface{}{
			"name": "GA", "price": -1,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListTicketTypes(t *testing.T) {
	mockService := mocks.NewMockTicketService(t)
	router := setupTicketTestRouter(t, mockService)
	eventID := uuid.New()

	mockService.EXPECT().ListTicketTypes(mock.Anything, eventID).Return([]*model.TicketType{{Name: "GA"}}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/"+eventID.String()+"/ticket-types", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPurchaseTicket(t *testing.T) {
	t.Run("Success - no body buys one", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(t, mockService)
		ticketTypeID := uuid.New()

		mockService.EXPECT().Purchase(mock.Anything, ticketTypeID, 1).
			Return(&model.Ticket{ID: uuid.New(), TicketTypeID: ticketTypeID, Quantity: 1, Status: model.TicketStatusReserved}, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/ticket-types/"+ticketTypeID.String()+"/purchase", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "reserved", decodeBody(t, w.Body)["status"])
	})

	t.Run("Success - quantity", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(t, mockService)
		ticketTypeID := uuid.New()

		mockService.EXPECT().Purchase(mock.Anything, ticketTypeID, 3).
			Return(&model.Ticket{ID: uuid.New(), Quantity: 3}, nil).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/ticket-types/"+ticketTypeID.String()+"/purchase", model.PurchaseTicketRequest{Quantity: 3})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("Failed - quantity over limit", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(t, mockService)

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/ticket-types/"+uuid.NewString()+"/purchase", model.PurchaseTicketRequest{Quantity: 25})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	errorCases := []struct {
		name string
		err  error
		code int
	}{
		{"ErrInsufficientStock", apperrors.ErrInsufficientStock, http.StatusConflict},
		{"ErrExceedsMaxPerUser", apperrors.ErrExceedsMaxPerUser, http.StatusBadRequest},
		{"ErrSaleEnded", apperrors.ErrSaleEnded, http.StatusConflict},
		{"ErrSalesNotOpen", apperrors.ErrSalesNotOpen, http.StatusConflict},
		{"ErrTicketTypeNotFound", apperrors.ErrTicketTypeNotFound, http.StatusNotFound},
		{"ErrUnauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"ErrInternalServerError", apperrors.ErrInternalServerError, http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run("Failed - "+tc.name, func(t *testing.T) {
			mockService := mocks.NewMockTicketService(t)
			router := setupTicketTestRouter(t, mockService)

			mockService.EXPECT().Purchase(mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			req, _ := http.NewRequest(http.MethodPost, "/api/v1/ticket-types/"+uuid.NewString()+"/purchase", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestListMyTickets(t *testing.T) {
	mockService := mocks.NewMockTicketService(t)
	router := setupTicketTestRouter(t, mockService)

	mockService.EXPECT().ListMine(mock.Anything).Return([]*model.Ticket{{ID: uuid.New()}}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tickets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(t, mockService)
		id := uuid.New()

		mockService.EXPECT().Cancel(mock.Anything, id).Return(&model.Ticket{ID: id, Status: model.TicketStatusCancelled}, nil).Once()

		req, _ := http.NewRequest(http.MethodPut, "/api/v1/tickets/"+id.String()+"/cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - ErrInvalidTicketStatus", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(t, mockService)

		mockService.EXPECT().Cancel(mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidTicketStatus).Once()

		req, _ := http.NewRequest(http.MethodPut, "/api/v1/tickets/"+uuid.NewString()+"/cancel", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
