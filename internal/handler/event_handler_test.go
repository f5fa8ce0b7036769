package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
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

func setupEventTestRouter(t *testing.T, mockService *mocks.MockEventService) *gin.Engine {
	router := newTestRouter(t)
	handler.NewEventHandler(mockService).RegisterRoutes(router)
	return router
}

func TestListEvents(t *testing.T) {
	t.Run("Success - published only by default", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)

		mockService.EXPECT().List(mock.Anything, true).Return([]*model.Event{{ID: uuid.New(), Title: "Spring Gala"}}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Spring Gala")
	})

	t.Run("Success - include drafts", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)

		mockService.EXPECT().List(mock.Anything, false).Return([]*model.Event{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events?published_only=false", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)
		id := uuid.New()

		mockService.EXPECT().GetByID(mock.Anything, id).Return(&model.Event{
			ID:          id,
			Title:       "Spring Gala",
			TicketTypes: []*model.TicketType{{Name: "VIP", Price: 120}},
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "VIP")
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)

		mockService.EXPECT().GetByID(mock.Anything, mock.Anything).Return(nil, apperrors.ErrEventNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - invalid id", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)
		id := uuid.New()

		mockService.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(p model.UpdateEventParams) bool {
			return p.Title != nil && *p.Title == "Summer Gala" && p.IsPublished == nil
		})).Return(&model.Event{ID: id, Title: "Summer Gala"}, nil).Once()

		req := createJSONHTTPRequest(http.MethodPut, "/api/v1/events/"+id.String(), map[string]interface{}{"title": "Summer Gala"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - empty body", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)

		req := createJSONHTTPRequest(http.MethodPut, "/api/v1/events/"+uuid.NewString(), map[string]interface{}{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - blank title", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)

		req := createJSONHTTPRequest(http.MethodPut, "/api/v1/events/"+uuid.NewString(), map[string]interface{}{"title": "   "})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - invalid JSON", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)

		req, _ := http.NewRequest(http.MethodPut, "/api/v1/events/"+uuid.NewString(), strings.NewReader(InvalidJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - ErrForbidden", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)

		mockService.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrForbidden).Once()

		req := createJSONHTTPRequest(http.MethodPut, "/api/v1/events/"+uuid.NewString(), map[string]interface{}{"is_published": true})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)
		id := uuid.New()

		mockService.EXPECT().Delete(mock.Anything, id).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/events/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - ErrUnauthenticated", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(t, mockService)

		mockService.EXPECT().Delete(mock.Anything, mock.Anything).Return(apperrors.ErrUnauthenticated).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/events/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "/auth/sign-in", decodeBody(t, w.Body)["redirect"])
	})
}

func TestOpenForSale(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	router := setupEventTestRouter(t, mockService)
	id := uuid.New()

	mockService.EXPECT().OpenForSale(mock.Anything, id).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/"+id.String()+"/open", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
