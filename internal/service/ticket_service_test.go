package service

import (
	"context"
	"errors"
	"testing"
	"time"

	cacheMocks "ticketee/internal/cache/mocks"
	identityMocks "ticketee/internal/identity/mocks"
	"ticketee/internal/model"
	queueMocks "ticketee/internal/queue/mocks"
	repoMocks "ticketee/internal/repository/mocks"
	apperrors "ticketee/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ticketMocks struct {
	identity    *identityMocks.MockProvider
	events      *repoMocks.MockEventRepository
	ticketTypes *repoMocks.MockTicketTypeRepository
	tickets     *repoMocks.MockTicketRepository
	tx          *repoMocks.MockTransactor
	inventory   *cacheMocks.MockTicketInventoryManager
	queue       *queueMocks.MockTicketQueue
}

func setupTicketService(t *testing.T) (*TicketServiceImpl, *ticketMocks) {
	m := &ticketMocks{
		identity:    identityMocks.NewMockProvider(t),
		events:      repoMocks.NewMockEventRepository(t),
		ticketTypes: repoMocks.NewMockTicketTypeRepository(t),
		tickets:     repoMocks.NewMockTicketRepository(t),
		tx:          repoMocks.NewMockTransactor(t),
		inventory:   cacheMocks.NewMockTicketInventoryManager(t),
		queue:       queueMocks.NewMockTicketQueue(t),
	}
	svc := NewTicketService(m.identity, m.events, m.ticketTypes, m.tickets, m.tx, m.inventory, m.queue).(*TicketServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

// runTx 直接執行交易內容
func (m *ticketMocks) runTx() {
	m.tx.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		}).Once()
}

var buyer = &model.Principal{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Email: "fan@example.com", Role: "attendee"}

func TestTicketService_CreateTicketType(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, m := setupTicketService(t)
		eventID := uuid.New()
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(organizer, nil).Once()
		m.events.EXPECT().FindByID(mock.Anything, eventID).Return(ownedEvent(eventID), nil).Once()
		m.ticketTypes.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tt *model.TicketType) bool {
			return tt.EventID == eventID && tt.Name == "Early Bird" && tt.Price == 15
		})).RunAndReturn(func(_ context.Context, tt *model.TicketType) (*model.TicketType, error) {
			tt.ID = uuid.New()
			return tt, nil
		}).Once()

		tt, err := svc.CreateTicketType(context.Background(), eventID, model.TicketTypeDraft{Name: "Early Bird", Price: floatPtr(15)})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, tt.ID)
	})

	t.Run("Failed - invalid draft", func(t *testing.T) {
		svc, m := setupTicketService(t)
		eventID := uuid.New()
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(organizer, nil).Once()
		m.events.EXPECT().FindByID(mock.Anything, eventID).Return(ownedEvent(eventID), nil).Once()

		_, err := svc.CreateTicketType(context.Background(), eventID, model.TicketTypeDraft{Name: "Broken", Price: floatPtr(-1)})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "Ticket type #1: price must be 0 or greater")
	})

	t.Run("Failed - not owner", func(t *testing.T) {
		svc, m := setupTicketService(t)
		eventID := uuid.New()
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(buyer, nil).Once()
		m.events.EXPECT().FindByID(mock.Anything, eventID).Return(ownedEvent(eventID), nil).Once()

		_, err := svc.CreateTicketType(context.Background(), eventID, model.TicketTypeDraft{Name: "GA", Price: floatPtr(1)})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestTicketService_ListTicketTypes(t *testing.T) {
	svc, m := setupTicketService(t)
	eventID := uuid.New()
	m.events.EXPECT().FindByID(mock.Anything, eventID).Return(ownedEvent(eventID), nil).Once()
	m.ticketTypes.EXPECT().ListByEventID(mock.Anything, eventID).Return([]*model.TicketType{{Name: "GA"}}, nil).Once()

	got, err := svc.ListTicketTypes(context.Background(), eventID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestTicketService_Purchase(t *testing.T) {
	ticketTypeID := uuid.New()
	eventID := uuid.New()
	onSale := &model.TicketType{ID: ticketTypeID, EventID: eventID, Name: "GA", Price: 25}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(buyer, nil).Once()
		m.ticketTypes.EXPECT().FindByID(mock.Anything, ticketTypeID).Return(onSale, nil).Once()
		m.inventory.EXPECT().Reserve(mock.Anything, ticketTypeID, 2, buyer.ID).Return(25.0, nil).Once()
		m.queue.EXPECT().PublishTicket(mock.Anything, mock.MatchedBy(func(tk *model.Ticket) bool {
			return tk.UserID == buyer.ID && tk.EventID == eventID && tk.Quantity == 2
		})).Return(nil).Once()

		ticket, err := svc.Purchase(context.Background(), ticketTypeID, 2)

		require.NoError(t, err)
		assert.Equal(t, model.TicketStatusReserved, ticket.Status)
		assert.Equal(t, 50.0, ticket.AmountPaid)
	})

	t.Run("Success - quantity defaults to one", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(buyer, nil).Once()
		m.ticketTypes.EXPECT().FindByID(mock.Anything, ticketTypeID).Return(onSale, nil).Once()
		m.inventory.EXPECT().Reserve(mock.Anything, ticketTypeID, 1, buyer.ID).Return(25.0, nil).Once()
		m.queue.EXPECT().PublishTicket(mock.Anything, mock.Anything).Return(nil).Once()

		ticket, err := svc.Purchase(context.Background(), ticketTypeID, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, ticket.Quantity)
	})

	t.Run("Failed - sale ended", func(t *testing.T) {
		svc, m := setupTicketService(t)
		ended := *onSale
		endSale := fixedNow.Add(-time.Hour)
		ended.EndSaleDate = &endSale
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(buyer, nil).Once()
		m.ticketTypes.EXPECT().FindByID(mock.Anything, ticketTypeID).Return(&ended, nil).Once()

		_, err := svc.Purchase(context.Background(), ticketTypeID, 1)

		assert.ErrorIs(t, err, apperrors.ErrSaleEnded)
	})

	t.Run("Failed - ErrInsufficientStock", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(buyer, nil).Once()
		m.ticketTypes.EXPECT().FindByID(mock.Anything, ticketTypeID).Return(onSale, nil).Once()
		m.inventory.EXPECT().Reserve(mock.Anything, ticketTypeID, 3, buyer.ID).Return(0.0, apperrors.ErrInsufficientStock).Once()

		_, err := svc.Purchase(context.Background(), ticketTypeID, 3)

		assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	})

	t.Run("Failed - sales not open", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(buyer, nil).Once()
		m.ticketTypes.EXPECT().FindByID(mock.Anything, ticketTypeID).Return(onSale, nil).Once()
		m.inventory.EXPECT().Reserve(mock.Anything, ticketTypeID, 1, buyer.ID).Return(0.0, apperrors.ErrTicketTypeNotFound).Once()

		_, err := svc.Purchase(context.Background(), ticketTypeID, 1)

		assert.ErrorIs(t, err, apperrors.ErrSalesNotOpen)
	})

	t.Run("Failed - publish error releases reservation", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(buyer, nil).Once()
		m.ticketTypes.EXPECT().FindByID(mock.Anything, ticketTypeID).Return(onSale, nil).Once()
		m.inventory.EXPECT().Reserve(mock.Anything, ticketTypeID, 1, buyer.ID).Return(25.0, nil).Once()
		m.queue.EXPECT().PublishTicket(mock.Anything, mock.Anything).Return(errors.New("stream unavailable")).Once()
		m.inventory.EXPECT().Release(mock.Anything, ticketTypeID, 1, buyer.ID).Return(nil).Once()

		_, err := svc.Purchase(context.Background(), ticketTypeID, 1)

		assert.ErrorIs(t, err, apperrors.ErrInternalServerError)
	})

	t.Run("Failed - unauthenticated", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(nil, apperrors.ErrUnauthenticated).Once()

		_, err := svc.Purchase(context.Background(), ticketTypeID, 1)

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

func TestTicketService_Persist(t *testing.T) {
	ticket := &model.Ticket{ID: uuid.New(), TicketTypeID: uuid.New(), UserID: buyer.ID, Quantity: 2, Status: model.TicketStatusReserved}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.runTx()
		m.tickets.EXPECT().Create(mock.Anything, mock.Anything, ticket).Return(true, nil).Once()
		m.ticketTypes.EXPECT().DecrementRemaining(mock.Anything, mock.Anything, ticket.TicketTypeID, 2).Return(nil).Once()

		assert.NoError(t, svc.Persist(context.Background(), ticket))
	})

	t.Run("Success - duplicate delivery skips stock", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.runTx()
		m.tickets.EXPECT().Create(mock.Anything, mock.Anything, ticket).Return(false, nil).Once()

		assert.NoError(t, svc.Persist(context.Background(), ticket))
		m.ticketTypes.AssertNotCalled(t, "DecrementRemaining", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - ErrInsufficientStock releases reservation", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.runTx()
		m.tickets.EXPECT().Create(mock.Anything, mock.Anything, ticket).Return(true, nil).Once()
		m.ticketTypes.EXPECT().DecrementRemaining(mock.Anything, mock.Anything, ticket.TicketTypeID, 2).Return(apperrors.ErrInsufficientStock).Once()
		m.inventory.EXPECT().Release(mock.Anything, ticket.TicketTypeID, 2, buyer.ID).Return(nil).Once()

		err := svc.Persist(context.Background(), ticket)

		assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	})
}

func TestTicketService_Cancel(t *testing.T) {
	ticketID := uuid.New()
	ticket := &model.Ticket{ID: ticketID, TicketTypeID: uuid.New(), UserID: buyer.ID, Quantity: 2, Status: model.TicketStatusReserved}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupTicketService(t)
		cancelled := *ticket
		cancelled.Status = model.TicketStatusCancelled
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(buyer, nil).Once()
		m.tickets.EXPECT().FindByID(mock.Anything, ticketID).Return(ticket, nil).Once()
		m.runTx()
		m.tickets.EXPECT().UpdateStatusWithLock(mock.Anything, mock.Anything, ticketID, model.TicketStatusCancelled).Return(&cancelled, nil).Once()
		m.ticketTypes.EXPECT().IncrementRemaining(mock.Anything, mock.Anything, ticket.TicketTypeID, 2).Return(nil).Once()
		m.inventory.EXPECT().Release(mock.Anything, ticket.TicketTypeID, 2, buyer.ID).Return(nil).Once()

		got, err := svc.Cancel(context.Background(), ticketID)

		require.NoError(t, err)
		assert.Equal(t, model.TicketStatusCancelled, got.Status)
	})

	t.Run("Failed - other user's ticket", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(organizer, nil).Once()
		m.tickets.EXPECT().FindByID(mock.Anything, ticketID).Return(ticket, nil).Once()

		_, err := svc.Cancel(context.Background(), ticketID)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Failed - already cancelled", func(t *testing.T) {
		svc, m := setupTicketService(t)
		m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(buyer, nil).Once()
		m.tickets.EXPECT().FindByID(mock.Anything, ticketID).Return(ticket, nil).Once()
		m.runTx()
		m.tickets.EXPECT().UpdateStatusWithLock(mock.Anything, mock.Anything, ticketID, model.TicketStatusCancelled).Return(nil, apperrors.ErrInvalidTicketStatus).Once()

		_, err := svc.Cancel(context.Background(), ticketID)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTicketStatus)
		m.inventory.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTicketService_ListMine(t *testing.T) {
	svc, m := setupTicketService(t)
	m.identity.EXPECT().CurrentPrincipal(mock.Anything).Return(buyer, nil).Once()
	m.tickets.EXPECT().ListByUserID(mock.Anything, buyer.ID).Return([]*model.Ticket{{ID: uuid.New()}}, nil).Once()

	got, err := svc.ListMine(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
