package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ticketee/internal/cache"
	"ticketee/internal/identity"
	"ticketee/internal/metrics"
	"ticketee/internal/model"
	"ticketee/internal/queue"
	"ticketee/internal/repository"
	apperrors "ticketee/pkg/app_errors"
	"ticketee/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketService interface {
	CreateTicketType(ctx context.Context, eventID uuid.UUID, draft model.TicketTypeDraft) (*model.TicketType, error)
	ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]*model.TicketType, error)
	// Purchase 預扣 Redis 庫存並送入佇列，由 worker 非同步寫入資料庫
	Purchase(ctx context.Context, ticketTypeID uuid.UUID, quantity int) (*model.Ticket, error)
	// Persist 由 worker 呼叫
	Persist(ctx context.Context, ticket *model.Ticket) error
	Cancel(ctx context.Context, ticketID uuid.UUID) (*model.Ticket, error)
	ListMine(ctx context.Context) ([]*model.Ticket, error)
}

type TicketServiceImpl struct {
	identity         identity.Provider
	eventRepo        repository.EventRepository
	ticketTypeRepo   repository.TicketTypeRepository
	ticketRepo       repository.TicketRepository
	transactor       repository.Transactor
	inventoryManager cache.TicketInventoryManager
	queue            queue.TicketQueue
	now              func() time.Time
}

func NewTicketService(
	identity identity.Provider,
	eventRepo repository.EventRepository,
	ticketTypeRepo repository.TicketTypeRepository,
	ticketRepo repository.TicketRepository,
	transactor repository.Transactor,
	inventoryManager cache.TicketInventoryManager,
	queue queue.TicketQueue,
) TicketService {
	return &TicketServiceImpl{
		identity:         identity,
		eventRepo:        eventRepo,
		ticketTypeRepo:   ticketTypeRepo,
		ticketRepo:       ticketRepo,
		transactor:       transactor,
		inventoryManager: inventoryManager,
		queue:            queue,
		now:              time.Now,
	}
}

func (s *TicketServiceImpl) principal(ctx context.Context) (*model.Principal, error) {
	p, err := s.identity.CurrentPrincipal(ctx)
	if err != nil || p == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return p, nil
}

func (s *TicketServiceImpl) CreateTicketType(ctx context.Context, eventID uuid.UUID, draft model.TicketTypeDraft) (*model.TicketType, error) {
	principal, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(principal.ID) {
		return nil, apperrors.ErrForbidden
	}

	ticketTypes, lines := ValidateTicketDrafts([]model.TicketTypeDraft{draft}, s.now().UTC())
	if len(lines) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, strings.Join(lines, "; "))
	}
	ticketType := ticketTypes[0]
	ticketType.EventID = eventID
	return s.ticketTypeRepo.Create(ctx, ticketType)
}

func (s *TicketServiceImpl) ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]*model.TicketType, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.ticketTypeRepo.ListByEventID(ctx, eventID)
}

func (s *TicketServiceImpl) Purchase(ctx context.Context, ticketTypeID uuid.UUID, quantity int) (*model.Ticket, error) {
	principal, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		quantity = 1
	}

	ticketType, err := s.ticketTypeRepo.FindByID(ctx, ticketTypeID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if ticketType.SaleEnded(now) {
		metrics.RecordTicketPurchase("sale_ended")
		return nil, apperrors.ErrSaleEnded
	}

	price, err := s.inventoryManager.Reserve(ctx, ticketTypeID, quantity, principal.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketTypeNotFound) {
			// 尚未預熱庫存
			err = apperrors.ErrSalesNotOpen
		}
		metrics.RecordTicketPurchase("rejected")
		return nil, err
	}

	ticket := &model.Ticket{
		ID:           uuid.New(),
		EventID:      ticketType.EventID,
		TicketTypeID: ticketTypeID,
		UserID:       principal.ID,
		Quantity:     quantity,
		AmountPaid:   price * float64(quantity),
		Status:       model.TicketStatusReserved,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.queue.PublishTicket(ctx, ticket); err != nil {
		log := logger.WithComponent("ticket")
		log.Error("failed to publish ticket", zap.String("ticket_id", ticket.ID.String()), zap.Error(err))
		// 回補 Redis 預扣
		if releaseErr := s.inventoryManager.Release(context.WithoutCancel(ctx), ticketTypeID, quantity, principal.ID); releaseErr != nil {
			log.Error("failed to release reservation", zap.String("ticket_type_id", ticketTypeID.String()), zap.Error(releaseErr))
		}
		metrics.RecordTicketPurchase("failed")
		return nil, apperrors.ErrInternalServerError
	}

	metrics.RecordTicketPurchase("reserved")
	return ticket, nil
}

func (s *TicketServiceImpl) Persist(ctx context.Context, ticket *model.Ticket) error {
	err := s.transactor.WithinTx(ctx, func(tx pgx.Tx) error {
		created, err := s.ticketRepo.Create(ctx, tx, ticket)
		if err != nil {
			return err
		}
		if !created {
			// 重複投遞
			return nil
		}
		return s.ticketTypeRepo.DecrementRemaining(ctx, tx, ticket.TicketTypeID, ticket.Quantity)
	})
	if errors.Is(err, apperrors.ErrInsufficientStock) {
		// 資料庫庫存不足，回補 Redis 讓數量一致
		if releaseErr := s.inventoryManager.Release(ctx, ticket.TicketTypeID, ticket.Quantity, ticket.UserID); releaseErr != nil {
			logger.WithComponent("ticket").Error("failed to release reservation",
				zap.String("ticket_id", ticket.ID.String()),
				zap.Error(releaseErr),
			)
		}
	}
	return err
}

func (s *TicketServiceImpl) Cancel(ctx context.Context, ticketID uuid.UUID) (*model.Ticket, error) {
	principal, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != principal.ID {
		return nil, apperrors.ErrForbidden
	}

	var cancelled *model.Ticket
	err = s.transactor.WithinTx(ctx, func(tx pgx.Tx) error {
		updated, err := s.ticketRepo.UpdateStatusWithLock(ctx, tx, ticketID, model.TicketStatusCancelled)
		if err != nil {
			return err
		}
		if err := s.ticketTypeRepo.IncrementRemaining(ctx, tx, updated.TicketTypeID, updated.Quantity); err != nil {
			return err
		}
		cancelled = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.inventoryManager.Release(ctx, cancelled.TicketTypeID, cancelled.Quantity, cancelled.UserID); err != nil {
		logger.WithComponent("ticket").Warn("failed to release reservation",
			zap.String("ticket_id", cancelled.ID.String()),
			zap.Error(err),
		)
	}
	return cancelled, nil
}

func (s *TicketServiceImpl) ListMine(ctx context.Context) ([]*model.Ticket, error) {
	principal, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	return s.ticketRepo.ListByUserID(ctx, principal.ID)
}
