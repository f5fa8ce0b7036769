package service

import (
	"context"
	"fmt"
	"strings"

	"ticketee/internal/cache"
	"ticketee/internal/identity"
	"ticketee/internal/model"
	"ticketee/internal/repository"
	"ticketee/internal/storage"
	apperrors "ticketee/pkg/app_errors"
	"ticketee/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context, publishedOnly bool) ([]*model.Event, error)
	// GetByID 含票種
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	// Delete 刪除活動後盡力清除媒體檔案
	Delete(ctx context.Context, id uuid.UUID) error
	// OpenForSale 活動開賣：預熱該活動底下所有票種的 Redis 庫存
	OpenForSale(ctx context.Context, id uuid.UUID) error
}

type EventServiceImpl struct {
	identity         identity.Provider
	repo             repository.EventRepository
	ticketTypeRepo   repository.TicketTypeRepository
	store            storage.ObjectStore
	inventoryManager cache.TicketInventoryManager
	maxPerUser       int
}

func NewEventService(
	identity identity.Provider,
	repo repository.EventRepository,
	ticketTypeRepo repository.TicketTypeRepository,
	store storage.ObjectStore,
	inventoryManager cache.TicketInventoryManager,
	maxPerUser int,
) EventService {
	return &EventServiceImpl{
		identity:         identity,
		repo:             repo,
		ticketTypeRepo:   ticketTypeRepo,
		store:            store,
		inventoryManager: inventoryManager,
		maxPerUser:       maxPerUser,
	}
}

func (s *EventServiceImpl) List(ctx context.Context, publishedOnly bool) ([]*model.Event, error) {
	return s.repo.List(ctx, publishedOnly)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ticketTypes, err := s.ticketTypeRepo.ListByEventID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.TicketTypes = ticketTypes
	return event, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}
	if params.Title != nil && trimmedLen(*params.Title) < minTextLength {
		return nil, fmt.Errorf("%w: title must be at least %d characters", apperrors.ErrInvalidInput, minTextLength)
	}
	if params.StartDate != nil && params.EndDate != nil && params.EndDate.Before(*params.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after the start date", apperrors.ErrInvalidInput)
	}
	if params.MaxAttendees != nil && *params.MaxAttendees < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", apperrors.ErrInvalidInput)
	}

	if _, err := s.ownedEvent(ctx, id); err != nil {
		return nil, err
	}
	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		params.Title = &title
	}
	return s.repo.Update(ctx, id, params)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	event, err := s.ownedEvent(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log := logger.WithComponent("event").With(zap.String("event_id", id.String()))
	for _, url := range event.MediaURLs {
		if err := s.store.Delete(ctx, url); err != nil {
			log.Warn("failed to delete media", zap.String("url", url), zap.Error(err))
		}
	}
	return nil
}

func (s *EventServiceImpl) OpenForSale(ctx context.Context, id uuid.UUID) error {
	event, err := s.ownedEvent(ctx, id)
	if err != nil {
		return err
	}
	ticketTypes, err := s.ticketTypeRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return err
	}
	for _, tt := range ticketTypes {
		if err := s.inventoryManager.WarmUpInventory(ctx, tt, s.maxPerUser); err != nil {
			return err
		}
	}
	logger.WithComponent("event").Info("event opened for sale",
		zap.String("event_id", event.ID.String()),
		zap.Int("ticket_types", len(ticketTypes)),
	)
	return nil
}

// ownedEvent 只有建立者可以修改活動
func (s *EventServiceImpl) ownedEvent(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	principal, err := s.identity.CurrentPrincipal(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(principal.ID) {
		return nil, apperrors.ErrForbidden
	}
	return event, nil
}
