package worker

import (
	"context"
	"errors"
	"ticketee/internal/model"
	"ticketee/internal/queue"
	apperrors "ticketee/pkg/app_errors"
	"ticketee/pkg/logger"

	"go.uber.org/zap"
)

// TicketPersister 將預留的票券寫入資料庫
type TicketPersister interface {
	Persist(ctx context.Context, ticket *model.Ticket) error
}

type TicketWorker interface {
	// 訂閱票券隊列並持久化，直到 ctx 結束
	Start(ctx context.Context) (<-chan struct{}, error)
}

type TicketWorkerImpl struct {
	persister TicketPersister
	queue     queue.TicketQueue
}

func NewTicketWorker(persister TicketPersister, queue queue.TicketQueue) TicketWorker {
	return &TicketWorkerImpl{
		persister: persister,
		queue:     queue,
	}
}

// Start 回傳的 channel 在 worker 結束後關閉
func (w *TicketWorkerImpl) Start(ctx context.Context) (<-chan struct{}, error) {
	msgs, err := w.queue.SubscribeTickets(ctx)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	log := logger.WithComponent("worker")

	go func() {
		defer close(done)
		for msg := range msgs {
			err := w.persister.Persist(ctx, msg.Data)
			if isPermanent(err) {
				log.Error("drop ticket that can never be persisted",
					zap.String("ticket_id", msg.Data.ID.String()),
					zap.Error(err),
				)
				msg.Nack(false)
				continue
			}
			if err != nil {
				log.Warn("persist ticket failed, will retry",
					zap.String("ticket_id", msg.Data.ID.String()),
					zap.Error(err),
				)
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return done, nil
}

func isPermanent(err error) bool {
	return errors.Is(err, apperrors.ErrInsufficientStock) ||
		errors.Is(err, apperrors.ErrTicketTypeNotFound)
}
