package queue

import (
	"context"
	"ticketee/internal/model"
	"ticketee/pkg/logger"
	"time"

	"go.uber.org/zap"
)

type Delivery struct {
	Data *model.Ticket
	Ack  func()
	Nack func(requeue bool)
}

type TicketQueue interface {
	// 發送預留的票券到隊列
	PublishTicket(ctx context.Context, ticket *model.Ticket) error
	// 訂閱票券隊列
	SubscribeTickets(ctx context.Context) (<-chan Delivery, error)
}

// MemoryTicketQueueConfig 重送設定；nil 或零值時使用預設
type MemoryTicketQueueConfig struct {
	MaxRetryCount int           // 重送超過此次數即丟棄
	RetryDelay    time.Duration // nack(requeue) 後延遲多久重新入列
}

func defaultMemoryConfig() MemoryTicketQueueConfig {
	return MemoryTicketQueueConfig{
		MaxRetryCount: 5,
		RetryDelay:    100 * time.Millisecond,
	}
}

type memoryMessage struct {
	ticket  *model.Ticket
	retries int
}

// MemoryTicketQueue 以 Go channel 實作，供單機開發與測試使用
type MemoryTicketQueue struct {
	ch  chan memoryMessage
	cfg MemoryTicketQueueConfig
}

// NewMemoryTicketQueue config 可為 nil
func NewMemoryTicketQueue(bufferSize int, config *MemoryTicketQueueConfig) TicketQueue {
	cfg := defaultMemoryConfig()
	if config != nil {
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.RetryDelay > 0 {
			cfg.RetryDelay = config.RetryDelay
		}
	}
	return &MemoryTicketQueue{
		ch:  make(chan memoryMessage, bufferSize),
		cfg: cfg,
	}
}

func (q *MemoryTicketQueue) PublishTicket(ctx context.Context, ticket *model.Ticket) error {
	return q.enqueue(ctx, memoryMessage{ticket: ticket})
}

func (q *MemoryTicketQueue) enqueue(ctx context.Context, msg memoryMessage) error {
	select {
	case q.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// requeue 延遲後重新入列；超過重送上限則丟棄
func (q *MemoryTicketQueue) requeue(ctx context.Context, msg memoryMessage) {
	if msg.retries >= q.cfg.MaxRetryCount {
		logger.WithComponent("mq").Warn("discard poison message",
			zap.String("ticket_id", msg.ticket.ID.String()),
			zap.Int("retries", msg.retries),
			zap.Int("max_retries", q.cfg.MaxRetryCount))
		return
	}
	msg.retries++
	go func() {
		timer := time.NewTimer(q.cfg.RetryDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
			_ = q.enqueue(ctx, msg)
		case <-ctx.Done():
		}
	}()
}

func (q *MemoryTicketQueue) SubscribeTickets(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: msg.ticket,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.requeue(ctx, msg)
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
