package repository

import (
	"context"
	"errors"
	"time"

	"ticketee/internal/model"
	apperrors "ticketee/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Ticket, error)

	// Transaction methods
	// Create 以票券 id 冪等寫入，重複投遞時回傳 false
	Create(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (bool, error)
	UpdateStatusWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.TicketStatus) (*model.Ticket, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `id, event_id, ticket_type_id, user_id, quantity, amount_paid, status, created_at, updated_at`

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	var ticket model.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.TicketTypeID,
		&ticket.UserID,
		&ticket.Quantity,
		&ticket.AmountPaid,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (bool, error) {
	query := `
		INSERT INTO tickets (id, event_id, ticket_type_id, user_id, quantity, amount_paid, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`

	result, err := tx.Exec(ctx, query,
		ticket.ID, ticket.EventID, ticket.TicketTypeID, ticket.UserID,
		ticket.Quantity, ticket.AmountPaid, ticket.Status,
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (r *TicketRepositoryImpl) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tickets, nil
}

// UpdateStatusWithLock 鎖定票券列後依狀態機轉換狀態，回傳轉換前的數量等資訊
func (r *TicketRepositoryImpl) UpdateStatusWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.TicketStatus) (*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1 FOR UPDATE`

	ticket, err := scanTicket(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	if !ticket.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTicketStatus
	}

	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `UPDATE tickets SET status = $1, updated_at = $2 WHERE id = $3`, status, now, id)
	if err != nil {
		return nil, err
	}

	ticket.Status = status
	ticket.UpdatedAt = now
	return ticket, nil
}
