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

type TicketTypeRepository interface {
	Create(ctx context.Context, ticketType *model.TicketType) (*model.TicketType, error)
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.TicketType, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TicketType, error)

	// Transaction methods
	DecrementRemaining(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int) error
	IncrementRemaining(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int) error
}

type TicketTypeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketTypeRepository(pool *pgxpool.Pool) TicketTypeRepository {
	return &TicketTypeRepositoryImpl{
		pool: pool,
	}
}

const ticketTypeColumns = `id, event_id, name, description, price, quantity, remaining,
	end_sale_date, created_at, updated_at`

func scanTicketType(row pgx.Row) (*model.TicketType, error) {
	var tt model.TicketType
	err := row.Scan(
		&tt.ID,
		&tt.EventID,
		&tt.Name,
		&tt.Description,
		&tt.Price,
		&tt.Quantity,
		&tt.Remaining,
		&tt.EndSaleDate,
		&tt.CreatedAt,
		&tt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tt, nil
}

func (r *TicketTypeRepositoryImpl) Create(ctx context.Context, ticketType *model.TicketType) (*model.TicketType, error) {
	if ticketType.ID == uuid.Nil {
		ticketType.ID = uuid.New()
	}
	query := `
		INSERT INTO ticket_types (id, event_id, name, description, price, quantity, remaining, end_sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $6, $7)
		RETURNING ` + ticketTypeColumns

	return scanTicketType(r.pool.QueryRow(ctx, query,
		ticketType.ID, ticketType.EventID, ticketType.Name, ticketType.Description,
		ticketType.Price, ticketType.Quantity, ticketType.EndSaleDate,
	))
}

func (r *TicketTypeRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.TicketType, error) {
	query := `SELECT ` + ticketTypeColumns + ` FROM ticket_types WHERE event_id = $1 ORDER BY created_at, name`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ticketTypes := make([]*model.TicketType, 0)
	for rows.Next() {
		tt, err := scanTicketType(rows)
		if err != nil {
			return nil, err
		}
		ticketTypes = append(ticketTypes, tt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ticketTypes, nil
}

func (r *TicketTypeRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.TicketType, error) {
	query := `SELECT ` + ticketTypeColumns + ` FROM ticket_types WHERE id = $1`

	tt, err := scanTicketType(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketTypeNotFound
		}
		return nil, err
	}
	return tt, nil
}

// DecrementRemaining 不限量票種 remaining 為 NULL，扣減後仍為 NULL
func (r *TicketTypeRepositoryImpl) DecrementRemaining(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int) error {
	query := `
		UPDATE ticket_types
		SET remaining = remaining - $1, updated_at = $2
		WHERE id = $3 AND (remaining IS NULL OR remaining >= $1)
	`

	result, err := tx.Exec(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrInsufficientStock
	}

	return nil
}

func (r *TicketTypeRepositoryImpl) IncrementRemaining(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int) error {
	query := `
		UPDATE ticket_types
		SET remaining = remaining + $1, updated_at = $2
		WHERE id = $3
	`

	result, err := tx.Exec(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketTypeNotFound
	}

	return nil
}
