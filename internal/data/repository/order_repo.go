package repository

import (
	"context"
	"fmt"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByCode(ctx context.Context, code string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, code, hotel_id, status, access_code_hash, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.Code,
		&order.HotelID,
		&order.Status,
		&order.AccessCodeHash,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) FindByCode(ctx context.Context, code string) (*entity.Order, error) {
	query := `
		SELECT id, code, hotel_id, status, access_code_hash, created_at, updated_at
		FROM orders
		WHERE code = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, code).Scan(
		&order.ID,
		&order.Code,
		&order.HotelID,
		&order.Status,
		&order.AccessCodeHash,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find order by code %s: %w", code, err)
	}

	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := r.db.Exec(ctx, query, status, orderID)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status: %w", orderID.String(), err)
	}

	return nil
}
