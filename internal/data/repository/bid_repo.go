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

type BidRepository interface {
	// Upsert replaces the order's active bid; order_id is unique so only one
	// room can hold a live bid at a time.
	Upsert(ctx context.Context, bid *entity.Bid) error
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Bid, error)
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.BidStatus) error
}

type bidRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBidRepository(db database.PgxIface, log *zap.Logger) BidRepository {
	return &bidRepository{
		db:  db,
		log: log.With(zap.String("repository", "bid")),
	}
}

func (r *bidRepository) Upsert(ctx context.Context, bid *entity.Bid) error {
	query := `
		INSERT INTO bids (id, order_id, room_booking_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (order_id) DO UPDATE
		SET room_booking_id = EXCLUDED.room_booking_id,
		    amount = EXCLUDED.amount,
		    status = EXCLUDED.status,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		bid.ID,
		bid.OrderID,
		bid.RoomBookingID,
		bid.Amount,
		bid.Status,
		bid.CreatedAt,
		bid.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert bid",
			zap.Error(err),
			zap.String("order_id", bid.OrderID.String()),
			zap.String("room_booking_id", bid.RoomBookingID.String()),
			zap.Float64("amount", bid.Amount),
		)
		return fmt.Errorf("upsert bid for order %s: %w", bid.OrderID.String(), err)
	}

	return nil
}

func (r *bidRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Bid, error) {
	query := `
		SELECT id, order_id, room_booking_id, amount, status, created_at, updated_at
		FROM bids
		WHERE order_id = $1
	`

	var bid entity.Bid
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&bid.ID,
		&bid.OrderID,
		&bid.RoomBookingID,
		&bid.Amount,
		&bid.Status,
		&bid.CreatedAt,
		&bid.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bid by order ID",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find bid by order ID %s: %w", orderID.String(), err)
	}

	return &bid, nil
}

func (r *bidRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	query := `DELETE FROM bids WHERE order_id = $1`

	_, err := r.db.Exec(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to delete bid",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return fmt.Errorf("delete bid for order %s: %w", orderID.String(), err)
	}

	return nil
}

func (r *bidRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.BidStatus) error {
	query := `
		UPDATE bids
		SET status = $1, updated_at = NOW()
		WHERE order_id = $2
	`

	_, err := r.db.Exec(ctx, query, status, orderID)
	if err != nil {
		r.log.Error("Failed to update bid status",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update bid status for order %s: %w", orderID.String(), err)
	}

	return nil
}
