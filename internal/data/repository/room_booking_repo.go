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

type RoomBookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomBooking, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.RoomBooking, error)
}

type roomBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomBookingRepository(db database.PgxIface, log *zap.Logger) RoomBookingRepository {
	return &roomBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_booking")),
	}
}

func (r *roomBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomBooking, error) {
	query := `
		SELECT id, order_id, room_name, guest_name, check_in, check_out, nights, pay_at_hotel, created_at, updated_at
		FROM room_bookings
		WHERE id = $1
	`

	var room entity.RoomBooking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.OrderID,
		&room.RoomName,
		&room.GuestName,
		&room.CheckIn,
		&room.CheckOut,
		&room.Nights,
		&room.PayAtHotel,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room booking by ID",
			zap.Error(err),
			zap.String("room_booking_id", id.String()),
		)
		return nil, fmt.Errorf("find room booking by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomBookingRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.RoomBooking, error) {
	query := `
		SELECT id, order_id, room_name, guest_name, check_in, check_out, nights, pay_at_hotel, created_at, updated_at
		FROM room_bookings
		WHERE order_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find room bookings by order ID",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find room bookings by order ID %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.RoomBooking
	for rows.Next() {
		var room entity.RoomBooking
		if err := rows.Scan(
			&room.ID,
			&room.OrderID,
			&room.RoomName,
			&room.GuestName,
			&room.CheckIn,
			&room.CheckOut,
			&room.Nights,
			&room.PayAtHotel,
			&room.CreatedAt,
			&room.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan room booking: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, rows.Err()
}
