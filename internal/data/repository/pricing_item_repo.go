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

type PricingItemRepository interface {
	Create(ctx context.Context, item *entity.PricingItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PricingItem, error)
	FindByRoomBookingID(ctx context.Context, roomBookingID uuid.UUID) ([]entity.PricingItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pricingItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPricingItemRepository(db database.PgxIface, log *zap.Logger) PricingItemRepository {
	return &pricingItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "pricing_item")),
	}
}

func (r *pricingItemRepository) Create(ctx context.Context, item *entity.PricingItem) error {
	query := `
		INSERT INTO pricing_items (id, room_booking_id, name, price, item_type, concept, category, bid_status, item_status, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			COALESCE((SELECT MAX(position) + 1 FROM pricing_items WHERE room_booking_id = $2), 0),
			$10)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.RoomBookingID,
		item.Name,
		item.Price,
		item.Type,
		item.Concept,
		item.Category,
		item.BidStatus,
		item.ItemStatus,
		item.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create pricing item",
			zap.Error(err),
			zap.String("room_booking_id", item.RoomBookingID.String()),
			zap.String("name", item.Name),
		)
		return fmt.Errorf("create pricing item %s: %w", item.Name, err)
	}

	return nil
}

func (r *pricingItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PricingItem, error) {
	query := `
		SELECT id, room_booking_id, name, price, item_type, concept, category, bid_status, item_status, position, created_at
		FROM pricing_items
		WHERE id = $1
	`

	var item entity.PricingItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.RoomBookingID,
		&item.Name,
		&item.Price,
		&item.Type,
		&item.Concept,
		&item.Category,
		&item.BidStatus,
		&item.ItemStatus,
		&item.Position,
		&item.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find pricing item by ID",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return nil, fmt.Errorf("find pricing item by ID %s: %w", id.String(), err)
	}

	return &item, nil
}

func (r *pricingItemRepository) FindByRoomBookingID(ctx context.Context, roomBookingID uuid.UUID) ([]entity.PricingItem, error) {
	query := `
		SELECT id, room_booking_id, name, price, item_type, concept, category, bid_status, item_status, position, created_at
		FROM pricing_items
		WHERE room_booking_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.Query(ctx, query, roomBookingID)
	if err != nil {
		r.log.Error("Failed to find pricing items",
			zap.Error(err),
			zap.String("room_booking_id", roomBookingID.String()),
		)
		return nil, fmt.Errorf("find pricing items for room %s: %w", roomBookingID.String(), err)
	}
	defer rows.Close()

	var items []entity.PricingItem
	for rows.Next() {
		var item entity.PricingItem
		if err := rows.Scan(
			&item.ID,
			&item.RoomBookingID,
			&item.Name,
			&item.Price,
			&item.Type,
			&item.Concept,
			&item.Category,
			&item.BidStatus,
			&item.ItemStatus,
			&item.Position,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pricing item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *pricingItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM pricing_items WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete pricing item",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return fmt.Errorf("delete pricing item %s: %w", id.String(), err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pricing item %s not found", id.String())
	}

	return nil
}
