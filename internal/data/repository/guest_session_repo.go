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

type GuestSessionRepository interface {
	Create(ctx context.Context, session *entity.GuestSession) error
	FindValidSession(ctx context.Context, token string) (*entity.GuestSession, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type guestSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestSessionRepository(db database.PgxIface, log *zap.Logger) GuestSessionRepository {
	return &guestSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest_session")),
	}
}

func (r *guestSessionRepository) Create(ctx context.Context, session *entity.GuestSession) error {
	query := `
		INSERT INTO guest_sessions (id, order_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.OrderID,
		session.Token,
		session.ExpiresAt,
		session.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create guest session",
			zap.Error(err),
			zap.String("order_id", session.OrderID.String()),
		)
		return fmt.Errorf("create guest session: %w", err)
	}

	return nil
}

func (r *guestSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.GuestSession, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	query := `
		SELECT id, order_id, token, expires_at, created_at
		FROM guest_sessions
		WHERE token = $1 AND expires_at > NOW()
	`

	var session entity.GuestSession
	err = r.db.QueryRow(ctx, query, tokenUUID).Scan(
		&session.ID,
		&session.OrderID,
		&session.Token,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest session", zap.Error(err))
		return nil, fmt.Errorf("find guest session: %w", err)
	}

	return &session, nil
}

func (r *guestSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM guest_sessions WHERE expires_at <= NOW()`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to delete expired guest sessions", zap.Error(err))
		return 0, fmt.Errorf("delete expired guest sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}
