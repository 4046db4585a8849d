package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/internal/dto/request"
	"github.com/vladHotelverse/hotel-upsell/internal/dto/response"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type GuestSessionService interface {
	// CreateSession exchanges the booking code plus access code for a guest
	// session scoped to that order.
	CreateSession(ctx context.Context, req *request.CreateSessionRequest) (*response.SessionResponse, error)
}

type guestSessionService struct {
	repo        *repository.Repository
	expiryHours int
	log         *zap.Logger
}

func NewGuestSessionService(repo *repository.Repository, config *utils.Config, log *zap.Logger) GuestSessionService {
	return &guestSessionService{
		repo:        repo,
		expiryHours: config.Session.ExpiryHours,
		log:         log.With(zap.String("service", "guest_session")),
	}
}

func (s *guestSessionService) CreateSession(ctx context.Context, req *request.CreateSessionRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create session validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	order, err := s.repo.Order.FindByCode(ctx, req.BookingCode)
	if err != nil {
		return nil, fmt.Errorf("find order by code: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(order.AccessCodeHash), []byte(req.AccessCode)); err != nil {
		s.log.Warn("Access code mismatch",
			zap.String("order_id", order.ID.String()),
		)
		return nil, ErrInvalidAccessCode
	}

	now := time.Now()
	session := &entity.GuestSession{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		OrderID:   order.ID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.expiryHours) * time.Hour),
	}

	if err := s.repo.GuestSession.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create guest session: %w", err)
	}

	s.log.Info("Guest session created",
		zap.String("order_id", order.ID.String()),
		zap.Time("expires_at", session.ExpiresAt),
	)

	return &response.SessionResponse{
		Token:     session.Token.String(),
		OrderID:   order.ID.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}
