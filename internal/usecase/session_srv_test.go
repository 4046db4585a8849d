package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateSession(t *testing.T) {
	repo := testRepository()
	service := NewGuestSessionService(repo, testConfig(0), zap.NewNop())

	hash, err := bcrypt.GenerateFromPassword([]byte("4821"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	orderID := uuid.New()
	repo.Order.(*fakeOrderRepo).order = &entity.Order{
		Base:           entity.Base{ID: orderID},
		Code:           "UPS-ABC123",
		AccessCodeHash: string(hash),
	}

	session, err := service.CreateSession(context.Background(), &request.CreateSessionRequest{
		BookingCode: "UPS-ABC123",
		AccessCode:  "4821",
	})
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	if session.OrderID != orderID.String() {
		t.Errorf("session order = %s, want %s", session.OrderID, orderID)
	}
	if session.Token == "" {
		t.Error("session token empty")
	}

	// The token round-trips through the session repo used by the auth layer.
	stored, err := repo.GuestSession.FindValidSession(context.Background(), session.Token)
	if err != nil || stored == nil {
		t.Fatalf("FindValidSession() = (%v, %v), want stored session", stored, err)
	}
	if stored.OrderID != orderID {
		t.Errorf("stored session order = %s, want %s", stored.OrderID, orderID)
	}
}

func TestCreateSessionWrongAccessCode(t *testing.T) {
	repo := testRepository()
	service := NewGuestSessionService(repo, testConfig(0), zap.NewNop())

	hash, _ := bcrypt.GenerateFromPassword([]byte("4821"), bcrypt.MinCost)
	repo.Order.(*fakeOrderRepo).order = &entity.Order{
		Base:           entity.Base{ID: uuid.New()},
		Code:           "UPS-ABC123",
		AccessCodeHash: string(hash),
	}

	_, err := service.CreateSession(context.Background(), &request.CreateSessionRequest{
		BookingCode: "UPS-ABC123",
		AccessCode:  "9999",
	})
	if !errors.Is(err, ErrInvalidAccessCode) {
		t.Errorf("CreateSession() error = %v, want ErrInvalidAccessCode", err)
	}
}

func TestCreateSessionUnknownBookingCode(t *testing.T) {
	repo := testRepository()
	service := NewGuestSessionService(repo, testConfig(0), zap.NewNop())

	_, err := service.CreateSession(context.Background(), &request.CreateSessionRequest{
		BookingCode: "UPS-MISSING",
		AccessCode:  "4821",
	})
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("CreateSession() error = %v, want ErrOrderNotFound", err)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	service := NewGuestSessionService(testRepository(), testConfig(0), zap.NewNop())

	_, err := service.CreateSession(context.Background(), &request.CreateSessionRequest{
		BookingCode: "UPS-ABC123",
		AccessCode:  "12",
	})
	if err == nil {
		t.Error("CreateSession() accepted a short access code")
	}
}
