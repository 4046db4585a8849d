package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/dto/request"
	"github.com/vladHotelverse/hotel-upsell/internal/dto/response"
	"github.com/vladHotelverse/hotel-upsell/internal/usecase"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestRespondServiceErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{usecase.ErrRoomNotFound, http.StatusNotFound},
		{usecase.ErrItemNotFound, http.StatusNotFound},
		{usecase.ErrProposalNotFound, http.StatusNotFound},
		{usecase.ErrInvalidAccessCode, http.StatusUnauthorized},
		{usecase.ErrBaseRoomProtected, http.StatusUnprocessableEntity},
		{usecase.ErrBidOutOfRange, http.StatusUnprocessableEntity},
		{usecase.ErrRemovalInFlight, http.StatusConflict},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		recorder := httptest.NewRecorder()
		respondServiceError(recorder, tt.err)
		if recorder.Code != tt.code {
			t.Errorf("respondServiceError(%v) = %d, want %d", tt.err, recorder.Code, tt.code)
		}
	}
}

type stubSessionService struct {
	session *response.SessionResponse
	err     error
}

func (s *stubSessionService) CreateSession(_ context.Context, _ *request.CreateSessionRequest) (*response.SessionResponse, error) {
	return s.session, s.err
}

func TestCreateSessionHandler(t *testing.T) {
	handler := NewSessionHandler(&stubSessionService{
		session: &response.SessionResponse{
			Token:     uuid.New().String(),
			OrderID:   uuid.New().String(),
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/session",
		strings.NewReader(`{"booking_code":"UPS-ABC123","access_code":"4821"}`))
	recorder := httptest.NewRecorder()
	handler.CreateSession(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201: %s", recorder.Code, recorder.Body.String())
	}
}

func TestCreateSessionHandlerBadBody(t *testing.T) {
	handler := NewSessionHandler(&stubSessionService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader("{broken"))
	recorder := httptest.NewRecorder()
	handler.CreateSession(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}

func TestCreateSessionHandlerValidation(t *testing.T) {
	handler := NewSessionHandler(&stubSessionService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/session",
		strings.NewReader(`{"booking_code":"","access_code":"12"}`))
	recorder := httptest.NewRecorder()
	handler.CreateSession(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}

func TestCreateSessionHandlerInvalidCredentials(t *testing.T) {
	handler := NewSessionHandler(&stubSessionService{err: usecase.ErrInvalidAccessCode}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/session",
		strings.NewReader(`{"booking_code":"UPS-ABC123","access_code":"9999"}`))
	recorder := httptest.NewRecorder()
	handler.CreateSession(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", recorder.Code)
	}
}

func TestGetOrderRequiresSession(t *testing.T) {
	handler := NewOrderHandler(nil, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
	recorder := httptest.NewRecorder()
	handler.GetOrder(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without order context", recorder.Code)
	}
}

func TestGetOrderWithSessionContext(t *testing.T) {
	// The accordion service is real; the order service is nil and must not
	// be reached when the context carries no order id.
	orderID := uuid.New()
	accordion := usecase.NewAccordionService(nil, zap.NewNop())
	handler := NewOrderHandler(nil, accordion, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/accordion", nil)
	req = req.WithContext(utils.SetOrderContext(req.Context(), orderID))
	recorder := httptest.NewRecorder()
	handler.GetAccordion(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}
}
