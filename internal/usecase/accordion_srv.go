package usecase

import (
	"sync"

	"github.com/vladHotelverse/hotel-upsell/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ActiveRoomEmitter receives every panel transition, open and close alike.
type ActiveRoomEmitter func(orderID, roomID uuid.UUID, open bool)

type AccordionService interface {
	// Toggle flips the room panel and returns the resulting active set.
	Toggle(orderID, roomID uuid.UUID) *response.AccordionResponse

	// Get returns the current active set without changing it.
	Get(orderID uuid.UUID) *response.AccordionResponse
}

// accordionService keeps one owned, exclusive controller per order. The
// controller type itself also supports controlled and multi-open setups for
// hosts that drive the panels themselves.
type accordionService struct {
	emit ActiveRoomEmitter
	log  *zap.Logger

	mu          sync.Mutex
	controllers map[uuid.UUID]*AccordionController
}

func NewAccordionService(emit ActiveRoomEmitter, log *zap.Logger) AccordionService {
	return &accordionService{
		emit:        emit,
		log:         log.With(zap.String("service", "accordion")),
		controllers: make(map[uuid.UUID]*AccordionController),
	}
}

func (s *accordionService) Toggle(orderID, roomID uuid.UUID) *response.AccordionResponse {
	controller := s.controllerFor(orderID)
	controller.Toggle(roomID)
	return s.toResponse(controller)
}

func (s *accordionService) Get(orderID uuid.UUID) *response.AccordionResponse {
	return s.toResponse(s.controllerFor(orderID))
}

func (s *accordionService) controllerFor(orderID uuid.UUID) *AccordionController {
	s.mu.Lock()
	defer s.mu.Unlock()

	controller, ok := s.controllers[orderID]
	if !ok {
		controller = NewAccordionController(AccordionOwned, true, func(roomID uuid.UUID, open bool) {
			if s.emit != nil {
				s.emit(orderID, roomID, open)
			}
		})
		s.controllers[orderID] = controller
	}
	return controller
}

func (s *accordionService) toResponse(controller *AccordionController) *response.AccordionResponse {
	ids := controller.Active()
	active := make([]string, len(ids))
	for i, id := range ids {
		active[i] = id.String()
	}
	return &response.AccordionResponse{
		Active: active,
		Mode:   string(controller.Mode()),
	}
}
