package usecase

import (
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/internal/realtime"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Session   GuestSessionService
	Order     OrderService
	Bid       BidService
	Proposal  ProposalService
	Accordion AccordionService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	labels *utils.Labels,
	notifier Notifier,
	broadcaster *realtime.Broadcaster,
	accordionEmit ActiveRoomEmitter,
	log *zap.Logger,
) *Service {
	negotiation := NewNegotiationRegistry()

	return &Service{
		Session:   NewGuestSessionService(repo, config, log),
		Order:     NewOrderService(repo, config, labels, notifier, broadcaster, negotiation, log),
		Bid:       NewBidService(repo, config, labels, notifier, broadcaster, negotiation, log),
		Proposal:  NewProposalService(repo, labels, notifier, broadcaster, log),
		Accordion: NewAccordionService(accordionEmit, log),
	}
}
