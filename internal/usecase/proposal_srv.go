package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"
	"github.com/vladHotelverse/hotel-upsell/internal/dto/request"
	"github.com/vladHotelverse/hotel-upsell/internal/dto/response"
	"github.com/vladHotelverse/hotel-upsell/internal/realtime"
	"github.com/vladHotelverse/hotel-upsell/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProposalService interface {
	// ListProposals returns a page of the order's proposals, newest first,
	// with expiry derived at render time; storage keeps expired-but-unactioned
	// rows "pending".
	ListProposals(ctx context.Context, orderID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.ProposalResponse], error)

	// Accept and Reject flip a pending proposal through the idempotent
	// status update. The boolean reports whether anything changed.
	Accept(ctx context.Context, orderID, proposalID uuid.UUID) (bool, error)
	Reject(ctx context.Context, orderID, proposalID uuid.UUID) (bool, error)

	// CreateProposal is the hotel-side entry point. The new row reaches the
	// guest twice: once over the direct broadcast and once over the row
	// change channel; consumers upsert by id.
	CreateProposal(ctx context.Context, req *request.CreateProposalRequest) (*response.ProposalResponse, error)
}

type proposalService struct {
	repo        *repository.Repository
	labels      *utils.Labels
	notifier    Notifier
	broadcaster *realtime.Broadcaster
	log         *zap.Logger
}

func NewProposalService(
	repo *repository.Repository,
	labels *utils.Labels,
	notifier Notifier,
	broadcaster *realtime.Broadcaster,
	log *zap.Logger,
) ProposalService {
	return &proposalService{
		repo:        repo,
		labels:      labels,
		notifier:    notifier,
		broadcaster: broadcaster,
		log:         log.With(zap.String("service", "proposal")),
	}
}

func (s *proposalService) ListProposals(ctx context.Context, orderID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.ProposalResponse], error) {
	proposals, err := s.repo.Proposal.FindByOrderID(ctx, orderID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}

	total, err := s.repo.Proposal.CountByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("count proposals: %w", err)
	}

	now := time.Now()
	responses := make([]response.ProposalResponse, len(proposals))
	for i, proposal := range proposals {
		responses[i] = response.ProposalToResponse(proposal, now)
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}

func (s *proposalService) Accept(ctx context.Context, orderID, proposalID uuid.UUID) (bool, error) {
	return s.resolve(ctx, orderID, proposalID, entity.ProposalStatusAccepted, s.labels.Proposal.Accepted)
}

func (s *proposalService) Reject(ctx context.Context, orderID, proposalID uuid.UUID) (bool, error) {
	return s.resolve(ctx, orderID, proposalID, entity.ProposalStatusRejected, s.labels.Proposal.Rejected)
}

func (s *proposalService) resolve(ctx context.Context, orderID, proposalID uuid.UUID, status entity.ProposalStatus, label string) (bool, error) {
	proposal, err := s.repo.Proposal.FindByID(ctx, proposalID)
	if err != nil {
		return false, fmt.Errorf("resolve proposal: %w", err)
	}
	if proposal == nil || proposal.OrderID != orderID {
		return false, ErrProposalNotFound
	}

	// Expiry is evaluated here, at action time. The stored status stays
	// pending; the guest just loses the controls.
	if proposal.IsExpired(time.Now()) {
		s.notifier.Notify(orderID, Notification{
			Message:  s.labels.Proposal.Expired,
			Severity: SeverityError,
		})
		return false, nil
	}

	changed, err := s.repo.Proposal.UpdateStatus(ctx, orderID, proposalID, status)
	if err != nil {
		// Logged only; stored and local state are both unchanged.
		s.log.Error("Proposal status update failed",
			zap.Error(err),
			zap.String("proposal_id", proposalID.String()),
			zap.String("status", string(status)),
		)
		return false, err
	}
	if !changed {
		s.log.Warn("Proposal status update changed nothing",
			zap.String("proposal_id", proposalID.String()),
			zap.String("status", string(status)),
		)
		return false, nil
	}

	s.log.Info("Proposal resolved",
		zap.String("order_id", orderID.String()),
		zap.String("proposal_id", proposalID.String()),
		zap.String("status", string(status)),
	)

	s.notifier.Notify(orderID, Notification{
		Message:  label,
		Severity: SeveritySuccess,
	})
	s.broadcaster.Publish(realtime.BroadcastEvent{
		Name:    realtime.EventOrderUpdated,
		OrderID: orderID.String(),
	})

	return true, nil
}

func (s *proposalService) CreateProposal(ctx context.Context, req *request.CreateProposalRequest) (*response.ProposalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create proposal validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format %s: %w", req.OrderID, err)
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil || order == nil {
		return nil, ErrOrderNotFound
	}

	now := time.Now()
	proposal := &entity.Proposal{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:         orderID,
		Type:            entity.ProposalType(req.Type),
		Title:           req.Title,
		Description:     req.Description,
		OriginalItem:    req.OriginalItem,
		ProposedItem:    req.ProposedItem,
		PriceDifference: req.PriceDifference,
		Status:          entity.ProposalStatusPending,
	}
	if req.ExpiresInMinutes != nil {
		expires := now.Add(time.Duration(*req.ExpiresInMinutes) * time.Minute)
		proposal.ExpiresAt = &expires
	}

	if err := s.repo.Proposal.Create(ctx, proposal); err != nil {
		return nil, fmt.Errorf("create proposal: %w", err)
	}

	// Direct delivery path; the repo already pushed the row-change path.
	if payload, err := json.Marshal(proposal); err == nil {
		s.broadcaster.Publish(realtime.BroadcastEvent{
			Name:    realtime.EventNewProposal,
			OrderID: orderID.String(),
			Payload: payload,
		})
	}

	s.log.Info("Proposal created",
		zap.String("order_id", orderID.String()),
		zap.String("proposal_id", proposal.ID.String()),
		zap.String("type", req.Type),
	)

	proposalResp := response.ProposalToResponse(proposal, now)
	return &proposalResp, nil
}
