package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vladHotelverse/hotel-upsell/internal/data/entity"
	"github.com/vladHotelverse/hotel-upsell/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProposalChangeChannel is the LISTEN/NOTIFY channel carrying proposal row
// changes. Payloads are ProposalChangePayload JSON.
const ProposalChangeChannel = "proposal_changes"

type ProposalChangePayload struct {
	Table     string          `json:"table"`
	Operation string          `json:"operation"` // INSERT | UPDATE
	OrderID   string          `json:"order_id"`
	Row       json.RawMessage `json:"row"`
}

type ProposalRepository interface {
	Create(ctx context.Context, proposal *entity.Proposal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error)
	// FindByOrderID pages newest-first; limit <= 0 means no limit.
	FindByOrderID(ctx context.Context, orderID uuid.UUID, limit, offset int) ([]*entity.Proposal, error)
	CountByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)

	// UpdateStatus flips a pending proposal into a terminal status. Returns
	// false without error when nothing changed (unknown id, wrong order, or
	// already terminal), so repeated calls are safe.
	UpdateStatus(ctx context.Context, orderID, proposalID uuid.UUID, status entity.ProposalStatus) (bool, error)
}

type proposalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProposalRepository(db database.PgxIface, log *zap.Logger) ProposalRepository {
	return &proposalRepository{
		db:  db,
		log: log.With(zap.String("repository", "proposal")),
	}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *entity.Proposal) error {
	query := `
		INSERT INTO proposals (id, order_id, proposal_type, title, description, original_item, proposed_item, price_difference, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		proposal.ID,
		proposal.OrderID,
		proposal.Type,
		proposal.Title,
		proposal.Description,
		proposal.OriginalItem,
		proposal.ProposedItem,
		proposal.PriceDifference,
		proposal.Status,
		proposal.ExpiresAt,
		proposal.CreatedAt,
		proposal.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create proposal",
			zap.Error(err),
			zap.String("order_id", proposal.OrderID.String()),
			zap.String("title", proposal.Title),
		)
		return fmt.Errorf("create proposal %s: %w", proposal.ID.String(), err)
	}

	r.notifyChange(ctx, "INSERT", proposal)

	return nil
}

func (r *proposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error) {
	query := `
		SELECT id, order_id, proposal_type, title, description, original_item, proposed_item, price_difference, status, expires_at, created_at, updated_at
		FROM proposals
		WHERE id = $1
	`

	var proposal entity.Proposal
	err := r.db.QueryRow(ctx, query, id).Scan(
		&proposal.ID,
		&proposal.OrderID,
		&proposal.Type,
		&proposal.Title,
		&proposal.Description,
		&proposal.OriginalItem,
		&proposal.ProposedItem,
		&proposal.PriceDifference,
		&proposal.Status,
		&proposal.ExpiresAt,
		&proposal.CreatedAt,
		&proposal.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find proposal by ID",
			zap.Error(err),
			zap.String("proposal_id", id.String()),
		)
		return nil, fmt.Errorf("find proposal by ID %s: %w", id.String(), err)
	}

	return &proposal, nil
}

func (r *proposalRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID, limit, offset int) ([]*entity.Proposal, error) {
	query := `
		SELECT id, order_id, proposal_type, title, description, original_item, proposed_item, price_difference, status, expires_at, created_at, updated_at
		FROM proposals
		WHERE order_id = $1
		ORDER BY created_at DESC
	`

	args := []any{orderID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find proposals by order ID",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find proposals by order ID %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var proposals []*entity.Proposal
	for rows.Next() {
		var proposal entity.Proposal
		if err := rows.Scan(
			&proposal.ID,
			&proposal.OrderID,
			&proposal.Type,
			&proposal.Title,
			&proposal.Description,
			&proposal.OriginalItem,
			&proposal.ProposedItem,
			&proposal.PriceDifference,
			&proposal.Status,
			&proposal.ExpiresAt,
			&proposal.CreatedAt,
			&proposal.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		proposals = append(proposals, &proposal)
	}

	return proposals, rows.Err()
}

func (r *proposalRepository) CountByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM proposals WHERE order_id = $1`, orderID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count proposals by order ID",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return 0, fmt.Errorf("count proposals by order ID %s: %w", orderID.String(), err)
	}

	return total, nil
}

func (r *proposalRepository) UpdateStatus(ctx context.Context, orderID, proposalID uuid.UUID, status entity.ProposalStatus) (bool, error) {
	query := `
		UPDATE proposals
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND order_id = $3 AND status = 'pending'
	`

	tag, err := r.db.Exec(ctx, query, status, proposalID, orderID)
	if err != nil {
		r.log.Error("Failed to update proposal status",
			zap.Error(err),
			zap.String("proposal_id", proposalID.String()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update proposal %s status: %w", proposalID.String(), err)
	}

	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if proposal, err := r.FindByID(ctx, proposalID); err == nil && proposal != nil {
		r.notifyChange(ctx, "UPDATE", proposal)
	}

	return true, nil
}

// notifyChange publishes the row on the LISTEN/NOTIFY channel. Delivery is
// best effort, a failed notify never fails the write itself.
func (r *proposalRepository) notifyChange(ctx context.Context, operation string, proposal *entity.Proposal) {
	row, err := json.Marshal(proposal)
	if err != nil {
		return
	}

	payload, err := json.Marshal(ProposalChangePayload{
		Table:     "proposals",
		Operation: operation,
		OrderID:   proposal.OrderID.String(),
		Row:       row,
	})
	if err != nil {
		return
	}

	if _, err := r.db.Exec(ctx, `SELECT pg_notify($1, $2)`, ProposalChangeChannel, string(payload)); err != nil {
		r.log.Warn("Failed to notify proposal change",
			zap.Error(err),
			zap.String("proposal_id", proposal.ID.String()),
		)
	}
}
