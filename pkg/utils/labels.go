package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// Labels holds every user-facing string the core emits. The host property
// ships its own dictionary file; a missing file is a configuration error and
// the process must not start without one. Missing individual keys fall back
// to the built-in defaults below.
type Labels struct {
	Notifications NotificationLabels `json:"notifications"`
	Bid           BidLabels          `json:"bid"`
	Proposal      ProposalLabels     `json:"proposal"`
}

// labelsDocument is the on-disk shape. The sections are pointers so that
// "required" distinguishes an absent section from an empty one; a value
// struct would always pass the validator.
type labelsDocument struct {
	Notifications *NotificationLabels `json:"notifications" validate:"required"`
	Bid           *BidLabels          `json:"bid" validate:"required"`
	Proposal      *ProposalLabels     `json:"proposal" validate:"required"`
}

type NotificationLabels struct {
	ItemRemoved       string `json:"item_removed"`
	ItemRemoveFailed  string `json:"item_remove_failed"`
	BaseRoomProtected string `json:"base_room_protected"`
	ConfirmSuccess    string `json:"confirm_success"`
	ConfirmFailed     string `json:"confirm_failed"`
}

type BidLabels struct {
	Submitted string `json:"submitted"`
	Cancelled string `json:"cancelled"`
}

type ProposalLabels struct {
	Accepted string `json:"accepted"`
	Rejected string `json:"rejected"`
	Expired  string `json:"expired"`
}

// DefaultLabels is the per-key fallback, not a substitute for the dictionary.
func DefaultLabels() Labels {
	return Labels{
		Notifications: NotificationLabels{
			ItemRemoved:       "%s has been removed",
			ItemRemoveFailed:  "Could not remove %s, please try again",
			BaseRoomProtected: "Your reserved room cannot be removed",
			ConfirmSuccess:    "Your selection for %d room(s) has been confirmed",
			ConfirmFailed:     "Confirmation failed, please try again",
		},
		Bid: BidLabels{
			Submitted: "Your offer of %.2f has been sent to the hotel",
			Cancelled: "Your offer has been withdrawn",
		},
		Proposal: ProposalLabels{
			Accepted: "Proposal accepted",
			Rejected: "Proposal rejected",
			Expired:  "This proposal has expired",
		},
	}
}

// LoadLabels reads and validates the dictionary once at startup.
func LoadLabels(path string) (*Labels, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels dictionary %s: %w", path, err)
	}

	var doc labelsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse labels dictionary %s: %w", path, err)
	}

	if errs := ValidateStruct(doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid labels dictionary: %s", FormatValidationErrors(errs))
	}

	labels := Labels{
		Notifications: *doc.Notifications,
		Bid:           *doc.Bid,
		Proposal:      *doc.Proposal,
	}
	labels.fillDefaults()
	return &labels, nil
}

func (l *Labels) fillDefaults() {
	defaults := DefaultLabels()

	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}

	fill(&l.Notifications.ItemRemoved, defaults.Notifications.ItemRemoved)
	fill(&l.Notifications.ItemRemoveFailed, defaults.Notifications.ItemRemoveFailed)
	fill(&l.Notifications.BaseRoomProtected, defaults.Notifications.BaseRoomProtected)
	fill(&l.Notifications.ConfirmSuccess, defaults.Notifications.ConfirmSuccess)
	fill(&l.Notifications.ConfirmFailed, defaults.Notifications.ConfirmFailed)
	fill(&l.Bid.Submitted, defaults.Bid.Submitted)
	fill(&l.Bid.Cancelled, defaults.Bid.Cancelled)
	fill(&l.Proposal.Accepted, defaults.Proposal.Accepted)
	fill(&l.Proposal.Rejected, defaults.Proposal.Rejected)
	fill(&l.Proposal.Expired, defaults.Proposal.Expired)
}
