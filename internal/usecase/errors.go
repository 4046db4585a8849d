package usecase

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrRoomNotFound      = errors.New("room booking not found")
	ErrItemNotFound      = errors.New("pricing item not found")
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrInvalidAccessCode = errors.New("invalid access code")

	// ErrBaseRoomProtected rejects removal of the guest's reserved room.
	ErrBaseRoomProtected = errors.New("base room cannot be removed")

	// ErrRemovalInFlight rejects a second removal of an item that is
	// already settling.
	ErrRemovalInFlight = errors.New("item removal already in flight")

	ErrBidOutOfRange = errors.New("bid amount outside allowed range")
)
