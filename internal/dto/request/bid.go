package request

type PlaceBidRequest struct {
	// Amount is the nightly price the guest offers for the upgrade. NaN and
	// infinities fail the numeric validators before reaching the core.
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
