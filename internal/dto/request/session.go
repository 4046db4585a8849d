package request

type CreateSessionRequest struct {
	BookingCode string `json:"booking_code" validate:"required"`
	AccessCode  string `json:"access_code" validate:"required,min=4"`
}
