package request

type ToggleAccordionRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid4"`
}
