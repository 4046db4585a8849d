package response

type AccordionResponse struct {
	Active []string `json:"active"`
	Mode   string   `json:"mode"`
}
