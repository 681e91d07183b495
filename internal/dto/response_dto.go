package dto

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// RedirectResponse tells the client where to go next and why.
type RedirectResponse struct {
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to"`
}
