package response_models

type AccountLoginResponse struct {
	Token      string          `json:"token"`
	Account    AccountResponse `json:"account"`
	RedirectTo string          `json:"redirectTo,omitempty"`
}

type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type IdentityResponse struct {
	Authenticated bool             `json:"authenticated"`
	UserID        string           `json:"userId,omitempty"`
	Role          string           `json:"role"`
	Account       *AccountResponse `json:"account,omitempty"`
}
