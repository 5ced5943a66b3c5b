package model

// GenerateRequest represents a password generation request.
// A nil Length means the caller did not ask for one and the default applies.
type GenerateRequest struct {
	Length *int `json:"length"`
}

// GenerateResponse represents a generated password.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
